package wire

import (
	"media-ratings/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	// Signup and token exchange are the entry points into the system;
	// everything else requires the token issued here.
	r.Post("/api/auth/signup", authHandler.SignUp)
	r.Post("/api/auth/token", authHandler.Token)
}
