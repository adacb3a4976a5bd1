package wire

import (
	"media-ratings/internal/adaptor"
	"media-ratings/pkg/middleware"
	"media-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		// ==================== SELF-SERVICE ROUTES ====================
		// Any authenticated user manages their own profile here.
		r.Get("/me", userHandler.GetProfile)
		r.Patch("/me", userHandler.UpdateProfile)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(log))

			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{username}", userHandler.Get)
			r.Patch("/{username}", userHandler.Update)
			r.Delete("/{username}", userHandler.Delete)
		})
	})
}
