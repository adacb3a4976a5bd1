package wire

import (
	"media-ratings/internal/adaptor"
	"media-ratings/pkg/middleware"
	"media-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/titles/{titleID}/reviews", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", reviewHandler.List)
		r.Get("/{reviewID}", reviewHandler.Get)

		// ==================== AUTHENTICATED ROUTES ====================
		// Author-or-staff check happens in the service layer.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(config.JWT.Secret, log))

			r.Post("/", reviewHandler.Create)
			r.Patch("/{reviewID}", reviewHandler.Update)
			r.Delete("/{reviewID}", reviewHandler.Delete)
		})
	})
}
