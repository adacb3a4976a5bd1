package wire

import (
	"media-ratings/internal/adaptor"
	"media-ratings/pkg/middleware"
	"media-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireComment(
	r chi.Router,
	commentHandler *adaptor.CommentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/reviews/{reviewID}/comments", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", commentHandler.List)
		r.Get("/{commentID}", commentHandler.Get)

		// ==================== AUTHENTICATED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(config.JWT.Secret, log))

			r.Post("/", commentHandler.Create)
			r.Patch("/{commentID}", commentHandler.Update)
			r.Delete("/{commentID}", commentHandler.Delete)
		})
	})
}
