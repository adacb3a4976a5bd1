package wire

import (
	"media-ratings/internal/adaptor"
	"media-ratings/pkg/middleware"
	"media-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTitle(
	r chi.Router,
	titleHandler *adaptor.TitleHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/titles", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", titleHandler.List)
		r.Get("/{titleID}", titleHandler.Get)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(config.JWT.Secret, log))
			r.Use(middleware.RequireAdmin(log))

			r.Post("/", titleHandler.Create)
			r.Put("/{titleID}", titleHandler.Replace)
			r.Patch("/{titleID}", titleHandler.Update)
			r.Delete("/{titleID}", titleHandler.Delete)
		})
	})
}
