package wire

import (
	"media-ratings/internal/adaptor"
	"media-ratings/pkg/middleware"
	"media-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireRubric registers the shared route shape of /api/categories and
// /api/genres under the given prefix.
func wireRubric(
	r chi.Router,
	rubricHandler *adaptor.RubricHandler,
	prefix string,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route(prefix, func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", rubricHandler.List)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(config.JWT.Secret, log))
			r.Use(middleware.RequireAdmin(log))

			r.Post("/", rubricHandler.Create)
			r.Delete("/{slug}", rubricHandler.Delete)
		})
	})
}
