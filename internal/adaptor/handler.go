package adaptor

import (
	"net/http"
	"net/url"

	"media-ratings/internal/data/entity"
	"media-ratings/internal/dto/request"
	"media-ratings/internal/usecase"
	"media-ratings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *RubricHandler
	Genre    *RubricHandler
	Title    *TitleHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Category: NewRubricHandler(service.Category, "category", log),
		Genre:    NewRubricHandler(service.Genre, "genre", log),
		Title:    NewTitleHandler(service.Title, log),
		Review:   NewReviewHandler(service.Review, log),
		Comment:  NewCommentHandler(service.Comment, log),
	}
}

// actorFromContext pulls the authenticated user out of the request context.
// Returns false when the authentication middleware did not run.
func actorFromContext(r *http.Request) (uuid.UUID, entity.UserRole, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, "", false
	}

	roleStr, ok := utils.GetRoleFromContext(r.Context())
	if !ok || !entity.ValidRole(roleStr) {
		return uuid.Nil, "", false
	}

	return userID, entity.UserRole(roleStr), true
}

func parsePagination(query url.Values) *request.PaginatedRequest {
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
