package usecase

import (
	"media-ratings/internal/data/repository"
	"media-ratings/pkg/mailer"
	"media-ratings/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category RubricService
	Genre    RubricService
	Title    TitleService
	Review   ReviewService
	Comment  CommentService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, mail, log),
		User:     NewUserService(repo, log),
		Category: NewRubricService(repo.Category, "category", log),
		Genre:    NewRubricService(repo.Genre, "genre", log),
		Title:    NewTitleService(repo, log),
		Review:   NewReviewService(repo, log),
		Comment:  NewCommentService(repo, log),
	}
}
