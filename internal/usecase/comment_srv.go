package usecase

import (
	"context"
	"fmt"
	"time"

	"media-ratings/internal/data/entity"
	"media-ratings/internal/data/repository"
	"media-ratings/internal/dto/request"
	"media-ratings/internal/dto/response"
	"media-ratings/internal/permission"
	"media-ratings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommentService interface {
	List(ctx context.Context, reviewID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	Get(ctx context.Context, reviewID, commentID string) (*response.CommentResponse, error)
	Create(ctx context.Context, reviewID string, actorID uuid.UUID, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	Update(ctx context.Context, reviewID, commentID string, actorID uuid.UUID, actorRole entity.UserRole, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	Delete(ctx context.Context, reviewID, commentID string, actorID uuid.UUID, actorRole entity.UserRole) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) List(ctx context.Context, reviewID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, review.ID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list comments",
			zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("list comments: %w", err)
	}

	total, err := s.repo.Comment.CountByReviewID(ctx, review.ID)
	if err != nil {
		s.log.Error("Failed to count comments", zap.Error(err))
		return nil, fmt.Errorf("count comments: %w", err)
	}

	commentResponses := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		commentResponses[i] = response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	}

	return response.NewPaginatedResponse(commentResponses, page.Page, page.PerPage, total), nil
}

func (s *commentService) Get(ctx context.Context, reviewID, commentID string) (*response.CommentResponse, error) {
	comment, err := s.findComment(ctx, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) Create(ctx context.Context, reviewID string, actorID uuid.UUID, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Comment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &entity.Comment{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReviewID: review.ID,
		AuthorID: actorID,
		Text:     req.Text,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("author_id", actorID.String()),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("author_id", actorID.String()),
		zap.String("review_id", reviewID),
	)

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, actorID))
	return &resp, nil
}

func (s *commentService) Update(ctx context.Context, reviewID, commentID string, actorID uuid.UUID, actorRole entity.UserRole, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Comment update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	comment, err := s.findComment(ctx, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if !permission.CanModifyContribution(actorRole, actorID, comment.AuthorID) {
		s.log.Warn("Comment modification denied",
			zap.String("comment_id", commentID),
			zap.String("actor_id", actorID.String()),
			zap.String("role", string(actorRole)),
		)
		return nil, fmt.Errorf("denied: not the author of this comment")
	}

	comment.Text = req.Text
	comment.UpdatedAt = time.Now()

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		s.log.Error("Failed to update comment", zap.Error(err), zap.String("comment_id", commentID))
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.log.Info("Comment updated",
		zap.String("comment_id", commentID),
		zap.String("actor_id", actorID.String()))

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, reviewID, commentID string, actorID uuid.UUID, actorRole entity.UserRole) error {
	comment, err := s.findComment(ctx, reviewID, commentID)
	if err != nil {
		return err
	}

	if !permission.CanModifyContribution(actorRole, actorID, comment.AuthorID) {
		s.log.Warn("Comment deletion denied",
			zap.String("comment_id", commentID),
			zap.String("actor_id", actorID.String()),
			zap.String("role", string(actorRole)),
		)
		return fmt.Errorf("denied: not the author of this comment")
	}

	if err := s.repo.Comment.Delete(ctx, comment.ID); err != nil {
		s.log.Error("Failed to delete comment", zap.Error(err), zap.String("comment_id", commentID))
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.Info("Comment deleted",
		zap.String("comment_id", commentID),
		zap.String("actor_id", actorID.String()))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *commentService) findReview(ctx context.Context, reviewID string) (*entity.Review, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s", reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	return review, nil
}

func (s *commentService) findComment(ctx context.Context, reviewID, commentID string) (*entity.Comment, error) {
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(commentID)
	if err != nil {
		return nil, fmt.Errorf("invalid comment ID format %s", commentID)
	}

	comment, err := s.repo.Comment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find comment", zap.Error(err), zap.String("comment_id", commentID))
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment == nil || comment.ReviewID != review.ID {
		return nil, fmt.Errorf("comment %s not found", commentID)
	}

	return comment, nil
}

func (s *commentService) authorUsername(ctx context.Context, authorID uuid.UUID) string {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}
