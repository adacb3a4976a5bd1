package usecase

import (
	"context"
	"fmt"
	"time"

	"media-ratings/internal/data/entity"
	"media-ratings/internal/data/repository"
	"media-ratings/internal/dto/request"
	"media-ratings/internal/dto/response"
	"media-ratings/pkg/utils"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// RubricService covers categories and genres; one implementation is
// instantiated per kind.
type RubricService interface {
	List(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.RubricResponse], error)
	Create(ctx context.Context, req *request.RubricRequest) (*response.RubricResponse, error)
	Delete(ctx context.Context, slugValue string) error
}

type rubricService struct {
	repo repository.RubricRepository
	kind string
	log  *zap.Logger
}

func NewRubricService(repo repository.RubricRepository, kind string, log *zap.Logger) RubricService {
	return &rubricService{
		repo: repo,
		kind: kind,
		log:  log.With(zap.String("service", kind)),
	}
}

func (s *rubricService) List(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.RubricResponse], error) {
	rubrics, err := s.repo.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list rubrics", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}

	total, err := s.repo.CountAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to count rubrics", zap.Error(err))
		return nil, fmt.Errorf("count %s: %w", s.kind, err)
	}

	return response.NewPaginatedResponse(
		response.RubricsToResponse(rubrics), page.Page, page.PerPage, total), nil
}

func (s *rubricService) Create(ctx context.Context, req *request.RubricRequest) (*response.RubricResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Rubric validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	slugValue := req.Slug
	if slugValue == "" {
		slugValue = slug.Make(req.Name)
	} else if !slug.IsSlug(slugValue) {
		return nil, fmt.Errorf("validation failed: slug: must contain only lowercase letters, digits and hyphens")
	}

	existing, err := s.repo.FindBySlug(ctx, slugValue)
	if err != nil {
		s.log.Error("Failed to check slug", zap.Error(err), zap.String("slug", slugValue))
		return nil, fmt.Errorf("check %s slug: %w", s.kind, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%s with slug %s already exists", s.kind, slugValue)
	}

	rubric := &entity.Rubric{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Slug: slugValue,
	}

	if err := s.repo.Create(ctx, rubric); err != nil {
		s.log.Error("Failed to create rubric", zap.Error(err), zap.String("slug", slugValue))
		return nil, fmt.Errorf("create %s: %w", s.kind, err)
	}

	s.log.Info("Rubric created",
		zap.String("kind", s.kind),
		zap.String("slug", slugValue))

	resp := response.RubricToResponse(rubric)
	return &resp, nil
}

func (s *rubricService) Delete(ctx context.Context, slugValue string) error {
	existing, err := s.repo.FindBySlug(ctx, slugValue)
	if err != nil {
		s.log.Error("Failed to find rubric", zap.Error(err), zap.String("slug", slugValue))
		return fmt.Errorf("find %s: %w", s.kind, err)
	}
	if existing == nil {
		return fmt.Errorf("%s %s not found", s.kind, slugValue)
	}

	if err := s.repo.DeleteBySlug(ctx, slugValue); err != nil {
		s.log.Error("Failed to delete rubric", zap.Error(err), zap.String("slug", slugValue))
		return fmt.Errorf("delete %s: %w", s.kind, err)
	}

	s.log.Info("Rubric deleted",
		zap.String("kind", s.kind),
		zap.String("slug", slugValue))

	return nil
}
