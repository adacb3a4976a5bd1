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
	"go.uber.org/zap"
)

type TitleService interface {
	List(ctx context.Context, filter repository.TitleFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error)
	Get(ctx context.Context, titleID string) (*response.TitleResponse, error)
	Create(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error)
	Update(ctx context.Context, titleID string, req *request.TitleUpdateRequest) (*response.TitleResponse, error)
	Replace(ctx context.Context, titleID string, req *request.TitleRequest) (*response.TitleResponse, error)
	Delete(ctx context.Context, titleID string) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

func (s *titleService) List(ctx context.Context, filter repository.TitleFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	titles, err := s.repo.Title.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list titles", zap.Error(err))
		return nil, fmt.Errorf("list titles: %w", err)
	}

	total, err := s.repo.Title.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count titles", zap.Error(err))
		return nil, fmt.Errorf("count titles: %w", err)
	}

	titleResponses := make([]response.TitleResponse, len(titles))
	for i, title := range titles {
		genres, err := s.repo.Genre.FindByTitleID(ctx, title.ID)
		if err != nil {
			s.log.Warn("Failed to load genres for title",
				zap.Error(err), zap.String("title_id", title.ID.String()))
		}
		title.Genres = genres
		titleResponses[i] = response.TitleToResponse(title)
	}

	return response.NewPaginatedResponse(titleResponses, page.Page, page.PerPage, total), nil
}

func (s *titleService) Get(ctx context.Context, titleID string) (*response.TitleResponse, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, title), nil
}

func (s *titleService) Create(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Title validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title := &entity.Title{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  category.ID,
	}

	if err := s.repo.Title.Create(ctx, title); err != nil {
		s.log.Error("Failed to create title", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create title: %w", err)
	}

	if err := s.linkGenres(ctx, title.ID, genres); err != nil {
		return nil, err
	}

	s.log.Info("Title created",
		zap.String("title_id", title.ID.String()),
		zap.String("name", title.Name))

	title.Category = category
	title.Genres = genres
	resp := response.TitleToResponse(title)
	return &resp, nil
}

// Update applies a partial change; nil fields keep their current value.
func (s *titleService) Update(ctx context.Context, titleID string, req *request.TitleUpdateRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Title update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}
	if req.Category != nil {
		category, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = category.ID
	}

	title.UpdatedAt = time.Now()
	if err := s.repo.Title.Update(ctx, title); err != nil {
		s.log.Error("Failed to update title", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("update title: %w", err)
	}

	if req.Genre != nil {
		genres, err := s.resolveGenres(ctx, req.Genre)
		if err != nil {
			return nil, err
		}
		if err := s.repo.TitleGenre.DeleteByTitleID(ctx, title.ID); err != nil {
			return nil, fmt.Errorf("replace title genres: %w", err)
		}
		if err := s.linkGenres(ctx, title.ID, genres); err != nil {
			return nil, err
		}
	}

	s.log.Info("Title updated", zap.String("title_id", titleID))

	// Re-read so the category join and rating reflect the change
	updated, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, updated), nil
}

// Replace applies the full write shape, as PUT semantics require.
func (s *titleService) Replace(ctx context.Context, titleID string, req *request.TitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Title replace validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}

	title.Name = req.Name
	title.Year = req.Year
	title.Description = req.Description
	title.CategoryID = category.ID
	title.UpdatedAt = time.Now()

	if err := s.repo.Title.Update(ctx, title); err != nil {
		s.log.Error("Failed to replace title", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("update title: %w", err)
	}

	if err := s.repo.TitleGenre.DeleteByTitleID(ctx, title.ID); err != nil {
		return nil, fmt.Errorf("replace title genres: %w", err)
	}
	if err := s.linkGenres(ctx, title.ID, genres); err != nil {
		return nil, err
	}

	s.log.Info("Title replaced", zap.String("title_id", titleID))

	updated, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, updated), nil
}

func (s *titleService) Delete(ctx context.Context, titleID string) error {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return err
	}

	if err := s.repo.Title.Delete(ctx, title.ID); err != nil {
		s.log.Error("Failed to delete title", zap.Error(err), zap.String("title_id", titleID))
		return fmt.Errorf("delete title: %w", err)
	}

	s.log.Info("Title deleted", zap.String("title_id", titleID))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *titleService) findTitle(ctx context.Context, titleID string) (*entity.Title, error) {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return nil, fmt.Errorf("invalid title ID format %s", titleID)
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find title", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("title %s not found", titleID)
	}

	return title, nil
}

func (s *titleService) resolveCategory(ctx context.Context, slugValue string) (*entity.Rubric, error) {
	category, err := s.repo.Category.FindBySlug(ctx, slugValue)
	if err != nil {
		s.log.Error("Failed to resolve category", zap.Error(err), zap.String("slug", slugValue))
		return nil, fmt.Errorf("resolve category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("unknown category slug: %s", slugValue)
	}
	return category, nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]*entity.Rubric, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	genres, err := s.repo.Genre.FindBySlugs(ctx, slugs)
	if err != nil {
		s.log.Error("Failed to resolve genres", zap.Error(err))
		return nil, fmt.Errorf("resolve genres: %w", err)
	}

	found := make(map[string]bool, len(genres))
	for _, genre := range genres {
		found[genre.Slug] = true
	}
	for _, slugValue := range slugs {
		if !found[slugValue] {
			return nil, fmt.Errorf("unknown genre slug: %s", slugValue)
		}
	}

	return genres, nil
}

func (s *titleService) linkGenres(ctx context.Context, titleID uuid.UUID, genres []*entity.Rubric) error {
	for _, genre := range genres {
		tg := &entity.TitleGenre{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			TitleID: titleID,
			GenreID: genre.ID,
		}
		if err := s.repo.TitleGenre.Create(ctx, tg); err != nil {
			return fmt.Errorf("link genre %s: %w", genre.Slug, err)
		}
	}
	return nil
}

func (s *titleService) buildResponse(ctx context.Context, title *entity.Title) *response.TitleResponse {
	genres, err := s.repo.Genre.FindByTitleID(ctx, title.ID)
	if err != nil {
		s.log.Warn("Failed to load genres for title",
			zap.Error(err), zap.String("title_id", title.ID.String()))
	}
	title.Genres = genres

	resp := response.TitleToResponse(title)
	return &resp
}
