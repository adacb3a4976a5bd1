package repository

import (
	"context"
	"fmt"

	"media-ratings/internal/data/entity"
	"media-ratings/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TitleGenreRepository interface {
	Create(ctx context.Context, tg *entity.TitleGenre) error
	DeleteByTitleID(ctx context.Context, titleID uuid.UUID) error
}

type titleGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleGenreRepository(db database.PgxIface, log *zap.Logger) TitleGenreRepository {
	return &titleGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "title_genre")),
	}
}

func (r *titleGenreRepository) Create(ctx context.Context, tg *entity.TitleGenre) error {
	query := `
		INSERT INTO title_genres (id, title_id, genre_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		tg.ID,
		tg.TitleID,
		tg.GenreID,
		tg.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to link title and genre",
			zap.Error(err),
			zap.String("title_id", tg.TitleID.String()),
			zap.String("genre_id", tg.GenreID.String()),
		)
		return fmt.Errorf("link title %s to genre %s: %w",
			tg.TitleID.String(), tg.GenreID.String(), err)
	}

	return nil
}

func (r *titleGenreRepository) DeleteByTitleID(ctx context.Context, titleID uuid.UUID) error {
	query := `DELETE FROM title_genres WHERE title_id = $1`

	_, err := r.db.Exec(ctx, query, titleID)
	if err != nil {
		r.log.Error("Failed to unlink title genres",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return fmt.Errorf("unlink genres for title %s: %w", titleID.String(), err)
	}

	return nil
}
