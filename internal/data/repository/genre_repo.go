package repository

import (
	"context"
	"fmt"

	"media-ratings/internal/data/entity"
	"media-ratings/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenreRepository extends the shared rubric operations with the title join.
type GenreRepository interface {
	RubricRepository
	FindByTitleID(ctx context.Context, titleID uuid.UUID) ([]*entity.Rubric, error)
}

type genreRepository struct {
	*rubricRepository
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		rubricRepository: newRubricRepository(db, log, "genre", "genres"),
	}
}

func (r *genreRepository) FindByTitleID(ctx context.Context, titleID uuid.UUID) ([]*entity.Rubric, error) {
	query := `
		SELECT g.id, g.name, g.slug, g.created_at
		FROM genres g
		INNER JOIN title_genres tg ON g.id = tg.genre_id
		WHERE tg.title_id = $1
		ORDER BY g.name
	`

	rows, err := r.db.Query(ctx, query, titleID)
	if err != nil {
		r.log.Error("Failed to find genres by title ID",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return nil, fmt.Errorf("find genres by title id: %w", err)
	}
	defer rows.Close()

	var genres []*entity.Rubric
	for rows.Next() {
		var genre entity.Rubric
		err := rows.Scan(
			&genre.ID,
			&genre.Name,
			&genre.Slug,
			&genre.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}
