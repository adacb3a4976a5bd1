package repository

import (
	"context"
	"fmt"

	"media-ratings/internal/data/entity"
	"media-ratings/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RubricRepository serves slug-keyed name groupings. Categories and genres
// share one implementation parameterized by table name.
type RubricRepository interface {
	Create(ctx context.Context, rubric *entity.Rubric) error
	FindBySlug(ctx context.Context, slug string) (*entity.Rubric, error)
	FindBySlugs(ctx context.Context, slugs []string) ([]*entity.Rubric, error)
	FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Rubric, error)
	CountAll(ctx context.Context, search string) (int64, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type rubricRepository struct {
	db    database.PgxIface
	log   *zap.Logger
	table string
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) RubricRepository {
	return &rubricRepository{
		db:    db,
		log:   log.With(zap.String("repository", "category")),
		table: "categories",
	}
}

func newRubricRepository(db database.PgxIface, log *zap.Logger, name, table string) *rubricRepository {
	return &rubricRepository{
		db:    db,
		log:   log.With(zap.String("repository", name)),
		table: table,
	}
}

func (r *rubricRepository) Create(ctx context.Context, rubric *entity.Rubric) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, slug, created_at)
		VALUES ($1, $2, $3, $4)
	`, r.table)

	_, err := r.db.Exec(ctx, query,
		rubric.ID,
		rubric.Name,
		rubric.Slug,
		rubric.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rubric",
			zap.Error(err),
			zap.String("slug", rubric.Slug),
		)
		return fmt.Errorf("create %s %s: %w", r.table, rubric.Slug, err)
	}

	return nil
}

func (r *rubricRepository) FindBySlug(ctx context.Context, slug string) (*entity.Rubric, error) {
	query := fmt.Sprintf(`SELECT id, name, slug, created_at FROM %s WHERE slug = $1`, r.table)

	var rubric entity.Rubric
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&rubric.ID,
		&rubric.Name,
		&rubric.Slug,
		&rubric.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rubric by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find %s by slug %s: %w", r.table, slug, err)
	}

	return &rubric, nil
}

func (r *rubricRepository) FindBySlugs(ctx context.Context, slugs []string) ([]*entity.Rubric, error) {
	query := fmt.Sprintf(`
		SELECT id, name, slug, created_at
		FROM %s
		WHERE slug = ANY($1)
		ORDER BY name
	`, r.table)

	rows, err := r.db.Query(ctx, query, slugs)
	if err != nil {
		r.log.Error("Failed to find rubrics by slugs", zap.Error(err))
		return nil, fmt.Errorf("find %s by slugs: %w", r.table, err)
	}
	defer rows.Close()

	var rubrics []*entity.Rubric
	for rows.Next() {
		var rubric entity.Rubric
		err := rows.Scan(
			&rubric.ID,
			&rubric.Name,
			&rubric.Slug,
			&rubric.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", r.table, err)
		}
		rubrics = append(rubrics, &rubric)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", r.table, err)
	}

	return rubrics, nil
}

// FindAll retrieves a paginated list, optionally filtered by a name substring.
func (r *rubricRepository) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Rubric, error) {
	query := fmt.Sprintf(`
		SELECT id, name, slug, created_at
		FROM %s
		WHERE $1 = '' OR name ILIKE '%%' || $1 || '%%'
		ORDER BY name
		LIMIT $2 OFFSET $3
	`, r.table)

	rows, err := r.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		r.log.Error("Failed to list rubrics",
			zap.Error(err),
			zap.String("search", search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all %s: %w", r.table, err)
	}
	defer rows.Close()

	var rubrics []*entity.Rubric
	for rows.Next() {
		var rubric entity.Rubric
		err := rows.Scan(
			&rubric.ID,
			&rubric.Name,
			&rubric.Slug,
			&rubric.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", r.table, err)
		}
		rubrics = append(rubrics, &rubric)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", r.table, err)
	}

	return rubrics, nil
}

func (r *rubricRepository) CountAll(ctx context.Context, search string) (int64, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s
		WHERE $1 = '' OR name ILIKE '%%' || $1 || '%%'
	`, r.table)

	var count int64
	err := r.db.QueryRow(ctx, query, search).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count rubrics", zap.Error(err))
		return 0, fmt.Errorf("count %s: %w", r.table, err)
	}

	return count, nil
}

func (r *rubricRepository) DeleteBySlug(ctx context.Context, slug string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE slug = $1`, r.table)

	result, err := r.db.Exec(ctx, query, slug)
	if err != nil {
		r.log.Error("Failed to delete rubric",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return fmt.Errorf("delete %s %s: %w", r.table, slug, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s %s not found", r.table, slug)
	}

	return nil
}
