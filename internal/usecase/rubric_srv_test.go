package usecase

import (
	"context"
	"testing"

	"media-ratings/internal/data/entity"
	"media-ratings/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRubricRepo struct {
	rubrics []*entity.Rubric
}

func (f *fakeRubricRepo) Create(_ context.Context, rubric *entity.Rubric) error {
	f.rubrics = append(f.rubrics, rubric)
	return nil
}

func (f *fakeRubricRepo) FindBySlug(_ context.Context, slug string) (*entity.Rubric, error) {
	for _, r := range f.rubrics {
		if r.Slug == slug {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRubricRepo) FindBySlugs(_ context.Context, slugs []string) ([]*entity.Rubric, error) {
	var out []*entity.Rubric
	for _, s := range slugs {
		for _, r := range f.rubrics {
			if r.Slug == s {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeRubricRepo) FindAll(_ context.Context, _ string, _, _ int) ([]*entity.Rubric, error) {
	return f.rubrics, nil
}

func (f *fakeRubricRepo) CountAll(_ context.Context, _ string) (int64, error) {
	return int64(len(f.rubrics)), nil
}

func (f *fakeRubricRepo) DeleteBySlug(_ context.Context, slug string) error {
	for i, r := range f.rubrics {
		if r.Slug == slug {
			f.rubrics = append(f.rubrics[:i], f.rubrics[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestRubricCreate_GeneratesSlugFromName(t *testing.T) {
	repo := &fakeRubricRepo{}
	svc := NewRubricService(repo, "category", testLogger())

	resp, err := svc.Create(context.Background(), &request.RubricRequest{Name: "Science Fiction"})
	require.NoError(t, err)

	assert.Equal(t, "Science Fiction", resp.Name)
	assert.Equal(t, "science-fiction", resp.Slug)
}

func TestRubricCreate_ExplicitSlug(t *testing.T) {
	repo := &fakeRubricRepo{}
	svc := NewRubricService(repo, "genre", testLogger())

	resp, err := svc.Create(context.Background(), &request.RubricRequest{Name: "Drama", Slug: "drama-films"})
	require.NoError(t, err)
	assert.Equal(t, "drama-films", resp.Slug)
}

func TestRubricCreate_BadSlugRejected(t *testing.T) {
	repo := &fakeRubricRepo{}
	svc := NewRubricService(repo, "genre", testLogger())

	_, err := svc.Create(context.Background(), &request.RubricRequest{Name: "Drama", Slug: "Bad Slug!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, repo.rubrics)
}

func TestRubricCreate_DuplicateSlug(t *testing.T) {
	repo := &fakeRubricRepo{}
	svc := NewRubricService(repo, "category", testLogger())

	_, err := svc.Create(context.Background(), &request.RubricRequest{Name: "Movies"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &request.RubricRequest{Name: "Movies"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Len(t, repo.rubrics, 1)
}

func TestRubricDelete(t *testing.T) {
	repo := &fakeRubricRepo{}
	svc := NewRubricService(repo, "category", testLogger())

	_, err := svc.Create(context.Background(), &request.RubricRequest{Name: "Movies"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "movies"))
	assert.Empty(t, repo.rubrics)

	err = svc.Delete(context.Background(), "movies")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
