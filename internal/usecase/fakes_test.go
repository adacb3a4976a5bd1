package usecase

import (
	"context"

	"media-ratings/internal/data/entity"
	"media-ratings/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes used by the service tests.

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, _ string, _, _ int) ([]*entity.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context, _ string) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
		}
	}
	return nil
}

func (f *fakeUserRepo) SetConfirmationCode(_ context.Context, id uuid.UUID, code string) error {
	for _, u := range f.users {
		if u.ID == id {
			c := code
			u.ConfirmationCode = &c
		}
	}
	return nil
}

func (f *fakeUserRepo) Activate(_ context.Context, id uuid.UUID) error {
	for _, u := range f.users {
		if u.ID == id {
			u.IsActive = true
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTitleRepo struct {
	titles []*entity.Title
}

func (f *fakeTitleRepo) Create(_ context.Context, title *entity.Title) error {
	f.titles = append(f.titles, title)
	return nil
}

func (f *fakeTitleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Title, error) {
	for _, t := range f.titles {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTitleRepo) FindAll(_ context.Context, _ repository.TitleFilter, _, _ int) ([]*entity.Title, error) {
	return f.titles, nil
}

func (f *fakeTitleRepo) CountAll(_ context.Context, _ repository.TitleFilter) (int64, error) {
	return int64(len(f.titles)), nil
}

func (f *fakeTitleRepo) Update(_ context.Context, title *entity.Title) error {
	for i, t := range f.titles {
		if t.ID == title.ID {
			f.titles[i] = title
		}
	}
	return nil
}

func (f *fakeTitleRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, t := range f.titles {
		if t.ID == id {
			f.titles = append(f.titles[:i], f.titles[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	for _, r := range f.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByTitleID(_ context.Context, titleID uuid.UUID, _, _ int) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, r := range f.reviews {
		if r.TitleID == titleID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindByAuthorAndTitle(_ context.Context, authorID, titleID uuid.UUID) (*entity.Review, error) {
	for _, r := range f.reviews {
		if r.AuthorID == authorID && r.TitleID == titleID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) CountByTitleID(_ context.Context, titleID uuid.UUID) (int64, error) {
	var n int64
	for _, r := range f.reviews {
		if r.TitleID == titleID {
			n++
		}
	}
	return n, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	for i, r := range f.reviews {
		if r.ID == review.ID {
			f.reviews[i] = review
		}
	}
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, r := range f.reviews {
		if r.ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCommentRepo struct {
	comments []*entity.Comment
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	for _, c := range f.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCommentRepo) FindByReviewID(_ context.Context, reviewID uuid.UUID, _, _ int) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range f.comments {
		if c.ReviewID == reviewID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) CountByReviewID(_ context.Context, reviewID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range f.comments {
		if c.ReviewID == reviewID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	for i, c := range f.comments {
		if c.ID == comment.ID {
			f.comments[i] = comment
		}
	}
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range f.comments {
		if c.ID == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeMailer records sent codes instead of delivering them.
type fakeMailer struct {
	sentTo    []string
	sentCodes []string
	fail      bool
}

func (f *fakeMailer) SendConfirmationCode(_ context.Context, email, code string) error {
	if f.fail {
		return context.DeadlineExceeded
	}
	f.sentTo = append(f.sentTo, email)
	f.sentCodes = append(f.sentCodes, code)
	return nil
}

type fakeTitleGenreRepo struct {
	links []*entity.TitleGenre
}

func (f *fakeTitleGenreRepo) Create(_ context.Context, tg *entity.TitleGenre) error {
	f.links = append(f.links, tg)
	return nil
}

func (f *fakeTitleGenreRepo) DeleteByTitleID(_ context.Context, titleID uuid.UUID) error {
	var kept []*entity.TitleGenre
	for _, l := range f.links {
		if l.TitleID != titleID {
			kept = append(kept, l)
		}
	}
	f.links = kept
	return nil
}

// fakeGenreRepo layers the link-table lookup over the rubric fake.
type fakeGenreRepo struct {
	*fakeRubricRepo
	links *fakeTitleGenreRepo
}

func (f *fakeGenreRepo) FindByTitleID(_ context.Context, titleID uuid.UUID) ([]*entity.Rubric, error) {
	var out []*entity.Rubric
	for _, l := range f.links.links {
		if l.TitleID != titleID {
			continue
		}
		for _, r := range f.rubrics {
			if r.ID == l.GenreID {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func testRepository() (*repository.Repository, *fakeUserRepo, *fakeTitleRepo, *fakeReviewRepo) {
	users := &fakeUserRepo{}
	titles := &fakeTitleRepo{}
	reviews := &fakeReviewRepo{}

	repo := &repository.Repository{
		User:   users,
		Title:  titles,
		Review: reviews,
	}
	return repo, users, titles, reviews
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
