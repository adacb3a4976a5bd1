package usecase

import (
	"context"
	"testing"
	"time"

	"media-ratings/internal/data/entity"
	"media-ratings/internal/data/repository"
	"media-ratings/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentTestRepository() (*repository.Repository, *fakeUserRepo, *fakeReviewRepo, *fakeCommentRepo) {
	users := &fakeUserRepo{}
	reviews := &fakeReviewRepo{}
	comments := &fakeCommentRepo{}

	repo := &repository.Repository{
		User:    users,
		Review:  reviews,
		Comment: comments,
	}
	return repo, users, reviews, comments
}

func seedReview(reviews *fakeReviewRepo, authorID uuid.UUID) *entity.Review {
	review := &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TitleID:  uuid.New(),
		AuthorID: authorID,
		Text:     "Slow but rewarding.",
		Score:    9,
	}
	reviews.reviews = append(reviews.reviews, review)
	return review
}

func TestCommentCreate(t *testing.T) {
	repo, users, reviews, comments := commentTestRepository()
	svc := NewCommentService(repo, testLogger())

	author := seedUser(users, "reader", entity.RoleUser)
	review := seedReview(reviews, author.ID)

	resp, err := svc.Create(context.Background(), review.ID.String(), author.ID, &request.CreateCommentRequest{
		Text: "Agreed on the pacing.",
	})
	require.NoError(t, err)

	assert.Equal(t, "reader", resp.Author)
	assert.Equal(t, review.ID.String(), resp.ReviewID)
	assert.Len(t, comments.comments, 1)
}

func TestCommentCreate_UnknownReview(t *testing.T) {
	repo, users, _, comments := commentTestRepository()
	svc := NewCommentService(repo, testLogger())

	author := seedUser(users, "reader", entity.RoleUser)

	_, err := svc.Create(context.Background(), uuid.NewString(), author.ID, &request.CreateCommentRequest{
		Text: "orphan",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, comments.comments)
}

func TestCommentCreate_MalformedReviewID(t *testing.T) {
	repo, users, _, _ := commentTestRepository()
	svc := NewCommentService(repo, testLogger())

	author := seedUser(users, "reader", entity.RoleUser)

	_, err := svc.Create(context.Background(), "not-a-uuid", author.ID, &request.CreateCommentRequest{
		Text: "orphan",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid review ID format")
}

func TestCommentGet_WrongReviewIsNotFound(t *testing.T) {
	repo, users, reviews, _ := commentTestRepository()
	svc := NewCommentService(repo, testLogger())

	author := seedUser(users, "reader", entity.RoleUser)
	review := seedReview(reviews, author.ID)
	otherReview := seedReview(reviews, author.ID)

	created, err := svc.Create(context.Background(), review.ID.String(), author.ID, &request.CreateCommentRequest{
		Text: "Attached to the first review.",
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), otherReview.ID.String(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	resp, err := svc.Get(context.Background(), review.ID.String(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
}

func TestCommentUpdate_Permissions(t *testing.T) {
	tests := []struct {
		name      string
		actorRole entity.UserRole
		actorIs   string
		allowed   bool
	}{
		{"author edits own", entity.RoleUser, "author", true},
		{"stranger denied", entity.RoleUser, "stranger", false},
		{"moderator edits any", entity.RoleModerator, "stranger", true},
		{"admin edits any", entity.RoleAdmin, "stranger", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, users, reviews, _ := commentTestRepository()
			svc := NewCommentService(repo, testLogger())

			author := seedUser(users, "author", entity.RoleUser)
			review := seedReview(reviews, author.ID)

			created, err := svc.Create(context.Background(), review.ID.String(), author.ID, &request.CreateCommentRequest{
				Text: "Original.",
			})
			require.NoError(t, err)

			actorID := author.ID
			if tt.actorIs == "stranger" {
				actorID = seedUser(users, "stranger", tt.actorRole).ID
			}

			resp, err := svc.Update(context.Background(), review.ID.String(), created.ID,
				actorID, tt.actorRole, &request.UpdateCommentRequest{Text: "Edited."})

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, "Edited.", resp.Text)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "denied")
			}
		})
	}
}

func TestCommentDelete_Permissions(t *testing.T) {
	repo, users, reviews, comments := commentTestRepository()
	svc := NewCommentService(repo, testLogger())

	author := seedUser(users, "author", entity.RoleUser)
	stranger := seedUser(users, "stranger", entity.RoleUser)
	moderator := seedUser(users, "mod", entity.RoleModerator)
	review := seedReview(reviews, author.ID)

	created, err := svc.Create(context.Background(), review.ID.String(), author.ID, &request.CreateCommentRequest{
		Text: "Original.",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), review.ID.String(), created.ID, stranger.ID, stranger.Role)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")
	assert.Len(t, comments.comments, 1)

	err = svc.Delete(context.Background(), review.ID.String(), created.ID, moderator.ID, moderator.Role)
	require.NoError(t, err)
	assert.Empty(t, comments.comments)
}
