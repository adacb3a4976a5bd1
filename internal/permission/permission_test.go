package permission

import (
	"testing"

	"media-ratings/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanWriteCatalog(t *testing.T) {
	assert.True(t, CanWriteCatalog(entity.RoleAdmin))
	assert.False(t, CanWriteCatalog(entity.RoleModerator))
	assert.False(t, CanWriteCatalog(entity.RoleUser))
}

func TestCanModifyContribution(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name  string
		role  entity.UserRole
		actor uuid.UUID
		want  bool
	}{
		{"author may edit own", entity.RoleUser, author, true},
		{"other user denied", entity.RoleUser, stranger, false},
		{"moderator may edit any", entity.RoleModerator, stranger, true},
		{"admin may edit any", entity.RoleAdmin, stranger, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModifyContribution(tt.role, tt.actor, author))
		})
	}
}

func TestCanManageUsers(t *testing.T) {
	assert.True(t, CanManageUsers(entity.RoleAdmin))
	assert.False(t, CanManageUsers(entity.RoleModerator))
	assert.False(t, CanManageUsers(entity.RoleUser))
}
