// Package permission holds the role decision table: pure predicates mapping
// (role, actor, resource ownership) to allow/deny. Handlers and services call
// these instead of re-deriving role rules inline.
package permission

import (
	"media-ratings/internal/data/entity"

	"github.com/google/uuid"
)

// CanWriteCatalog reports whether the role may create, update or delete
// categories, genres and titles. Reads are open to anyone.
func CanWriteCatalog(role entity.UserRole) bool {
	return role == entity.RoleAdmin
}

// CanModifyContribution reports whether the actor may update or delete a
// review or comment owned by authorID.
func CanModifyContribution(role entity.UserRole, actorID, authorID uuid.UUID) bool {
	if actorID == authorID {
		return true
	}
	return role == entity.RoleModerator || role == entity.RoleAdmin
}

// CanManageUsers reports whether the role may list, create, update or delete
// arbitrary user accounts. Self-profile access goes through /users/me instead.
func CanManageUsers(role entity.UserRole) bool {
	return role == entity.RoleAdmin
}
