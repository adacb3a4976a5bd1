package entity

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// ValidRole reports whether s names one of the authorization tiers.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Base
	Username  string   `db:"username"`
	Email     string   `db:"email"`
	FirstName *string  `db:"first_name"`
	LastName  *string  `db:"last_name"`
	Bio       *string  `db:"bio"`
	Role      UserRole `db:"role"`
	IsActive  bool     `db:"is_active"`
	// ConfirmationCode is the pending one-time signup code. A new signup
	// overwrites it, which invalidates the previous code.
	ConfirmationCode *string `db:"confirmation_code"`
}
