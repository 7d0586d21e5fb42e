// Package auth provides authentication and authorization domain logic.
package auth

import (
	"context"
	"strings"

	"khata/internal/core/apperror"
	"khata/internal/core/entity"
)

// Role controls what a user may do.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// User is a login account. The password is stored only as a bcrypt hash.
type User struct {
	entity.Catalog

	// Username is the login name (unique)
	Username string `db:"username" json:"username"`

	// PasswordHash is the bcrypt hash, never exposed in JSON
	PasswordHash string `db:"password_hash" json:"-"`

	// Role is admin or staff
	Role Role `db:"role" json:"role"`
}

// Validate implements entity.Validatable.
func (u *User) Validate(ctx context.Context) error {
	if strings.TrimSpace(u.Username) == "" {
		return apperror.NewValidation("username is required").
			WithDetail("field", "username")
	}
	if !u.Role.Valid() {
		return apperror.NewValidation("invalid role").
			WithDetail("field", "role").
			WithDetail("value", string(u.Role))
	}
	return nil
}

// RegisterRequest carries the input for creating a user.
type RegisterRequest struct {
	Username string
	Password string
	Role     Role
}

// LoginResult carries a successful login's token and user.
type LoginResult struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	User      *User  `json:"user"`
}
