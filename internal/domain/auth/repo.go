package auth

import (
	"context"

	"khata/internal/core/id"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID id.ID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	UpdatePassword(ctx context.Context, userID id.ID, passwordHash string) error
	List(ctx context.Context) ([]*User, error)
	Delete(ctx context.Context, userID id.ID) error
}
