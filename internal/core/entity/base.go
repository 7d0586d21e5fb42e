// Package entity provides base types shared by catalog entities.
package entity

import (
	"context"
	"time"

	"khata/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Catalog contains common fields for reference entities
// (customers, partners, products, phones, categories).
type Catalog struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// CreatedAt is the creation timestamp
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewCatalog creates a new Catalog base with generated ID.
func NewCatalog() Catalog {
	return Catalog{
		ID:        id.New(),
		CreatedAt: time.Now().UTC(),
	}
}
