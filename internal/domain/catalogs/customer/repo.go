package customer

import (
	"context"

	"khata/internal/core/id"
)

// Repository defines the interface for Customer persistence.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, customerID id.ID) (*Customer, error)

	// Delete removes the customer; the store cascades the deletion to the
	// customer's ledger entries and nulls out references from sales.
	Delete(ctx context.Context, customerID id.ID) error

	// List returns customers, optionally filtered by a name/phone search.
	List(ctx context.Context, search string) ([]*Customer, error)

	// FindByPhone retrieves a customer by phone (unique).
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
}
