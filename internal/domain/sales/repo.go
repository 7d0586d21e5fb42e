package sales

import (
	"context"
	"time"
)

// Repository defines the interface for sale transaction persistence.
// Transactions are insert-only; there is no update or delete.
type Repository interface {
	// Insert appends the transaction and fills in its assigned id.
	Insert(ctx context.Context, t *SaleTransaction) error

	// GetByID retrieves a single transaction.
	GetByID(ctx context.Context, saleID int64) (*SaleTransaction, error)

	// List returns transactions within [from, to], newest first.
	List(ctx context.Context, from, to time.Time) ([]*SaleTransaction, error)
}
