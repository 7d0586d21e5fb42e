package product

import (
	"context"

	"khata/internal/core/id"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, productID id.ID) (*Product, error)
	Delete(ctx context.Context, productID id.ID) error
	List(ctx context.Context, search string) ([]*Product, error)

	// ListSellable returns products with stock > 0 and selling price > 0.
	ListSellable(ctx context.Context) ([]*Product, error)

	// ReduceStock decrements stock by qty and increments the cumulative
	// sold counter, guarded by stock_quantity >= qty in the same
	// statement. Returns false when the guard rejects the update.
	// Must run inside the caller's transaction.
	ReduceStock(ctx context.Context, productID id.ID, qty int) (bool, error)
}
