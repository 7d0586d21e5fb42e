package phone

import (
	"context"
	"time"

	"khata/internal/core/id"
)

// Repository defines the interface for Phone persistence.
type Repository interface {
	Create(ctx context.Context, p *Phone) error
	Update(ctx context.Context, p *Phone) error
	GetByID(ctx context.Context, phoneID id.ID) (*Phone, error)
	Delete(ctx context.Context, phoneID id.ID) error
	List(ctx context.Context, search string) ([]*Phone, error)

	// ListSellable returns in-stock phones with sale price > 0.
	ListSellable(ctx context.Context) ([]*Phone, error)

	// FindByIMEI retrieves a phone by IMEI (unique).
	FindByIMEI(ctx context.Context, imei string) (*Phone, error)

	// MarkSold flips status to sold and records the sale time, guarded by
	// status = 'in stock' in the same statement. Returns false when the
	// guard rejects the update. Must run inside the caller's transaction.
	MarkSold(ctx context.Context, phoneID id.ID, soldAt time.Time) (bool, error)
}
