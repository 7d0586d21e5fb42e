package partner

import (
	"context"

	"khata/internal/core/id"
)

// Repository defines the interface for Partner persistence.
type Repository interface {
	Create(ctx context.Context, p *Partner) error
	Update(ctx context.Context, p *Partner) error
	GetByID(ctx context.Context, partnerID id.ID) (*Partner, error)

	// Delete removes the partner; the store cascades the deletion to the
	// partner's ledger entries and nulls out supplier references on
	// products and phones.
	Delete(ctx context.Context, partnerID id.ID) error

	// List returns partners, optionally filtered by a name/phone search.
	List(ctx context.Context, search string) ([]*Partner, error)

	// FindByPhone retrieves a partner by phone (unique).
	FindByPhone(ctx context.Context, phone string) (*Partner, error)
}
