package ledger

import (
	"context"

	"khata/internal/core/id"
)

// Repository defines the interface for ledger persistence. One table per
// account kind; the implementation dispatches on kind.
type Repository interface {
	// AccountExists reports whether the account row exists.
	AccountExists(ctx context.Context, kind AccountKind, accountID id.ID) (bool, error)

	// Latest returns the entry with the highest sequence id for the
	// account, or nil when the account has no entries yet.
	Latest(ctx context.Context, kind AccountKind, accountID id.ID) (*Entry, error)

	// Insert appends the entry and fills in its assigned sequence id.
	// This is the ONLY write operation: entries are never updated or
	// deleted individually.
	Insert(ctx context.Context, kind AccountKind, e *Entry) error

	// ListForAccount returns the account's entries ascending by sequence id.
	ListForAccount(ctx context.Context, kind AccountKind, accountID id.ID) ([]*Entry, error)
}
