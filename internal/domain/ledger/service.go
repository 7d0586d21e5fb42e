package ledger

import (
	"context"
	"time"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/internal/core/tx"
	"khata/internal/core/types"
	"khata/pkg/logger"
)

// Service is the Ledger Entry Store: the single append path for ledger
// entries and the read surface for balances.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new ledger service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// PostEntry appends a balance-affecting entry to the account's ledger and
// returns the persisted row.
//
// The new running balance is previous balance + delta where the sign
// convention is account-kind-specific: credit-debit for partners
// (payable), debit-credit for customers (receivable).
//
// Always executes inside a transaction; when the caller (the sale
// orchestrator) already holds one, this joins it, so the read of the
// previous balance and the insert are never split across transactions.
func (s *Service) PostEntry(ctx context.Context, kind AccountKind, accountID id.ID, description string, debit, credit types.Money, entryDate time.Time) (*Entry, error) {
	if !kind.Valid() {
		return nil, apperror.NewValidation("invalid account kind").
			WithDetail("kind", string(kind))
	}
	if debit.IsNegative() || credit.IsNegative() {
		return nil, apperror.NewValidation("debit and credit must not be negative")
	}

	entry := &Entry{
		AccountID:   accountID,
		EntryDate:   entryDate,
		Description: description,
		Debit:       debit,
		Credit:      credit,
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.RequireAccount(ctx, kind, accountID); err != nil {
			return err
		}

		previous := types.Zero()
		if latest, err := s.repo.Latest(ctx, kind, accountID); err != nil {
			return err
		} else if latest != nil {
			previous = latest.Balance
		}

		entry.Balance = previous.Add(entry.SignedDelta(kind))
		return s.repo.Insert(ctx, kind, entry)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "ledger entry posted",
		"kind", kind,
		"account_id", accountID,
		"entry_id", entry.ID,
		"balance", entry.Balance,
	)
	return entry, nil
}

// PostManualEntry is the entry point for manual adjustments. An entry
// with both sides zero records nothing and is rejected; an entry with
// both sides nonzero is ambiguous and is rejected for both account kinds
// (one consistent rule, see DESIGN.md).
func (s *Service) PostManualEntry(ctx context.Context, kind AccountKind, accountID id.ID, description string, debit, credit types.Money, entryDate time.Time) (*Entry, error) {
	if debit.IsZero() && credit.IsZero() {
		return nil, apperror.NewValidation("either debit or credit must be set")
	}
	if !debit.IsZero() && !credit.IsZero() {
		return nil, apperror.NewValidation("debit and credit cannot both be set")
	}
	return s.PostEntry(ctx, kind, accountID, description, debit, credit, entryDate)
}

// BalanceAsOf returns the account's current balance: the balance field of
// its latest entry, or zero when it has none.
func (s *Service) BalanceAsOf(ctx context.Context, kind AccountKind, accountID id.ID) (types.Money, error) {
	if !kind.Valid() {
		return types.Zero(), apperror.NewValidation("invalid account kind").
			WithDetail("kind", string(kind))
	}
	latest, err := s.repo.Latest(ctx, kind, accountID)
	if err != nil {
		return types.Zero(), err
	}
	if latest == nil {
		return types.Zero(), nil
	}
	return latest.Balance, nil
}

// EntriesFor returns the account's full history ascending by sequence id.
func (s *Service) EntriesFor(ctx context.Context, kind AccountKind, accountID id.ID) ([]*Entry, error) {
	if !kind.Valid() {
		return nil, apperror.NewValidation("invalid account kind").
			WithDetail("kind", string(kind))
	}
	if err := s.RequireAccount(ctx, kind, accountID); err != nil {
		return nil, err
	}
	return s.repo.ListForAccount(ctx, kind, accountID)
}

// RequireAccount verifies the account row exists, returning a not-found
// error otherwise.
func (s *Service) RequireAccount(ctx context.Context, kind AccountKind, accountID id.ID) error {
	exists, err := s.repo.AccountExists(ctx, kind, accountID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewNotFound(string(kind), accountID.String())
	}
	return nil
}
