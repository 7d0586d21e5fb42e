package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"khata/internal/core/tx"
	"khata/pkg/logger"
)

// Compile-time check that TxManager implements tx.Manager interface.
var _ tx.Manager = (*TxManager)(nil)

// TxManager manages database transactions. The active *sql.Tx travels in
// the context so repositories transparently join the caller's transaction.
type TxManager struct {
	store *Store
}

// NewTxManager creates a new transaction manager.
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// txKey is the context key for active transaction.
type txKey struct{}

// RunInTransaction executes fn within a transaction.
// If a transaction already exists in ctx, it is reused (nested call).
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if existing := m.GetTx(ctx); existing != nil {
		// Joining the outer transaction: the outermost caller owns
		// commit/rollback.
		return fn(ctx)
	}

	dbTx, err := m.store.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, dbTx)

	if err := fn(txCtx); err != nil {
		if rbErr := dbTx.Rollback(); rbErr != nil {
			// Rollback failure is logged but never masks the original error.
			logger.Error(ctx, "rollback failed", "error", rbErr, "original_error", err)
		}
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetTx returns the current transaction from context, or nil if none.
func (m *TxManager) GetTx(ctx context.Context) *sql.Tx {
	if dbTx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return dbTx
	}
	return nil
}

// Querier is the subset of database operations repositories need.
// Both *sql.DB and *sql.Tx satisfy it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// GetQuerier returns the transaction if one is in context, otherwise the
// shared handle.
func (m *TxManager) GetQuerier(ctx context.Context) Querier {
	if dbTx := m.GetTx(ctx); dbTx != nil {
		return dbTx
	}
	return m.store.DB()
}
