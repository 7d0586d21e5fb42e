// Package ledger_repo persists ledger entries on SQLite, one table per
// account kind.
package ledger_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/internal/domain/ledger"
	"khata/internal/infrastructure/storage/sqlite"
)

// LedgerRepo implements ledger.Repository on SQLite.
type LedgerRepo struct {
	txm *sqlite.TxManager
}

var _ ledger.Repository = (*LedgerRepo)(nil)

func NewLedgerRepo(txm *sqlite.TxManager) *LedgerRepo {
	return &LedgerRepo{txm: txm}
}

// tables maps an account kind onto its entry table and account column.
func tables(kind ledger.AccountKind) (table, accountTable, accountCol string, err error) {
	switch kind {
	case ledger.KindCustomer:
		return "customer_ledger_entries", "customers", "customer_id", nil
	case ledger.KindPartner:
		return "partner_ledger_entries", "partners", "partner_id", nil
	default:
		return "", "", "", apperror.NewValidation(fmt.Sprintf("invalid account kind %q", kind))
	}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (r *LedgerRepo) AccountExists(ctx context.Context, kind ledger.AccountKind, accountID id.ID) (bool, error) {
	_, accountTable, _, err := tables(kind)
	if err != nil {
		return false, err
	}

	stmt := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = ?)", accountTable)
	querier := r.txm.GetQuerier(ctx)

	var exists bool
	if err := querier.QueryRowContext(ctx, stmt, accountID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s account: %w", kind, err)
	}
	return exists, nil
}

func (r *LedgerRepo) Latest(ctx context.Context, kind ledger.AccountKind, accountID id.ID) (*ledger.Entry, error) {
	table, _, accountCol, err := tables(kind)
	if err != nil {
		return nil, err
	}

	sql, args, err := builder().
		Select(entryColumns(accountCol)...).
		From(table).
		Where(squirrel.Eq{accountCol: accountID}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest query: %w", err)
	}

	var e ledger.Entry
	querier := r.txm.GetQuerier(ctx)
	if err := sqlscan.Get(ctx, querier, &e, sql, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest %s entry: %w", kind, err)
	}
	return &e, nil
}

func (r *LedgerRepo) Insert(ctx context.Context, kind ledger.AccountKind, e *ledger.Entry) error {
	table, _, accountCol, err := tables(kind)
	if err != nil {
		return err
	}

	sql, args, err := builder().
		Insert(table).
		SetMap(map[string]any{
			accountCol:    e.AccountID,
			"entry_date":  e.EntryDate,
			"description": e.Description,
			"debit":       e.Debit,
			"credit":      e.Credit,
			"balance":     e.Balance,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("insert %s entry: %w", kind, err)
	}
	seq, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert %s entry: %w", kind, err)
	}
	e.ID = seq
	return nil
}

func (r *LedgerRepo) ListForAccount(ctx context.Context, kind ledger.AccountKind, accountID id.ID) ([]*ledger.Entry, error) {
	table, _, accountCol, err := tables(kind)
	if err != nil {
		return nil, err
	}

	sql, args, err := builder().
		Select(entryColumns(accountCol)...).
		From(table).
		Where(squirrel.Eq{accountCol: accountID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var entries []*ledger.Entry
	querier := r.txm.GetQuerier(ctx)
	if err := sqlscan.Select(ctx, querier, &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s entries: %w", kind, err)
	}
	return entries, nil
}

// entryColumns aliases the per-kind account column onto the shared
// account_id field.
func entryColumns(accountCol string) []string {
	return []string{
		"id",
		accountCol + " AS account_id",
		"entry_date",
		"description",
		"debit",
		"credit",
		"balance",
	}
}
