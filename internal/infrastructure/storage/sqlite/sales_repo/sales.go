// Package sales_repo persists sale transactions on SQLite.
package sales_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"khata/internal/core/apperror"
	"khata/internal/domain/sales"
	"khata/internal/infrastructure/storage/sqlite"
)

const table = "sale_transactions"

// SalesRepo implements sales.Repository on SQLite. Transactions are
// insert-only; there is no update or delete path.
type SalesRepo struct {
	txm  *sqlite.TxManager
	cols []string
}

var _ sales.Repository = (*SalesRepo)(nil)

func NewSalesRepo(txm *sqlite.TxManager) *SalesRepo {
	return &SalesRepo{
		txm:  txm,
		cols: sqlite.ExtractDBColumns[sales.SaleTransaction](),
	}
}

func (r *SalesRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (r *SalesRepo) Insert(ctx context.Context, t *sales.SaleTransaction) error {
	data := sqlite.StructToMap(t)
	delete(data, "id") // assigned by the store

	sql, args, err := r.builder().
		Insert(table).
		SetMap(data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	seq, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	t.ID = seq
	return nil
}

func (r *SalesRepo) GetByID(ctx context.Context, saleID int64) (*sales.SaleTransaction, error) {
	sql, args, err := r.builder().
		Select(r.cols...).
		From(table).
		Where(squirrel.Eq{"id": saleID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t sales.SaleTransaction
	querier := r.txm.GetQuerier(ctx)
	if err := sqlscan.Get(ctx, querier, &t, sql, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("sale", saleID)
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &t, nil
}

func (r *SalesRepo) List(ctx context.Context, from, to time.Time) ([]*sales.SaleTransaction, error) {
	sql, args, err := r.builder().
		Select(r.cols...).
		From(table).
		Where(squirrel.GtOrEq{"sale_date": from}).
		Where(squirrel.LtOrEq{"sale_date": to}).
		OrderBy("sale_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*sales.SaleTransaction
	querier := r.txm.GetQuerier(ctx)
	if err := sqlscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return items, nil
}
