package catalog_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"khata/internal/core/id"
	"khata/internal/domain/catalogs/phone"
	"khata/internal/infrastructure/storage/sqlite"
)

// PhoneRepo implements phone.Repository on SQLite.
type PhoneRepo struct {
	*BaseCatalogRepo[*phone.Phone]
	txm *sqlite.TxManager
}

var _ phone.Repository = (*PhoneRepo)(nil)

func NewPhoneRepo(txm *sqlite.TxManager) *PhoneRepo {
	return &PhoneRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"phones",
			sqlite.ExtractDBColumns[phone.Phone](),
			func() *phone.Phone { return &phone.Phone{} },
		),
		txm: txm,
	}
}

func (r *PhoneRepo) List(ctx context.Context, search string) ([]*phone.Phone, error) {
	q := r.baseSelect().OrderBy("brand ASC", "model ASC")
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where(squirrel.Or{
			squirrel.Like{"brand": pattern},
			squirrel.Like{"model": pattern},
			squirrel.Like{"imei": pattern},
		})
	}
	return r.FindAll(ctx, q)
}

func (r *PhoneRepo) ListSellable(ctx context.Context) ([]*phone.Phone, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"status": phone.StatusInStock}).
		Where("CAST(sale_price AS REAL) > 0").
		OrderBy("brand ASC", "model ASC")
	return r.FindAll(ctx, q)
}

func (r *PhoneRepo) FindByIMEI(ctx context.Context, imei string) (*phone.Phone, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"imei": imei}).
		Limit(1)
	return r.FindOne(ctx, q, imei)
}

// MarkSold flips the unit to sold in a single guarded statement so two
// concurrent sales cannot both take the same unit.
func (r *PhoneRepo) MarkSold(ctx context.Context, phoneID id.ID, soldAt time.Time) (bool, error) {
	const stmt = `
		UPDATE phones
		SET status = ?, sold_at = ?
		WHERE id = ? AND status = ?`

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.ExecContext(ctx, stmt, phone.StatusSold, soldAt, phoneID, phone.StatusInStock)
	if err != nil {
		return false, fmt.Errorf("mark sold: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark sold: %w", err)
	}
	return affected == 1, nil
}
