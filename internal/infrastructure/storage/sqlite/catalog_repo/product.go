package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"khata/internal/core/id"
	"khata/internal/domain/catalogs/product"
	"khata/internal/infrastructure/storage/sqlite"
)

// ProductRepo implements product.Repository on SQLite.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
	txm *sqlite.TxManager
}

var _ product.Repository = (*ProductRepo)(nil)

func NewProductRepo(txm *sqlite.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"products",
			sqlite.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
		txm: txm,
	}
}

func (r *ProductRepo) List(ctx context.Context, search string) ([]*product.Product, error) {
	q := r.baseSelect().OrderBy("name ASC")
	if search != "" {
		q = q.Where(squirrel.Like{"name": "%" + search + "%"})
	}
	return r.FindAll(ctx, q)
}

func (r *ProductRepo) ListSellable(ctx context.Context) ([]*product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Gt{"stock_quantity": 0}).
		Where("CAST(selling_price AS REAL) > 0").
		OrderBy("name ASC")
	return r.FindAll(ctx, q)
}

// ReduceStock decrements stock in a single guarded statement so two
// concurrent sales cannot both take the last unit.
func (r *ProductRepo) ReduceStock(ctx context.Context, productID id.ID, qty int) (bool, error) {
	const stmt = `
		UPDATE products
		SET stock_quantity = stock_quantity - ?,
		    sold_quantity = sold_quantity + ?
		WHERE id = ? AND stock_quantity >= ?`

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.ExecContext(ctx, stmt, qty, qty, productID, qty)
	if err != nil {
		return false, fmt.Errorf("reduce stock: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reduce stock: %w", err)
	}
	return affected == 1, nil
}
