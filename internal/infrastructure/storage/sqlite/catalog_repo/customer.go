package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"khata/internal/domain/catalogs/customer"
	"khata/internal/infrastructure/storage/sqlite"
)

// CustomerRepo implements customer.Repository on SQLite.
type CustomerRepo struct {
	*BaseCatalogRepo[*customer.Customer]
}

var _ customer.Repository = (*CustomerRepo)(nil)

func NewCustomerRepo(txm *sqlite.TxManager) *CustomerRepo {
	return &CustomerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"customers",
			sqlite.ExtractDBColumns[customer.Customer](),
			func() *customer.Customer { return &customer.Customer{} },
		),
	}
}

func (r *CustomerRepo) List(ctx context.Context, search string) ([]*customer.Customer, error) {
	q := r.baseSelect().OrderBy("name ASC")
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where(squirrel.Or{
			squirrel.Like{"name": pattern},
			squirrel.Like{"phone": pattern},
		})
	}
	return r.FindAll(ctx, q)
}

func (r *CustomerRepo) FindByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"phone": phone}).
		Limit(1)
	return r.FindOne(ctx, q, phone)
}
