package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"khata/internal/domain/catalogs/category"
	"khata/internal/infrastructure/storage/sqlite"
)

// CategoryRepo implements category.Repository on SQLite.
type CategoryRepo struct {
	*BaseCatalogRepo[*category.Category]
}

var _ category.Repository = (*CategoryRepo)(nil)

func NewCategoryRepo(txm *sqlite.TxManager) *CategoryRepo {
	return &CategoryRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"categories",
			sqlite.ExtractDBColumns[category.Category](),
			func() *category.Category { return &category.Category{} },
		),
	}
}

func (r *CategoryRepo) List(ctx context.Context) ([]*category.Category, error) {
	return r.FindAll(ctx, r.baseSelect().OrderBy("name ASC"))
}

func (r *CategoryRepo) FindByName(ctx context.Context, name string) (*category.Category, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"name": name}).
		Limit(1)
	return r.FindOne(ctx, q, name)
}
