package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"khata/internal/domain/catalogs/partner"
	"khata/internal/infrastructure/storage/sqlite"
)

// PartnerRepo implements partner.Repository on SQLite.
type PartnerRepo struct {
	*BaseCatalogRepo[*partner.Partner]
}

var _ partner.Repository = (*PartnerRepo)(nil)

func NewPartnerRepo(txm *sqlite.TxManager) *PartnerRepo {
	return &PartnerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"partners",
			sqlite.ExtractDBColumns[partner.Partner](),
			func() *partner.Partner { return &partner.Partner{} },
		),
	}
}

func (r *PartnerRepo) List(ctx context.Context, search string) ([]*partner.Partner, error) {
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

func (r *PartnerRepo) FindByPhone(ctx context.Context, phone string) (*partner.Partner, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"phone": phone}).
		Limit(1)
	return r.FindOne(ctx, q, phone)
}
