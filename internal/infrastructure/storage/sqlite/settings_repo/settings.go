// Package settings_repo persists the single-row shop settings.
package settings_repo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"

	"khata/internal/domain/settings"
	"khata/internal/infrastructure/storage/sqlite"
)

// SettingsRepo implements settings.Repository on SQLite. The settings
// table holds exactly one row (id = 1), created by the schema seed.
type SettingsRepo struct {
	txm *sqlite.TxManager
}

var _ settings.Repository = (*SettingsRepo)(nil)

func NewSettingsRepo(txm *sqlite.TxManager) *SettingsRepo {
	return &SettingsRepo{txm: txm}
}

func (r *SettingsRepo) Get(ctx context.Context) (*settings.Settings, error) {
	const stmt = `SELECT shop_name, address, phone, logo_path FROM settings WHERE id = 1`

	var s settings.Settings
	querier := r.txm.GetQuerier(ctx)
	if err := sqlscan.Get(ctx, querier, &s, stmt); err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

func (r *SettingsRepo) Update(ctx context.Context, s *settings.Settings) error {
	const stmt = `
		UPDATE settings
		SET shop_name = ?, address = ?, phone = ?, logo_path = ?
		WHERE id = 1`

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.ExecContext(ctx, stmt, s.ShopName, s.Address, s.Phone, s.LogoPath); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
