package sqlite

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Rebuild(context.Background()))
	return store
}

func countRows(t *testing.T, store *Store, table string) int {
	t.Helper()
	var n int
	err := store.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestRebuildCreatesSchemaAndSeeds(t *testing.T) {
	store := newMemoryStore(t)

	assert.Equal(t, 3, countRows(t, store, "categories"))
	assert.Equal(t, 1, countRows(t, store, "partners")) // placeholder supplier
	assert.Equal(t, 1, countRows(t, store, "settings"))
	assert.Equal(t, 0, countRows(t, store, "customers"))
	assert.Equal(t, 0, countRows(t, store, "sale_transactions"))
}

func TestEnsureSchemaPreservesData(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	_, err := store.DB().Exec(
		`INSERT INTO customers (id, created_at, name, phone) VALUES ('c1', '2024-01-01', 'Ram', '9800000001')`)
	require.NoError(t, err)

	require.NoError(t, store.EnsureSchema(ctx))
	assert.Equal(t, 1, countRows(t, store, "customers"))
}

func TestRebuildWipesData(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	_, err := store.DB().Exec(
		`INSERT INTO customers (id, created_at, name, phone) VALUES ('c1', '2024-01-01', 'Ram', '9800000001')`)
	require.NoError(t, err)

	require.NoError(t, store.Rebuild(ctx))
	assert.Equal(t, 0, countRows(t, store, "customers"))
}

func TestDeletingCustomerCascadesLedger(t *testing.T) {
	store := newMemoryStore(t)
	db := store.DB()

	_, err := db.Exec(
		`INSERT INTO customers (id, created_at, name, phone) VALUES ('c1', '2024-01-01', 'Ram', '9800000001')`)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO customer_ledger_entries (customer_id, entry_date, description, debit, credit, balance)
		 VALUES ('c1', '2024-01-02', 'opening', '100', '0', '100')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM customers WHERE id = 'c1'`)
	require.NoError(t, err)

	assert.Equal(t, 0, countRows(t, store, "customer_ledger_entries"))
}

func TestDeletingProductNullsSaleReference(t *testing.T) {
	store := newMemoryStore(t)
	db := store.DB()

	_, err := db.Exec(
		`INSERT INTO products (id, created_at, name, purchase_price, selling_price, stock_quantity, sold_quantity)
		 VALUES ('p1', '2024-01-01', 'Charger', '60', '100', 5, 0)`)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO sale_transactions (item_kind, product_id, item_name, quantity, unit_price, unit_cost, discount, total, sale_date, created_at)
		 VALUES ('product', 'p1', 'Charger', 1, '100', '60', '0', '100', '2024-01-02', '2024-01-02')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM products WHERE id = 'p1'`)
	require.NoError(t, err)

	var productID any
	require.NoError(t, db.QueryRow(`SELECT product_id FROM sale_transactions`).Scan(&productID))
	assert.Nil(t, productID)
	// The snapshot survives the deletion.
	var name string
	require.NoError(t, db.QueryRow(`SELECT item_name FROM sale_transactions`).Scan(&name))
	assert.Equal(t, "Charger", name)
}

func TestBackupRestoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(filepath.Join(dir, "khata.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Rebuild(ctx))

	_, err = store.DB().Exec(
		`INSERT INTO customers (id, created_at, name, phone) VALUES ('c1', '2024-01-01', 'Ram', '9800000001')`)
	require.NoError(t, err)

	var backup bytes.Buffer
	require.NoError(t, store.Backup(ctx, &backup))
	require.NotZero(t, backup.Len())

	// Diverge from the snapshot, then restore it.
	_, err = store.DB().Exec(`DELETE FROM customers`)
	require.NoError(t, err)
	require.Equal(t, 0, countRows(t, store, "customers"))

	require.NoError(t, store.Restore(ctx, bytes.NewReader(backup.Bytes())))
	assert.Equal(t, 1, countRows(t, store, "customers"))
}

func TestRestoreRejectsMemoryStore(t *testing.T) {
	store := newMemoryStore(t)
	err := store.Restore(context.Background(), bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestRestoreRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(filepath.Join(dir, "khata.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Rebuild(ctx))

	err = store.Restore(ctx, bytes.NewReader([]byte("not a gzip stream")))
	assert.Error(t, err)
	// Store remains usable.
	assert.Equal(t, 1, countRows(t, store, "settings"))
}
