package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/internal/core/types"
	"khata/internal/domain/catalogs/phone"
	"khata/internal/domain/catalogs/product"
	"khata/internal/domain/inventory"
	"khata/internal/infrastructure/storage/sqlite"
	"khata/internal/infrastructure/storage/sqlite/catalog_repo"
)

type env struct {
	service  *inventory.Service
	products *catalog_repo.ProductRepo
	phones   *catalog_repo.PhoneRepo
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Rebuild(ctx))

	txm := sqlite.NewTxManager(store)
	productRepo := catalog_repo.NewProductRepo(txm)
	phoneRepo := catalog_repo.NewPhoneRepo(txm)

	return &env{
		service:  inventory.NewService(productRepo, phoneRepo),
		products: productRepo,
		phones:   phoneRepo,
	}
}

func TestReserveAndSell(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := product.New("Screen Protector", types.MustMoney("30"), 10)
	p.PurchasePrice = types.MustMoney("12")
	require.NoError(t, e.products.Create(ctx, p))

	item, err := e.service.ReserveAndSell(ctx, p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, "Screen Protector", item.ItemName)
	assert.True(t, item.UnitPrice.Equal(types.MustMoney("30")))
	assert.True(t, item.UnitCost.Equal(types.MustMoney("12")))

	got, err := e.products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.StockQuantity)
	assert.Equal(t, 3, got.SoldQuantity)
}

func TestReserveAndSellInsufficientStock(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := product.New("Earphones", types.MustMoney("80"), 2)
	require.NoError(t, e.products.Create(ctx, p))

	_, err := e.service.ReserveAndSell(ctx, p.ID, 3)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
}

func TestReserveAndSellUnknownProduct(t *testing.T) {
	e := newEnv(t)

	_, err := e.service.ReserveAndSell(context.Background(), id.New(), 1)
	assert.True(t, apperror.IsNotFound(err))
}

func TestReserveAndSellRejectsUnpricedProduct(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p := product.New("Mystery Box", types.Zero(), 5)
	require.NoError(t, e.products.Create(ctx, p))

	_, err := e.service.ReserveAndSell(ctx, p.ID, 1)
	require.Error(t, err)
}

func TestSellUnit(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	soldAt := time.Date(2024, time.May, 3, 10, 0, 0, 0, time.UTC)

	ph := phone.New("Xiaomi", "Redmi 13", "860000000000001", types.MustMoney("250"))
	ph.PurchasePrice = types.MustMoney("200")
	require.NoError(t, e.phones.Create(ctx, ph))

	item, err := e.service.SellUnit(ctx, ph.ID, soldAt)
	require.NoError(t, err)
	assert.Equal(t, "Xiaomi Redmi 13", item.ItemName)
	assert.True(t, item.UnitPrice.Equal(types.MustMoney("250")))

	got, err := e.phones.GetByID(ctx, ph.ID)
	require.NoError(t, err)
	assert.Equal(t, phone.StatusSold, got.Status)
	require.NotNil(t, got.SoldAt)

	// Second attempt on the sold unit fails.
	_, err = e.service.SellUnit(ctx, ph.ID, soldAt)
	assert.True(t, apperror.IsUnavailable(err), "got %v", err)
}

func TestListSellableFiltersStockAndPrice(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	inStock := product.New("Cable", types.MustMoney("15"), 4)
	require.NoError(t, e.products.Create(ctx, inStock))
	soldOut := product.New("Old Case", types.MustMoney("20"), 0)
	require.NoError(t, e.products.Create(ctx, soldOut))
	unpriced := product.New("Sample", types.Zero(), 9)
	require.NoError(t, e.products.Create(ctx, unpriced))

	available := phone.New("Samsung", "M14", "860000000000002", types.MustMoney("300"))
	require.NoError(t, e.phones.Create(ctx, available))
	sold := phone.New("Samsung", "M13", "860000000000003", types.MustMoney("280"))
	require.NoError(t, e.phones.Create(ctx, sold))
	_, err := e.service.SellUnit(ctx, sold.ID, time.Now().UTC())
	require.NoError(t, err)

	sellable, err := e.service.ListSellable(ctx)
	require.NoError(t, err)

	require.Len(t, sellable.Products, 1)
	assert.Equal(t, "Cable", sellable.Products[0].Name)
	require.Len(t, sellable.Phones, 1)
	assert.Equal(t, "860000000000002", sellable.Phones[0].IMEI)
}
