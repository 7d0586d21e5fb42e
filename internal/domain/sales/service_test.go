package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/internal/core/types"
	"khata/internal/domain/catalogs/customer"
	"khata/internal/domain/catalogs/phone"
	"khata/internal/domain/catalogs/product"
	"khata/internal/domain/inventory"
	"khata/internal/domain/ledger"
	"khata/internal/domain/sales"
	"khata/internal/infrastructure/storage/sqlite"
	"khata/internal/infrastructure/storage/sqlite/catalog_repo"
	"khata/internal/infrastructure/storage/sqlite/ledger_repo"
	"khata/internal/infrastructure/storage/sqlite/sales_repo"
)

type env struct {
	sales    *sales.Service
	ledger   *ledger.Service
	products *catalog_repo.ProductRepo
	phones   *catalog_repo.PhoneRepo

	customer *customer.Customer
	product  *product.Product
	phone    *phone.Phone
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
	salesRepo := sales_repo.NewSalesRepo(txm)

	inventoryService := inventory.NewService(productRepo, phoneRepo)
	ledgerService := ledger.NewService(ledger_repo.NewLedgerRepo(txm), txm)
	salesService := sales.NewService(salesRepo, inventoryService, ledgerService, txm)

	cust := customer.New("Sita Gurung", "9800000002")
	require.NoError(t, catalog_repo.NewCustomerRepo(txm).Create(ctx, cust))

	prod := product.New("USB-C Charger", types.MustMoney("100"), 6)
	prod.PurchasePrice = types.MustMoney("60")
	require.NoError(t, productRepo.Create(ctx, prod))

	ph := phone.New("Samsung", "Galaxy A15", "356789104321987", types.MustMoney("500"))
	ph.PurchasePrice = types.MustMoney("420")
	require.NoError(t, phoneRepo.Create(ctx, ph))

	return &env{
		sales:    salesService,
		ledger:   ledgerService,
		products: productRepo,
		phones:   phoneRepo,
		customer: cust,
		product:  prod,
		phone:    ph,
	}
}

func saleDay(d int) time.Time {
	return time.Date(2024, time.April, d, 0, 0, 0, 0, time.UTC)
}

func TestRecordProductSale(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sale, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind:   sales.KindProduct,
		ItemID:     e.product.ID,
		Quantity:   4,
		Discount:   types.MustMoney("50"),
		CustomerID: &e.customer.ID,
		SaleDate:   saleDay(1),
	})
	require.NoError(t, err)

	// 4 x 100 - 50
	assert.True(t, sale.Total.Equal(types.MustMoney("350")), "got %s", sale.Total)
	assert.Equal(t, "USB-C Charger", sale.ItemName)
	assert.True(t, sale.UnitCost.Equal(types.MustMoney("60")))
	assert.NotZero(t, sale.ID)

	p, err := e.products.GetByID(ctx, e.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.StockQuantity)
	assert.Equal(t, 4, p.SoldQuantity)

	balance, err := e.ledger.BalanceAsOf(ctx, ledger.KindCustomer, e.customer.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(types.MustMoney("350")), "got %s", balance)
}

func TestRecordPhoneSale(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sale, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind:   sales.KindPhone,
		ItemID:     e.phone.ID,
		Quantity:   1,
		CustomerID: &e.customer.ID,
		SaleDate:   saleDay(2),
	})
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(types.MustMoney("500")))
	assert.Equal(t, "Samsung Galaxy A15", sale.ItemName)

	p, err := e.phones.GetByID(ctx, e.phone.ID)
	require.NoError(t, err)
	assert.Equal(t, phone.StatusSold, p.Status)
	require.NotNil(t, p.SoldAt)

	balance, err := e.ledger.BalanceAsOf(ctx, ledger.KindCustomer, e.customer.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(types.MustMoney("500")))

	// The same unit cannot be sold twice.
	_, err = e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind: sales.KindPhone,
		ItemID:   e.phone.ID,
		Quantity: 1,
		SaleDate: saleDay(3),
	})
	assert.True(t, apperror.IsUnavailable(err), "got %v", err)
}

func TestPhoneSaleRequiresQuantityOne(t *testing.T) {
	e := newEnv(t)

	_, err := e.sales.RecordSale(context.Background(), sales.RecordSaleInput{
		ItemKind: sales.KindPhone,
		ItemID:   e.phone.ID,
		Quantity: 2,
		SaleDate: saleDay(1),
	})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestInsufficientStockLeavesEverythingUntouched(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind:   sales.KindProduct,
		ItemID:     e.product.ID,
		Quantity:   7, // stock is 6
		CustomerID: &e.customer.ID,
		SaleDate:   saleDay(1),
	})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)

	p, err := e.products.GetByID(ctx, e.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, p.StockQuantity)

	_, err = e.sales.GetByID(ctx, 1)
	assert.True(t, apperror.IsNotFound(err), "no sale row may exist")

	balance, err := e.ledger.BalanceAsOf(ctx, ledger.KindCustomer, e.customer.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestDiscountExceedingSubtotalRollsBackStock(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// The stock decrement happens before pricing; the failure must undo it.
	_, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind:   sales.KindProduct,
		ItemID:     e.product.ID,
		Quantity:   1,
		Discount:   types.MustMoney("120"), // subtotal is 100
		CustomerID: &e.customer.ID,
		SaleDate:   saleDay(1),
	})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	p, err := e.products.GetByID(ctx, e.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, p.StockQuantity, "rolled back")
	assert.Equal(t, 0, p.SoldQuantity)
}

func TestSaleWithoutCustomerPostsNoLedgerEntry(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind: sales.KindProduct,
		ItemID:   e.product.ID,
		Quantity: 1,
		SaleDate: saleDay(1),
	})
	require.NoError(t, err)

	balance, err := e.ledger.BalanceAsOf(ctx, ledger.KindCustomer, e.customer.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestZeroTotalSalePostsNoLedgerEntry(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// Discount equal to the subtotal is allowed; a free sale must not
	// touch the customer's ledger.
	sale, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind:   sales.KindProduct,
		ItemID:     e.product.ID,
		Quantity:   1,
		Discount:   types.MustMoney("100"),
		CustomerID: &e.customer.ID,
		SaleDate:   saleDay(1),
	})
	require.NoError(t, err)
	assert.True(t, sale.Total.IsZero())

	entries, err := e.ledger.EntriesFor(ctx, ledger.KindCustomer, e.customer.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordSaleUnknownCustomerRollsBackStock(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ghost := id.New()

	_, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind:   sales.KindProduct,
		ItemID:     e.product.ID,
		Quantity:   2,
		CustomerID: &ghost,
		SaleDate:   saleDay(1),
	})
	assert.True(t, apperror.IsNotFound(err), "dangling customer id must read as not found, got %v", err)

	p, err := e.products.GetByID(ctx, e.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, p.StockQuantity)

	_, err = e.sales.GetByID(ctx, 1)
	assert.True(t, apperror.IsNotFound(err), "no sale row may exist")
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	e := newEnv(t)

	_, err := e.sales.RecordSale(context.Background(), sales.RecordSaleInput{
		ItemKind: sales.KindProduct,
		ItemID:   id.New(),
		Quantity: 1,
		SaleDate: saleDay(1),
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestStockConservationAcrossSales(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
			ItemKind: sales.KindProduct,
			ItemID:   e.product.ID,
			Quantity: 2,
			SaleDate: saleDay(i + 1),
		})
		require.NoError(t, err)
	}

	p, err := e.products.GetByID(ctx, e.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.StockQuantity)
	assert.Equal(t, 6, p.SoldQuantity)

	// Sold out: the next sale must fail without going negative.
	_, err = e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind: sales.KindProduct,
		ItemID:   e.product.ID,
		Quantity: 1,
		SaleDate: saleDay(9),
	})
	require.Error(t, err)

	p, err = e.products.GetByID(ctx, e.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.StockQuantity)
}

func TestListSalesByRange(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for _, d := range []int{1, 5, 20} {
		_, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
			ItemKind: sales.KindProduct,
			ItemID:   e.product.ID,
			Quantity: 1,
			SaleDate: saleDay(d),
		})
		require.NoError(t, err)
	}

	items, err := e.sales.List(ctx, saleDay(2), saleDay(10))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, saleDay(5).Unix(), items[0].SaleDate.Unix())

	all, err := e.sales.List(ctx, saleDay(1), saleDay(30))
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.True(t, all[0].SaleDate.After(all[2].SaleDate))
}
