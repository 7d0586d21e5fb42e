package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khata/internal/core/types"
	"khata/internal/domain/catalogs/customer"
	"khata/internal/domain/catalogs/partner"
	"khata/internal/domain/catalogs/phone"
	"khata/internal/domain/catalogs/product"
	"khata/internal/domain/inventory"
	"khata/internal/domain/ledger"
	"khata/internal/domain/reports"
	"khata/internal/domain/sales"
	"khata/internal/infrastructure/storage/sqlite"
	"khata/internal/infrastructure/storage/sqlite/catalog_repo"
	"khata/internal/infrastructure/storage/sqlite/ledger_repo"
	"khata/internal/infrastructure/storage/sqlite/report_repo"
	"khata/internal/infrastructure/storage/sqlite/sales_repo"
)

// gregorianDates parses plain YYYY-MM-DD; the calendar conversion has
// its own tests.
func gregorianDates(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

type env struct {
	reports *reports.Service
	sales   *sales.Service
	ledger  *ledger.Service

	customers *catalog_repo.CustomerRepo
	partners  *catalog_repo.PartnerRepo
	products  *catalog_repo.ProductRepo
	phones    *catalog_repo.PhoneRepo
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

	inventoryService := inventory.NewService(productRepo, phoneRepo)
	ledgerService := ledger.NewService(ledger_repo.NewLedgerRepo(txm), txm)

	return &env{
		reports:   reports.NewService(report_repo.NewReportRepo(txm), gregorianDates),
		sales:     sales.NewService(sales_repo.NewSalesRepo(txm), inventoryService, ledgerService, txm),
		ledger:    ledgerService,
		customers: catalog_repo.NewCustomerRepo(txm),
		partners:  catalog_repo.NewPartnerRepo(txm),
		products:  productRepo,
		phones:    phoneRepo,
	}
}

func TestProfitSummary(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	prod := product.New("Charger", types.MustMoney("100"), 10)
	prod.PurchasePrice = types.MustMoney("60")
	require.NoError(t, e.products.Create(ctx, prod))

	ph := phone.New("Samsung", "A15", "356789104321987", types.MustMoney("500"))
	ph.PurchasePrice = types.MustMoney("420")
	require.NoError(t, e.phones.Create(ctx, ph))

	saleDate := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	_, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind: sales.KindProduct, ItemID: prod.ID, Quantity: 2, SaleDate: saleDate,
	})
	require.NoError(t, err)
	_, err = e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind: sales.KindPhone, ItemID: ph.ID, Quantity: 1, SaleDate: saleDate,
	})
	require.NoError(t, err)

	summary, err := e.reports.ProfitSummary(ctx, "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.SaleCount)
	// Revenue 2x100 + 500, cost 2x60 + 420.
	assert.True(t, summary.TotalRevenue.Equal(types.MustMoney("700")), "got %s", summary.TotalRevenue)
	assert.True(t, summary.TotalCost.Equal(types.MustMoney("540")), "got %s", summary.TotalCost)
	assert.True(t, summary.Profit.Equal(types.MustMoney("160")), "got %s", summary.Profit)

	// Outside the range.
	empty, err := e.reports.ProfitSummary(ctx, "2024-07-01", "2024-07-31")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.SaleCount)
	assert.True(t, empty.Profit.IsZero())
}

func TestProfitSummaryInvalidRange(t *testing.T) {
	e := newEnv(t)

	_, err := e.reports.ProfitSummary(context.Background(), "2024-06-30", "2024-06-01")
	assert.Error(t, err, "end before start")

	_, err = e.reports.ProfitSummary(context.Background(), "garbage", "2024-06-01")
	assert.Error(t, err)
}

func TestDebtorsAndCreditors(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	debtor := customer.New("Ram Thapa", "9800000001")
	require.NoError(t, e.customers.Create(ctx, debtor))
	settled := customer.New("Sita Gurung", "9810000002")
	require.NoError(t, e.customers.Create(ctx, settled))

	supplier := partner.New("Kathmandu Wholesale", "9820000003")
	require.NoError(t, e.partners.Create(ctx, supplier))

	_, err := e.ledger.PostEntry(ctx, ledger.KindCustomer, debtor.ID,
		"credit sale", types.MustMoney("300"), types.Zero(), day)
	require.NoError(t, err)

	// Settled customer: sale then full payment.
	_, err = e.ledger.PostEntry(ctx, ledger.KindCustomer, settled.ID,
		"credit sale", types.MustMoney("200"), types.Zero(), day)
	require.NoError(t, err)
	_, err = e.ledger.PostEntry(ctx, ledger.KindCustomer, settled.ID,
		"payment received", types.Zero(), types.MustMoney("200"), day)
	require.NoError(t, err)

	_, err = e.ledger.PostEntry(ctx, ledger.KindPartner, supplier.ID,
		"stock purchase on credit", types.Zero(), types.MustMoney("1000"), day)
	require.NoError(t, err)

	debtors, err := e.reports.Debtors(ctx)
	require.NoError(t, err)
	require.Len(t, debtors, 1)
	assert.Equal(t, "Ram Thapa", debtors[0].Name)
	assert.True(t, debtors[0].Balance.Equal(types.MustMoney("300")))

	creditors, err := e.reports.Creditors(ctx)
	require.NoError(t, err)
	require.Len(t, creditors, 1)
	assert.Equal(t, "Kathmandu Wholesale", creditors[0].Name)
	assert.True(t, creditors[0].Balance.Equal(types.MustMoney("1000")))
}

func TestTopCustomers(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	saleDate := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	big := customer.New("Ram Thapa", "9800000001")
	require.NoError(t, e.customers.Create(ctx, big))
	small := customer.New("Sita Gurung", "9810000002")
	require.NoError(t, e.customers.Create(ctx, small))

	prod := product.New("Charger", types.MustMoney("100"), 20)
	require.NoError(t, e.products.Create(ctx, prod))

	_, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind: sales.KindProduct, ItemID: prod.ID, Quantity: 5,
		CustomerID: &big.ID, SaleDate: saleDate,
	})
	require.NoError(t, err)
	_, err = e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind: sales.KindProduct, ItemID: prod.ID, Quantity: 1,
		CustomerID: &small.ID, SaleDate: saleDate,
	})
	require.NoError(t, err)

	top, err := e.reports.TopCustomers(ctx, "2024-06-01", "2024-06-30", 0)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Ram Thapa", top[0].Name)
	assert.True(t, top[0].Total.Equal(types.MustMoney("500")))
	assert.Equal(t, "Sita Gurung", top[1].Name)

	one, err := e.reports.TopCustomers(ctx, "2024-06-01", "2024-06-30", 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Ram Thapa", one[0].Name)
}

func TestDashboard(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cust := customer.New("Ram Thapa", "9800000001")
	require.NoError(t, e.customers.Create(ctx, cust))

	prod := product.New("Charger", types.MustMoney("100"), 4)
	prod.PurchasePrice = types.MustMoney("60")
	require.NoError(t, e.products.Create(ctx, prod))

	ph := phone.New("Samsung", "A15", "356789104321987", types.MustMoney("500"))
	ph.PurchasePrice = types.MustMoney("420")
	require.NoError(t, e.phones.Create(ctx, ph))

	// A sale today feeds the revenue KPI and the receivable total.
	_, err := e.sales.RecordSale(ctx, sales.RecordSaleInput{
		ItemKind: sales.KindProduct, ItemID: prod.ID, Quantity: 1,
		CustomerID: &cust.ID,
	})
	require.NoError(t, err)

	d, err := e.reports.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, d.CustomerCount)
	assert.Equal(t, 1, d.PartnerCount) // seeded placeholder supplier
	assert.Equal(t, 1, d.ProductCount)
	assert.Equal(t, 1, d.PhonesInStock)
	// 3 chargers at 60 plus the unsold phone at 420.
	assert.True(t, d.StockValue.Equal(types.MustMoney("600")), "got %s", d.StockValue)
	assert.True(t, d.TodayRevenue.Equal(types.MustMoney("100")), "got %s", d.TodayRevenue)
	assert.True(t, d.TotalReceivable.Equal(types.MustMoney("100")), "got %s", d.TotalReceivable)
	assert.True(t, d.TotalPayable.IsZero())
}
