package ledger_test

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
	"khata/internal/domain/catalogs/partner"
	"khata/internal/domain/ledger"
	"khata/internal/infrastructure/storage/sqlite"
	"khata/internal/infrastructure/storage/sqlite/catalog_repo"
	"khata/internal/infrastructure/storage/sqlite/ledger_repo"
)

type env struct {
	service  *ledger.Service
	customer *customer.Customer
	partner  *partner.Partner
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Rebuild(ctx))

	txm := sqlite.NewTxManager(store)

	cust := customer.New("Ram Thapa", "9800000001")
	require.NoError(t, catalog_repo.NewCustomerRepo(txm).Create(ctx, cust))

	part := partner.New("Kathmandu Wholesale", "9810000001")
	require.NoError(t, catalog_repo.NewPartnerRepo(txm).Create(ctx, part))

	return &env{
		service:  ledger.NewService(ledger_repo.NewLedgerRepo(txm), txm),
		customer: cust,
		partner:  part,
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestCustomerRunningBalance(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// Customer ledger: debit raises what the customer owes.
	e1, err := e.service.PostEntry(ctx, ledger.KindCustomer, e.customer.ID,
		"credit sale", types.MustMoney("100"), types.Zero(), day(1))
	require.NoError(t, err)
	assert.True(t, e1.Balance.Equal(types.MustMoney("100")), "got %s", e1.Balance)

	e2, err := e.service.PostEntry(ctx, ledger.KindCustomer, e.customer.ID,
		"credit sale", types.MustMoney("50"), types.Zero(), day(2))
	require.NoError(t, err)
	assert.True(t, e2.Balance.Equal(types.MustMoney("150")), "got %s", e2.Balance)

	e3, err := e.service.PostEntry(ctx, ledger.KindCustomer, e.customer.ID,
		"payment received", types.Zero(), types.MustMoney("30"), day(3))
	require.NoError(t, err)
	assert.True(t, e3.Balance.Equal(types.MustMoney("120")), "got %s", e3.Balance)

	balance, err := e.service.BalanceAsOf(ctx, ledger.KindCustomer, e.customer.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(types.MustMoney("120")))

	entries, err := e.service.EntriesFor(ctx, ledger.KindCustomer, e.customer.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Ascending by sequence, each row carrying its persisted balance.
	assert.Less(t, entries[0].ID, entries[1].ID)
	assert.Less(t, entries[1].ID, entries[2].ID)
	assert.True(t, entries[0].Balance.Equal(types.MustMoney("100")))
	assert.True(t, entries[2].Balance.Equal(types.MustMoney("120")))
}

func TestPartnerBalanceConvention(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// Partner ledger: credit raises what the business owes.
	e1, err := e.service.PostEntry(ctx, ledger.KindPartner, e.partner.ID,
		"stock purchase on credit", types.Zero(), types.MustMoney("1000"), day(1))
	require.NoError(t, err)
	assert.True(t, e1.Balance.Equal(types.MustMoney("1000")), "got %s", e1.Balance)

	e2, err := e.service.PostEntry(ctx, ledger.KindPartner, e.partner.ID,
		"payment to supplier", types.MustMoney("400"), types.Zero(), day(2))
	require.NoError(t, err)
	assert.True(t, e2.Balance.Equal(types.MustMoney("600")), "got %s", e2.Balance)
}

func TestPostEntryUnknownAccount(t *testing.T) {
	e := newEnv(t)

	_, err := e.service.PostEntry(context.Background(), ledger.KindCustomer, id.New(),
		"ghost", types.MustMoney("10"), types.Zero(), day(1))
	assert.True(t, apperror.IsNotFound(err))
}

func TestPostEntryRejectsNegativeAmounts(t *testing.T) {
	e := newEnv(t)

	_, err := e.service.PostEntry(context.Background(), ledger.KindCustomer, e.customer.ID,
		"bad", types.MustMoney("-5"), types.Zero(), day(1))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestPostManualEntryMutualExclusion(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.service.PostManualEntry(ctx, ledger.KindCustomer, e.customer.ID,
		"nothing", types.Zero(), types.Zero(), day(1))
	assert.Error(t, err, "both sides zero")

	_, err = e.service.PostManualEntry(ctx, ledger.KindPartner, e.partner.ID,
		"ambiguous", types.MustMoney("10"), types.MustMoney("10"), day(1))
	assert.Error(t, err, "both sides set")

	_, err = e.service.PostManualEntry(ctx, ledger.KindCustomer, e.customer.ID,
		"opening balance", types.MustMoney("250"), types.Zero(), day(1))
	assert.NoError(t, err)
}

func TestBalanceAsOfEmptyLedger(t *testing.T) {
	e := newEnv(t)

	balance, err := e.service.BalanceAsOf(context.Background(), ledger.KindCustomer, e.customer.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestEntriesForUnknownAccount(t *testing.T) {
	e := newEnv(t)

	_, err := e.service.EntriesFor(context.Background(), ledger.KindPartner, id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestLedgersAreIndependentPerKind(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.service.PostEntry(ctx, ledger.KindCustomer, e.customer.ID,
		"sale", types.MustMoney("75"), types.Zero(), day(1))
	require.NoError(t, err)

	balance, err := e.service.BalanceAsOf(ctx, ledger.KindPartner, e.partner.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}
