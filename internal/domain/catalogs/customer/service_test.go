package customer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khata/internal/core/apperror"
	"khata/internal/domain/catalogs/customer"
	"khata/internal/infrastructure/storage/sqlite"
	"khata/internal/infrastructure/storage/sqlite/catalog_repo"
)

func newService(t *testing.T) *customer.Service {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Rebuild(ctx))

	return customer.NewService(catalog_repo.NewCustomerRepo(sqlite.NewTxManager(store)))
}

func TestCreateAndGet(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	c := customer.New("Ram Thapa", "9800000001")
	require.NoError(t, s.Create(ctx, c))

	got, err := s.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ram Thapa", got.Name)
	assert.Equal(t, "9800000001", got.Phone)
}

func TestCreateDuplicatePhone(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, customer.New("Ram Thapa", "9800000001")))

	err := s.Create(ctx, customer.New("Shyam Thapa", "9800000001"))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

func TestCreateValidation(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	err := s.Create(ctx, customer.New("", "9800000001"))
	require.Error(t, err)

	bad := customer.New("Ram", "9800000002")
	email := "not-an-email"
	bad.Email = &email
	assert.Error(t, s.Create(ctx, bad))
}

func TestUpdateKeepsOwnPhone(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	c := customer.New("Ram Thapa", "9800000001")
	require.NoError(t, s.Create(ctx, c))

	// Updating without changing the phone must not trip the
	// uniqueness check against the customer's own row.
	c.Name = "Ram B. Thapa"
	require.NoError(t, s.Update(ctx, c))
}

func TestListSearch(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, customer.New("Ram Thapa", "9800000001")))
	require.NoError(t, s.Create(ctx, customer.New("Sita Gurung", "9810000002")))

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byName, err := s.List(ctx, "Sita")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Sita Gurung", byName[0].Name)

	byPhone, err := s.List(ctx, "98000")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Ram Thapa", byPhone[0].Name)
}

func TestDelete(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	c := customer.New("Ram Thapa", "9800000001")
	require.NoError(t, s.Create(ctx, c))
	require.NoError(t, s.Delete(ctx, c.ID))

	_, err := s.GetByID(ctx, c.ID)
	assert.True(t, apperror.IsNotFound(err))
}
