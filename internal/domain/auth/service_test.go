package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khata/internal/core/apperror"
	"khata/internal/domain/auth"
	"khata/internal/infrastructure/storage/sqlite"
	"khata/internal/infrastructure/storage/sqlite/auth_repo"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Rebuild(ctx))

	jwtService := auth.NewJWTService(auth.DefaultJWTConfig("test-secret"))
	return auth.NewService(auth_repo.NewUserRepo(sqlite.NewTxManager(store)), jwtService, auth.DefaultServiceConfig())
}

func TestRegisterAndLogin(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, auth.RegisterRequest{
		Username: "shopkeeper",
		Password: "s3cret-pass",
		Role:     auth.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, "shopkeeper", user.Username)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash, "password must be stored hashed")

	result, err := s.Login(ctx, "shopkeeper", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "shopkeeper", result.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, auth.RegisterRequest{
		Username: "shopkeeper", Password: "s3cret-pass", Role: auth.RoleStaff,
	})
	require.NoError(t, err)

	_, err = s.Login(ctx, "shopkeeper", "wrong")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)

	// Unknown user fails identically.
	_, err = s.Login(ctx, "nobody", "whatever")
	require.Error(t, err)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, auth.RegisterRequest{
		Username: "shopkeeper", Password: "s3cret-pass", Role: auth.RoleStaff,
	})
	require.NoError(t, err)

	_, err = s.Register(ctx, auth.RegisterRequest{
		Username: "shopkeeper", Password: "another-pass", Role: auth.RoleAdmin,
	})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

func TestRegisterShortPassword(t *testing.T) {
	s := newService(t)

	_, err := s.Register(context.Background(), auth.RegisterRequest{
		Username: "shopkeeper", Password: "short", Role: auth.RoleStaff,
	})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestChangePassword(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, auth.RegisterRequest{
		Username: "shopkeeper", Password: "s3cret-pass", Role: auth.RoleStaff,
	})
	require.NoError(t, err)

	err = s.ChangePassword(ctx, user.ID, "wrong-old", "brand-new-pass")
	require.Error(t, err)

	require.NoError(t, s.ChangePassword(ctx, user.ID, "s3cret-pass", "brand-new-pass"))

	_, err = s.Login(ctx, "shopkeeper", "s3cret-pass")
	require.Error(t, err)
	_, err = s.Login(ctx, "shopkeeper", "brand-new-pass")
	require.NoError(t, err)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureAdmin(ctx, "admin", "admin-pass-123"))
	require.NoError(t, s.EnsureAdmin(ctx, "admin", "admin-pass-123"))

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, auth.RoleAdmin, users[0].Role)
}

func TestJWTRoundtrip(t *testing.T) {
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig("test-secret"))

	token, expiresAt, err := jwtService.GenerateAccessToken("user-1", "shopkeeper", auth.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, expiresAt.IsZero())

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "shopkeeper", claims.Username)
	assert.Equal(t, string(auth.RoleAdmin), claims.Role)

	// A token signed with a different secret is rejected.
	other := auth.NewJWTService(auth.DefaultJWTConfig("other-secret"))
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
