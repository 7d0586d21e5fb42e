// Package auth_repo persists users on SQLite.
package auth_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/internal/domain/auth"
	"khata/internal/infrastructure/storage/sqlite"
)

const table = "users"

// UserRepo implements auth.UserRepository on SQLite.
type UserRepo struct {
	txm  *sqlite.TxManager
	cols []string
}

var _ auth.UserRepository = (*UserRepo)(nil)

func NewUserRepo(txm *sqlite.TxManager) *UserRepo {
	return &UserRepo{
		txm:  txm,
		cols: sqlite.ExtractDBColumns[auth.User](),
	}
}

func (r *UserRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (r *UserRepo) Create(ctx context.Context, u *auth.User) error {
	sql, args, err := r.builder().
		Insert(table).
		SetMap(sqlite.StructToMap(u)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.ExecContext(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	return r.findOne(ctx, squirrel.Eq{"id": userID}, userID.String())
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	return r.findOne(ctx, squirrel.Eq{"username": username}, username)
}

func (r *UserRepo) findOne(ctx context.Context, where squirrel.Eq, lookup string) (*auth.User, error) {
	sql, args, err := r.builder().
		Select(r.cols...).
		From(table).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u auth.User
	querier := r.txm.GetQuerier(ctx)
	if err := sqlscan.Get(ctx, querier, &u, sql, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", lookup)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) UpdatePassword(ctx context.Context, userID id.ID, passwordHash string) error {
	sql, args, err := r.builder().
		Update(table).
		Set("password_hash", passwordHash).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("user", userID.String())
	}
	return nil
}

func (r *UserRepo) List(ctx context.Context) ([]*auth.User, error) {
	sql, args, err := r.builder().
		Select(r.cols...).
		From(table).
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var users []*auth.User
	querier := r.txm.GetQuerier(ctx)
	if err := sqlscan.Select(ctx, querier, &users, sql, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepo) Delete(ctx context.Context, userID id.ID) error {
	sql, args, err := r.builder().
		Delete(table).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("user", userID.String())
	}
	return nil
}
