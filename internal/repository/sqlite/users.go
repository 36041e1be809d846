package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/entity"
)

type UsersRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

func (r *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	query, args, err := r.builder.Insert("users").
		Columns("id", "username", "password_hash").
		Values(uuid.New().String(), user.Name, user.PasswordHash).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user sql: %w", err)
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return errorvalues.ErrUserExists
		}
		return fmt.Errorf("creating user db error: %w", err)
	}
	return nil
}

func (r *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	query, args, err := r.builder.Select("id", "username", "password_hash").
		From("users").
		Where(sq.Eq{"username": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user sql: %w", err)
	}
	var user entity.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("searching user by name error: %w", err)
	}
	return &user, nil
}
