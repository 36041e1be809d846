package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/mindful/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database. Returns ErrUserExists on taken name
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
}

type DailyLogsRepositoryI interface {
	// Inserts a log row for log.UserID and returns its id. No uniqueness on date is enforced
	Create(ctx context.Context, log *entity.DailyLog) (int64, error)
	// Inspects if the user already has a log on the date
	ExistsOnDate(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error)
	// Lists logs of the user between from and to inclusive, newest first
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyLog, error)
	// Returns earliest and latest log dates of the user. Both nil when user has no logs
	GetDateBounds(ctx context.Context, uid uuid.UUID) (minDate, maxDate *time.Time, err error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
