// Package sqlite keeps the journal in a single local SQLite file. It backs the
// interactive shell and can replace Postgres for the API via STORAGE_DRIVER.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/limbo/mindful/pkg/cleanup"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	date TEXT NOT NULL,
	sleep_hours REAL NOT NULL,
	sleep_quality TEXT NOT NULL,
	mood TEXT NOT NULL,
	meals TEXT NOT NULL DEFAULT '[]',
	activities TEXT NOT NULL DEFAULT '[]',
	notes TEXT NOT NULL DEFAULT '',
	FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS daily_logs_user_date_idx ON daily_logs (user_id, date);
`

type Store struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

// Open creates the database file (and its directory) if needed and applies the schema.
// ":memory:" gives a throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time; also keeps an in-memory database on a single connection.
	db.SetMaxOpenConns(1)

	store := &Store{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite database",
		F:    store.Close,
	})
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// dsn turns on foreign keys for every connection the pool opens.
func dsn(path string) string {
	return path + "?_foreign_keys=on"
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func (s *Store) Users() *UsersRepository {
	return &UsersRepository{db: s.db, builder: s.builder}
}

func (s *Store) DailyLogs() *DailyLogsRepository {
	return &DailyLogsRepository{db: s.db, builder: s.builder}
}
