// Package bootstrap wires configuration into storage and services for the
// binaries under cmd/.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/internal/repository/sqlite"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/pkg/config"
	"github.com/limbo/mindful/pkg/llm"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSQLitePath = "./data/users.db"
)

type Storage struct {
	Driver string
	Users  repository.UsersRepositoryI
	Logs   repository.DailyLogsRepositoryI
}

// OpenStorage connects the backend named by STORAGE_DRIVER, or fallback when
// unset. Connections are closed by the cleanup registry.
func OpenStorage(ctx context.Context, cfg *config.Config, fallback string) (*Storage, error) {
	driver := cfg.GetStringOr("STORAGE_DRIVER", fallback)
	switch driver {
	case DriverPostgres:
		pool, err := repository.Connect(ctx, &repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		})
		if err != nil {
			return nil, err
		}
		return &Storage{
			Driver: driver,
			Users:  repository.NewUsersRepo(pool),
			Logs:   repository.NewDailyLogsRepo(pool),
		}, nil
	case DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.GetStringOr("SQLITE_PATH", defaultSQLitePath))
		if err != nil {
			return nil, err
		}
		return &Storage{
			Driver: driver,
			Users:  store.Users(),
			Logs:   store.DailyLogs(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q, expected %s or %s", driver, DriverPostgres, DriverSQLite)
	}
}

func JournalOptions(cfg *config.Config) service.JournalOptions {
	return service.JournalOptions{
		RejectDuplicateDates: cfg.GetBool("JOURNAL_REJECT_DUPLICATE_DATES"),
	}
}

// NewAssistant fails when OPENAI_API_KEY is missing.
func NewAssistant(cfg *config.Config, journal service.JournalServiceI, observer service.FallbackObserver) (*service.AssistantService, error) {
	key, err := cfg.Require("OPENAI_API_KEY")
	if err != nil {
		return nil, err
	}
	client, err := llm.NewClient(llm.Config{
		BaseURL: cfg.GetStringOr("OPENAI_BASE_URL", llm.DefaultBaseURL),
		APIKey:  key,
		Model:   cfg.GetStringOr("OPENAI_MODEL", llm.DefaultModel),
	})
	if err != nil {
		return nil, err
	}
	return service.NewAssistantService(journal, client, observer), nil
}
