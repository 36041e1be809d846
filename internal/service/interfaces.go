package service

import (
	"context"
	"time"

	"github.com/limbo/mindful/internal/analytics"
	"github.com/limbo/mindful/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type DailyLogRequest struct {
	Date         string   `validate:"required,journal_date"`
	SleepHours   float64  `validate:"gte=0,lte=24"`
	SleepQuality string   `validate:"required,sleep_quality"`
	Mood         string   `validate:"required,mood"`
	Meals        []string `validate:"max=50,dive,max=200"`
	Activities   []string `validate:"max=50,dive,max=200"`
	Notes        string   `validate:"max=5000"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Reports whether password matches the stored hash. Unknown users are not an error
	Verify(ctx context.Context, name, password string) (bool, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
}

type JournalServiceI interface {
	// Stores a new daily log for owner
	Append(ctx context.Context, owner string, req *DailyLogRequest) (*entity.DailyLog, error)
	// Owner's logs between from and to inclusive, newest first
	QueryRange(ctx context.Context, owner string, from, to time.Time) ([]entity.DailyLog, error)
	// Window of the given kind ending at owner's latest log. Nil when owner has no logs
	ResolveRange(ctx context.Context, owner string, kind entity.RangeKind) (*entity.DateRange, error)
	// Resolves, loads and aggregates. ErrNoData when there is nothing to aggregate
	Analytics(ctx context.Context, owner string, kind entity.RangeKind) (*analytics.Report, error)
}

type AssistantServiceI interface {
	Reply(ctx context.Context, owner, message string) (*AssistantReply, error)
	StarterQuestions() []string
}
