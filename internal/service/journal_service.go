package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/limbo/mindful/internal/analytics"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/pkg/entity"
)

type JournalOptions struct {
	// Reject a second log for the same owner and date
	RejectDuplicateDates bool
}

type JournalService struct {
	users repository.UsersRepositoryI
	logs  repository.DailyLogsRepositoryI
	opts  JournalOptions
}

func NewJournalService(usersRepo repository.UsersRepositoryI, logsRepo repository.DailyLogsRepositoryI, opts JournalOptions) *JournalService {
	InitValidator()
	return &JournalService{
		users: usersRepo,
		logs:  logsRepo,
		opts:  opts,
	}
}

func (js *JournalService) Append(ctx context.Context, owner string, req *DailyLogRequest) (*entity.DailyLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	user, err := js.owner(ctx, owner)
	if err != nil {
		return nil, err
	}
	log := entity.DailyLog{
		UserID:       user.ID,
		Date:         date,
		SleepHours:   req.SleepHours,
		SleepQuality: entity.SleepQuality(req.SleepQuality),
		Mood:         entity.Mood(req.Mood),
		Meals:        CleanEntries(req.Meals),
		Activities:   CleanEntries(req.Activities),
		Notes:        req.Notes,
	}
	if js.opts.RejectDuplicateDates {
		exists, err := js.logs.ExistsOnDate(ctx, user.ID, date)
		if err != nil {
			return nil, fmt.Errorf("logs repository error: %w", err)
		}
		if exists {
			return nil, errorvalues.ErrLogExists
		}
	}
	id, err := js.logs.Create(ctx, &log)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("logs repository error: %w", err)
	}
	log.ID = id
	slog.Default().Debug("daily log stored", slog.String("owner", owner), slog.Int64("id", id))
	return &log, nil
}

func (js *JournalService) QueryRange(ctx context.Context, owner string, from, to time.Time) ([]entity.DailyLog, error) {
	if to.Before(from) {
		return nil, errorvalues.ErrInvalidRange
	}
	user, err := js.owner(ctx, owner)
	if err != nil {
		return nil, err
	}
	logs, err := js.logs.GetByUserAndDateRange(ctx, user.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("logs repository error: %w", err)
	}
	return logs, nil
}

func (js *JournalService) ResolveRange(ctx context.Context, owner string, kind entity.RangeKind) (*entity.DateRange, error) {
	user, err := js.owner(ctx, owner)
	if err != nil {
		return nil, err
	}
	minDate, maxDate, err := js.logs.GetDateBounds(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("logs repository error: %w", err)
	}
	if minDate == nil || maxDate == nil {
		return nil, nil
	}
	return windowFor(kind, *minDate, *maxDate), nil
}

func (js *JournalService) Analytics(ctx context.Context, owner string, kind entity.RangeKind) (*analytics.Report, error) {
	logs, err := js.recent(ctx, owner, kind)
	if err != nil {
		return nil, err
	}
	return analytics.Aggregate(logs)
}

// recent loads the logs of the resolved window. Empty when owner has none.
func (js *JournalService) recent(ctx context.Context, owner string, kind entity.RangeKind) ([]entity.DailyLog, error) {
	rng, err := js.ResolveRange(ctx, owner, kind)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, nil
	}
	return js.QueryRange(ctx, owner, rng.From, rng.To)
}

func (js *JournalService) owner(ctx context.Context, name string) (*entity.User, error) {
	user, err := js.users.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	return user, nil
}

// windowFor anchors the window at the latest log, not at today.
func windowFor(kind entity.RangeKind, minDate, maxDate time.Time) *entity.DateRange {
	days := kind.Lookback()
	if days == 0 {
		return &entity.DateRange{From: minDate, To: maxDate}
	}
	return &entity.DateRange{From: maxDate.AddDate(0, 0, -days), To: maxDate}
}

// CleanEntries trims every entry and drops the blank ones.
func CleanEntries(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// SplitEntries turns one entry per line input into a clean list.
func SplitEntries(text string) []string {
	return CleanEntries(strings.Split(text, "\n"))
}
