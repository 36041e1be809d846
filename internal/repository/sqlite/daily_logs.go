package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/pkg/entity"
)

type DailyLogsRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

func (r *DailyLogsRepository) Create(ctx context.Context, log *entity.DailyLog) (int64, error) {
	if log == nil {
		return 0, errors.New("daily log is nil")
	}
	meals, err := repository.EncodeList(log.Meals)
	if err != nil {
		return 0, err
	}
	activities, err := repository.EncodeList(log.Activities)
	if err != nil {
		return 0, err
	}
	query, args, err := r.builder.Insert("daily_logs").
		Columns("user_id", "date", "sleep_hours", "sleep_quality", "mood", "meals", "activities", "notes").
		Values(log.UserID.String(), entity.FormatDate(log.Date), log.SleepHours, string(log.SleepQuality), string(log.Mood), meals, activities, log.Notes).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert log sql: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, fmt.Errorf("creating daily log error: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted log id: %w", err)
	}
	return id, nil
}

func (r *DailyLogsRepository) ExistsOnDate(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error) {
	query, args, err := r.builder.Select("COUNT(*)").
		From("daily_logs").
		Where(sq.Eq{"user_id": uid.String(), "date": entity.FormatDate(date)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists sql: %w", err)
	}
	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("inspecting if log exists error: %w", err)
	}
	return count > 0, nil
}

func (r *DailyLogsRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyLog, error) {
	query, args, err := r.builder.
		Select("id", "user_id", "date", "sleep_hours", "sleep_quality", "mood", "meals", "activities", "notes").
		From("daily_logs").
		Where(sq.Eq{"user_id": uid.String()}).
		Where("date BETWEEN ? AND ?", entity.FormatDate(from), entity.FormatDate(to)).
		OrderBy("date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select logs sql: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("getting logs for period error: %w", err)
	}
	defer rows.Close()
	result := make([]entity.DailyLog, 0)
	for rows.Next() {
		var (
			log                                    entity.DailyLog
			date, quality, mood, meals, activities string
		)
		if err = rows.Scan(&log.ID, &log.UserID, &date, &log.SleepHours, &quality, &mood, &meals, &activities, &log.Notes); err != nil {
			return nil, fmt.Errorf("log row parsing error: %w", err)
		}
		if err = repository.FillLog(&log, date, quality, mood, meals, activities); err != nil {
			return nil, err
		}
		result = append(result, log)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected log rows error: %w", err)
	}
	return result, nil
}

func (r *DailyLogsRepository) GetDateBounds(ctx context.Context, uid uuid.UUID) (*time.Time, *time.Time, error) {
	query, args, err := r.builder.Select("COALESCE(MIN(date), '')", "COALESCE(MAX(date), '')").
		From("daily_logs").
		Where(sq.Eq{"user_id": uid.String()}).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build bounds sql: %w", err)
	}
	var minStr, maxStr string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&minStr, &maxStr); err != nil {
		return nil, nil, fmt.Errorf("getting log date bounds error: %w", err)
	}
	return repository.ParseBounds(minStr, maxStr)
}
