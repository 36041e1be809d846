package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/entity"
)

type DailyLogsRepository struct {
	conn PgConnection
}

func NewDailyLogsRepo(conn PgConnection) *DailyLogsRepository {
	return &DailyLogsRepository{
		conn: conn,
	}
}

func (lr *DailyLogsRepository) Create(ctx context.Context, log *entity.DailyLog) (int64, error) {
	if log == nil {
		return 0, errors.New("daily log is nil")
	}
	meals, err := EncodeList(log.Meals)
	if err != nil {
		return 0, err
	}
	activities, err := EncodeList(log.Activities)
	if err != nil {
		return 0, err
	}
	var id int64
	row := lr.conn.QueryRow(
		ctx,
		`INSERT INTO daily_logs (user_id, date, sleep_hours, sleep_quality, mood, meals, activities, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		log.UserID,
		entity.FormatDate(log.Date),
		log.SleepHours,
		string(log.SleepQuality),
		string(log.Mood),
		meals,
		activities,
		log.Notes,
	)
	if err = row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return 0, errorvalues.ErrUserNotFound
			}
		}
		return 0, fmt.Errorf("creating daily log error: %w", err)
	}
	return id, nil
}

func (lr *DailyLogsRepository) ExistsOnDate(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	row := lr.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM daily_logs WHERE user_id = $1 AND date = $2);`,
		uid,
		entity.FormatDate(date),
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("inspecting if log exists error: %w", err)
	}
	return exists, nil
}

func (lr *DailyLogsRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyLog, error) {
	rows, err := lr.conn.Query(
		ctx,
		`SELECT id, user_id, date, sleep_hours, sleep_quality, mood, meals, activities, notes FROM daily_logs WHERE user_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date DESC, id DESC;`,
		uid,
		entity.FormatDate(from),
		entity.FormatDate(to),
	)
	if err != nil {
		return nil, fmt.Errorf("getting logs for period error: %w", err)
	}
	defer rows.Close()
	result := make([]entity.DailyLog, 0)
	for rows.Next() {
		var (
			log                                  entity.DailyLog
			date, quality, mood, meals, activity string
		)
		err = rows.Scan(&log.ID, &log.UserID, &date, &log.SleepHours, &quality, &mood, &meals, &activity, &log.Notes)
		if err != nil {
			return nil, fmt.Errorf("log row parsing error: %w", err)
		}
		if err = FillLog(&log, date, quality, mood, meals, activity); err != nil {
			return nil, err
		}
		result = append(result, log)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected log rows error: %w", err)
	}
	return result, nil
}

func (lr *DailyLogsRepository) GetDateBounds(ctx context.Context, uid uuid.UUID) (*time.Time, *time.Time, error) {
	var minStr, maxStr string
	row := lr.conn.QueryRow(
		ctx,
		`SELECT COALESCE(MIN(date), ''), COALESCE(MAX(date), '') FROM daily_logs WHERE user_id = $1;`,
		uid,
	)
	if err := row.Scan(&minStr, &maxStr); err != nil {
		return nil, nil, fmt.Errorf("getting log date bounds error: %w", err)
	}
	return ParseBounds(minStr, maxStr)
}

// ParseBounds turns the text MIN/MAX pair into dates; empty strings mean no logs.
func ParseBounds(minStr, maxStr string) (*time.Time, *time.Time, error) {
	if minStr == "" || maxStr == "" {
		return nil, nil, nil
	}
	minDate, err := entity.ParseDate(minStr)
	if err != nil {
		return nil, nil, fmt.Errorf("stored date %q is malformed: %w", minStr, err)
	}
	maxDate, err := entity.ParseDate(maxStr)
	if err != nil {
		return nil, nil, fmt.Errorf("stored date %q is malformed: %w", maxStr, err)
	}
	return &minDate, &maxDate, nil
}

// FillLog decodes the text columns of a daily_logs row into log.
func FillLog(log *entity.DailyLog, date, quality, mood, meals, activities string) error {
	var err error
	if log.Date, err = entity.ParseDate(date); err != nil {
		return fmt.Errorf("stored date %q is malformed: %w", date, err)
	}
	log.SleepQuality = entity.SleepQuality(quality)
	log.Mood = entity.Mood(mood)
	if log.Meals, err = DecodeList(meals); err != nil {
		return err
	}
	if log.Activities, err = DecodeList(activities); err != nil {
		return err
	}
	return nil
}
