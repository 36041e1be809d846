package sqlite_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/internal/repository/sqlite"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both backends must satisfy the same contracts.
var (
	_ repository.UsersRepositoryI     = (*sqlite.UsersRepository)(nil)
	_ repository.DailyLogsRepositoryI = (*sqlite.DailyLogsRepository)(nil)
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func date(t *testing.T, s string) entity.DailyLog {
	t.Helper()
	d, err := entity.ParseDate(s)
	require.NoError(t, err)
	return entity.DailyLog{Date: d}
}

func TestUsers(t *testing.T) {
	users := openStore(t).Users()
	ctx := context.Background()
	t.Run("created", func(t *testing.T) {
		err := users.Create(ctx, &entity.User{Name: "alice", PasswordHash: "hash1"})
		assert.NoError(t, err)
	})
	t.Run("taken name", func(t *testing.T) {
		err := users.Create(ctx, &entity.User{Name: "alice", PasswordHash: "hash2"})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("first hash untouched", func(t *testing.T) {
		u, err := users.FindByName(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "hash1", u.PasswordHash)
		assert.NotEqual(t, uuid.Nil, u.ID)
	})
	t.Run("not found", func(t *testing.T) {
		_, err := users.FindByName(ctx, "bob")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestDailyLogs(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.Users().Create(ctx, &entity.User{Name: "alice", PasswordHash: "hash"}))
	alice, err := store.Users().FindByName(ctx, "alice")
	require.NoError(t, err)
	logs := store.DailyLogs()

	t.Run("no bounds before first log", func(t *testing.T) {
		minDate, maxDate, err := logs.GetDateBounds(ctx, alice.ID)
		assert.NoError(t, err)
		assert.Nil(t, minDate)
		assert.Nil(t, maxDate)
	})

	first := date(t, "2024-01-01")
	first.UserID = alice.ID
	first.SleepHours = 5
	first.SleepQuality = entity.SleepPoor
	first.Mood = entity.MoodBad
	first.Meals = []string{"oatmeal"}
	first.Activities = []string{"Reading"}

	second := date(t, "2024-01-02")
	second.UserID = alice.ID
	second.SleepHours = 9
	second.SleepQuality = entity.SleepExcellent
	second.Mood = entity.MoodVeryGood
	second.Meals = []string{"soup"}
	second.Activities = []string{"Reading", "Exercise"}
	second.Notes = "walked to work"

	for _, l := range []*entity.DailyLog{&first, &second} {
		id, err := logs.Create(ctx, l)
		require.NoError(t, err)
		l.ID = id
	}

	t.Run("range newest first with lists intact", func(t *testing.T) {
		result, err := logs.GetByUserAndDateRange(ctx, alice.ID, first.Date, second.Date)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, second, result[0])
		assert.Equal(t, first, result[1])
	})
	t.Run("range is inclusive and bounded", func(t *testing.T) {
		result, err := logs.GetByUserAndDateRange(ctx, alice.ID, second.Date, second.Date)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, second.ID, result[0].ID)
	})
	t.Run("bounds", func(t *testing.T) {
		minDate, maxDate, err := logs.GetDateBounds(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, first.Date, *minDate)
		assert.Equal(t, second.Date, *maxDate)
	})
	t.Run("exists on date", func(t *testing.T) {
		ok, err := logs.ExistsOnDate(ctx, alice.ID, first.Date)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = logs.ExistsOnDate(ctx, alice.ID, first.Date.AddDate(0, 0, -1))
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("duplicates on the same date are kept", func(t *testing.T) {
		dup := first
		_, err := logs.Create(ctx, &dup)
		require.NoError(t, err)
		result, err := logs.GetByUserAndDateRange(ctx, alice.ID, first.Date, first.Date)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
	t.Run("unknown owner", func(t *testing.T) {
		orphan := first
		orphan.UserID = uuid.New()
		_, err := logs.Create(ctx, &orphan)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
