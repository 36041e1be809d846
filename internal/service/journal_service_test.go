package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/mindful/internal/analytics"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/internal/repository/mocks"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/pkg/entity"
)

var (
	ownerID = uuid.New()
	owner   = &entity.User{ID: ownerID, Name: "alice"}
)

func date(s string) time.Time {
	d, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func validLog() *service.DailyLogRequest {
	return &service.DailyLogRequest{
		Date:         "2024-03-01",
		SleepHours:   7.5,
		SleepQuality: "Good",
		Mood:         "Neutral",
		Meals:        []string{" oatmeal ", "", "  ", "salad"},
		Activities:   []string{"Reading", "\tExercise\n"},
		Notes:        "fine day",
	}
}

func TestAppend(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepositoryI(ctrl)
	logs := mocks.NewMockDailyLogsRepositoryI(ctrl)
	js := service.NewJournalService(users, logs, service.JournalOptions{})
	ctx := context.Background()

	t.Run("stores cleaned lists", func(t *testing.T) {
		users.EXPECT().FindByName(gomock.Any(), "alice").Return(owner, nil)
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *entity.DailyLog) (int64, error) {
			assert.Equal(t, ownerID, l.UserID)
			assert.Equal(t, []string{"oatmeal", "salad"}, l.Meals)
			assert.Equal(t, []string{"Reading", "Exercise"}, l.Activities)
			return 42, nil
		})
		log, err := js.Append(ctx, "alice", validLog())
		require.NoError(t, err)
		assert.Equal(t, int64(42), log.ID)
		assert.Equal(t, date("2024-03-01"), log.Date)
		assert.Equal(t, entity.SleepGood, log.SleepQuality)
		assert.Equal(t, entity.MoodNeutral, log.Mood)
	})
	t.Run("duplicate dates allowed by default", func(t *testing.T) {
		users.EXPECT().FindByName(gomock.Any(), "alice").Return(owner, nil)
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(43), nil)
		_, err := js.Append(ctx, "alice", validLog())
		assert.NoError(t, err)
	})
	t.Run("unknown owner", func(t *testing.T) {
		users.EXPECT().FindByName(gomock.Any(), "ghost").Return(nil, errorvalues.ErrUserNotFound)
		_, err := js.Append(ctx, "ghost", validLog())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("owner vanished before insert", func(t *testing.T) {
		users.EXPECT().FindByName(gomock.Any(), "alice").Return(owner, nil)
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errorvalues.ErrUserNotFound)
		_, err := js.Append(ctx, "alice", validLog())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("store failure", func(t *testing.T) {
		users.EXPECT().FindByName(gomock.Any(), "alice").Return(owner, nil)
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("disk full"))
		_, err := js.Append(ctx, "alice", validLog())
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestAppendValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	js := service.NewJournalService(mocks.NewMockUsersRepositoryI(ctrl), mocks.NewMockDailyLogsRepositoryI(ctrl), service.JournalOptions{})

	type testCase struct {
		Desc   string
		Modify func(r *service.DailyLogRequest)
	}
	tcs := []testCase{
		{Desc: "bad date", Modify: func(r *service.DailyLogRequest) { r.Date = "01/03/2024" }},
		{Desc: "impossible date", Modify: func(r *service.DailyLogRequest) { r.Date = "2024-02-30" }},
		{Desc: "negative sleep", Modify: func(r *service.DailyLogRequest) { r.SleepHours = -1 }},
		{Desc: "too much sleep", Modify: func(r *service.DailyLogRequest) { r.SleepHours = 24.5 }},
		{Desc: "unknown quality", Modify: func(r *service.DailyLogRequest) { r.SleepQuality = "Great" }},
		{Desc: "unknown mood", Modify: func(r *service.DailyLogRequest) { r.Mood = "good" }},
	}
	for _, tc := range tcs {
		t.Run(tc.Desc, func(t *testing.T) {
			req := validLog()
			tc.Modify(req)
			_, err := js.Append(context.Background(), "alice", req)
			var vErr *service.ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
	t.Run("nil request", func(t *testing.T) {
		assert.NotPanics(t, func() {
			log, err := js.Append(context.Background(), "alice", nil)
			assert.Nil(t, log)
			var vErr *service.ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	})
}

func TestAppendRejectDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepositoryI(ctrl)
	logs := mocks.NewMockDailyLogsRepositoryI(ctrl)
	js := service.NewJournalService(users, logs, service.JournalOptions{RejectDuplicateDates: true})
	ctx := context.Background()

	users.EXPECT().FindByName(gomock.Any(), "alice").Return(owner, nil).Times(2)
	gomock.InOrder(
		logs.EXPECT().ExistsOnDate(gomock.Any(), ownerID, date("2024-03-01")).Return(false, nil),
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil),
		logs.EXPECT().ExistsOnDate(gomock.Any(), ownerID, date("2024-03-01")).Return(true, nil),
	)
	_, err := js.Append(ctx, "alice", validLog())
	require.NoError(t, err)
	_, err = js.Append(ctx, "alice", validLog())
	assert.ErrorIs(t, err, errorvalues.ErrLogExists)
}

func TestQueryRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepositoryI(ctrl)
	logs := mocks.NewMockDailyLogsRepositoryI(ctrl)
	js := service.NewJournalService(users, logs, service.JournalOptions{})
	ctx := context.Background()

	t.Run("inverted range", func(t *testing.T) {
		_, err := js.QueryRange(ctx, "alice", date("2024-03-02"), date("2024-03-01"))
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
	})
	t.Run("passes owner id through", func(t *testing.T) {
		want := []entity.DailyLog{{ID: 2, UserID: ownerID, Date: date("2024-03-02")}, {ID: 1, UserID: ownerID, Date: date("2024-03-01")}}
		users.EXPECT().FindByName(gomock.Any(), "alice").Return(owner, nil)
		logs.EXPECT().GetByUserAndDateRange(gomock.Any(), ownerID, date("2024-03-01"), date("2024-03-02")).Return(want, nil)
		got, err := js.QueryRange(ctx, "alice", date("2024-03-01"), date("2024-03-02"))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
	t.Run("single day", func(t *testing.T) {
		users.EXPECT().FindByName(gomock.Any(), "alice").Return(owner, nil)
		logs.EXPECT().GetByUserAndDateRange(gomock.Any(), ownerID, date("2024-03-01"), date("2024-03-01")).Return(nil, nil)
		got, err := js.QueryRange(ctx, "alice", date("2024-03-01"), date("2024-03-01"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestResolveRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepositoryI(ctrl)
	logs := mocks.NewMockDailyLogsRepositoryI(ctrl)
	js := service.NewJournalService(users, logs, service.JournalOptions{})
	ctx := context.Background()
	minDate, maxDate := date("2023-01-15"), date("2024-03-10")

	type testCase struct {
		Desc string
		Kind entity.RangeKind
		Want *entity.DateRange
	}
	tcs := []testCase{
		{Desc: "week", Kind: entity.RangeWeek, Want: &entity.DateRange{From: date("2024-03-03"), To: maxDate}},
		{Desc: "month", Kind: entity.RangeMonth, Want: &entity.DateRange{From: date("2024-02-09"), To: maxDate}},
		{Desc: "year", Kind: entity.RangeYear, Want: &entity.DateRange{From: date("2023-03-11"), To: maxDate}},
		{Desc: "all", Kind: entity.RangeAll, Want: &entity.DateRange{From: minDate, To: maxDate}},
		{Desc: "unrecognized", Kind: entity.ParseRangeKind("fortnight"), Want: &entity.DateRange{From: minDate, To: maxDate}},
	}
	for _, tc := range tcs {
		t.Run(tc.Desc, func(t *testing.T) {
			users.EXPECT().FindByName(gomock.Any(), "alice").Return(owner, nil)
			logs.EXPECT().GetDateBounds(gomock.Any(), ownerID).Return(&minDate, &maxDate, nil)
			got, err := js.ResolveRange(ctx, "alice", tc.Kind)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
	t.Run("no logs", func(t *testing.T) {
		users.EXPECT().FindByName(gomock.Any(), "alice").Return(owner, nil)
		logs.EXPECT().GetDateBounds(gomock.Any(), ownerID).Return(nil, nil, nil)
		got, err := js.ResolveRange(ctx, "alice", entity.RangeWeek)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepositoryI(ctrl)
	logs := mocks.NewMockDailyLogsRepositoryI(ctrl)
	js := service.NewJournalService(users, logs, service.JournalOptions{})
	ctx := context.Background()

	t.Run("no data", func(t *testing.T) {
		users.EXPECT().FindByName(gomock.Any(), "alice").Return(owner, nil)
		logs.EXPECT().GetDateBounds(gomock.Any(), ownerID).Return(nil, nil, nil)
		_, err := js.Analytics(ctx, "alice", entity.RangeWeek)
		assert.ErrorIs(t, err, errorvalues.ErrNoData)
	})
	t.Run("aggregates the resolved window", func(t *testing.T) {
		minDate, maxDate := date("2024-03-01"), date("2024-03-02")
		users.EXPECT().FindByName(gomock.Any(), "alice").Return(owner, nil).Times(2)
		logs.EXPECT().GetDateBounds(gomock.Any(), ownerID).Return(&minDate, &maxDate, nil)
		logs.EXPECT().GetByUserAndDateRange(gomock.Any(), ownerID, date("2024-02-24"), maxDate).Return([]entity.DailyLog{
			{Date: maxDate, SleepHours: 6, SleepQuality: entity.SleepFair, Mood: entity.MoodBad, Activities: []string{"Reading"}},
			{Date: minDate, SleepHours: 8, SleepQuality: entity.SleepExcellent, Mood: entity.MoodGood, Activities: []string{"Exercise", "Reading"}},
		}, nil)
		r, err := js.Analytics(ctx, "alice", entity.RangeWeek)
		require.NoError(t, err)
		assert.Equal(t, 2, r.Days)
		assert.InDelta(t, 7.0, r.AvgSleepHours, 1e-9)
		assert.InDelta(t, 3.5, r.AvgSleepQuality, 1e-9)
		assert.InDelta(t, 3.0, r.AvgMood, 1e-9)
		assert.Equal(t, []analytics.LabelCount{{Label: "Reading", Count: 2}, {Label: "Exercise", Count: 1}}, r.ActivityFrequency)
		require.Len(t, r.Series, 2)
		assert.Equal(t, minDate, r.Series[0].Date)
	})
}

func TestCleanEntries(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, service.CleanEntries([]string{" a", "", "b c ", "\t"}))
	assert.Equal(t, []string{}, service.CleanEntries(nil))
	assert.Equal(t, []string{"Exercise", "Reading"}, service.SplitEntries("Exercise\n\n  Reading  \n"))
}

func TestJournalServiceIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pool := setupTestDB(t)
	us := service.NewUserService(repository.NewUsersRepo(pool))
	js := service.NewJournalService(repository.NewUsersRepo(pool), repository.NewDailyLogsRepo(pool), service.JournalOptions{})
	ctx := context.Background()

	_, err := us.Register(ctx, &service.RegisterRequest{Name: "alice", Password: "alice_password"})
	require.NoError(t, err)
	_, err = us.Register(ctx, &service.RegisterRequest{Name: "bob", Password: "bob_password"})
	require.NoError(t, err)

	t.Run("no data before first log", func(t *testing.T) {
		rng, err := js.ResolveRange(ctx, "alice", entity.RangeAll)
		assert.NoError(t, err)
		assert.Nil(t, rng)
	})
	for _, d := range []string{"2024-03-01", "2024-03-02", "2024-03-03"} {
		req := validLog()
		req.Date = d
		_, err := js.Append(ctx, "alice", req)
		require.NoError(t, err)
	}
	t.Run("range newest first", func(t *testing.T) {
		got, err := js.QueryRange(ctx, "alice", date("2024-03-01"), date("2024-03-02"))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, date("2024-03-02"), got[0].Date)
		assert.Equal(t, []string{"oatmeal", "salad"}, got[0].Meals)
		assert.InDelta(t, 7.5, got[0].SleepHours, 1e-9)
	})
	t.Run("owners are isolated", func(t *testing.T) {
		got, err := js.QueryRange(ctx, "bob", date("2024-01-01"), date("2024-12-31"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
	t.Run("resolved window", func(t *testing.T) {
		rng, err := js.ResolveRange(ctx, "alice", entity.RangeAll)
		require.NoError(t, err)
		assert.Equal(t, &entity.DateRange{From: date("2024-03-01"), To: date("2024-03-03")}, rng)
	})
	t.Run("analytics", func(t *testing.T) {
		r, err := js.Analytics(ctx, "alice", entity.RangeWeek)
		require.NoError(t, err)
		assert.Equal(t, 3, r.Days)
		assert.Equal(t, 3, r.MealCount("salad"))
	})
}
