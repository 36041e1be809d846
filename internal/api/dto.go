package api

import (
	"github.com/limbo/mindful/internal/analytics"
	"github.com/limbo/mindful/pkg/entity"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DailyLogRequest struct {
	Date         string   `json:"date"`
	SleepHours   float64  `json:"sleep_hours"`
	SleepQuality string   `json:"sleep_quality"`
	Mood         string   `json:"mood"`
	Meals        []string `json:"meals"`
	Activities   []string `json:"activities"`
	Notes        string   `json:"notes"`
}

type DailyLogResponse struct {
	ID           int64    `json:"id"`
	Date         string   `json:"date"`
	SleepHours   float64  `json:"sleep_hours"`
	SleepQuality string   `json:"sleep_quality"`
	Mood         string   `json:"mood"`
	Meals        []string `json:"meals"`
	Activities   []string `json:"activities"`
	Notes        string   `json:"notes"`
}

type GetLogsResponse struct {
	From string             `json:"from"`
	To   string             `json:"to"`
	Logs []DailyLogResponse `json:"logs"`
}

type RangeResponse struct {
	Kind   string `json:"kind"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
	NoData bool   `json:"no_data,omitempty"`
}

type SeriesPoint struct {
	Date       string  `json:"date"`
	SleepHours float64 `json:"sleep_hours"`
	Mood       int     `json:"mood"`
}

// AnalyticsResponse always carries every aggregate; an empty period is
// answered with NoDataResponse instead.
type AnalyticsResponse struct {
	Range             string                 `json:"range"`
	Days              int                    `json:"days"`
	AvgSleepHours     float64                `json:"avg_sleep_hours"`
	AvgSleepQuality   float64                `json:"avg_sleep_quality"`
	AvgMood           float64                `json:"avg_mood"`
	ActivityFrequency []analytics.LabelCount `json:"activity_frequency"`
	MealFrequency     []analytics.LabelCount `json:"meal_frequency"`
	Series            []SeriesPoint          `json:"series"`
	Insights          []string               `json:"insights"`
}

type NoDataResponse struct {
	Range  string `json:"range"`
	NoData bool   `json:"no_data"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply    string `json:"reply"`
	Degraded bool   `json:"degraded"`
}

type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

func toLogResponse(log *entity.DailyLog) DailyLogResponse {
	return DailyLogResponse{
		ID:           log.ID,
		Date:         entity.FormatDate(log.Date),
		SleepHours:   log.SleepHours,
		SleepQuality: string(log.SleepQuality),
		Mood:         string(log.Mood),
		Meals:        nonNil(log.Meals),
		Activities:   nonNil(log.Activities),
		Notes:        log.Notes,
	}
}

func toAnalyticsResponse(kind entity.RangeKind, r *analytics.Report) AnalyticsResponse {
	series := make([]SeriesPoint, 0, len(r.Series))
	for _, p := range r.Series {
		series = append(series, SeriesPoint{
			Date:       entity.FormatDate(p.Date),
			SleepHours: p.SleepHours,
			Mood:       p.Mood,
		})
	}
	return AnalyticsResponse{
		Range:             string(kind),
		Days:              r.Days,
		AvgSleepHours:     r.AvgSleepHours,
		AvgSleepQuality:   r.AvgSleepQuality,
		AvgMood:           r.AvgMood,
		ActivityFrequency: nonNilCounts(r.ActivityFrequency),
		MealFrequency:     nonNilCounts(r.MealFrequency),
		Series:            series,
		Insights:          nonNil(analytics.Insights(r)),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilCounts(c []analytics.LabelCount) []analytics.LabelCount {
	if c == nil {
		return []analytics.LabelCount{}
	}
	return c
}
