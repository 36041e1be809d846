package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dates are stored as text; lexicographic order of this layout is chronological.
const DateLayout = "2006-01-02"

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type SleepQuality string

const (
	SleepPoor      SleepQuality = "Poor"
	SleepFair      SleepQuality = "Fair"
	SleepGood      SleepQuality = "Good"
	SleepVeryGood  SleepQuality = "Very Good"
	SleepExcellent SleepQuality = "Excellent"
)

var sleepQualityScale = map[SleepQuality]int{
	SleepPoor:      1,
	SleepFair:      2,
	SleepGood:      3,
	SleepVeryGood:  4,
	SleepExcellent: 5,
}

// Score maps the label onto the 1..5 scale.
func (q SleepQuality) Score() (int, bool) {
	s, ok := sleepQualityScale[q]
	return s, ok
}

type Mood string

const (
	MoodVeryBad  Mood = "Very Bad"
	MoodBad      Mood = "Bad"
	MoodNeutral  Mood = "Neutral"
	MoodGood     Mood = "Good"
	MoodVeryGood Mood = "Very Good"
)

var moodScale = map[Mood]int{
	MoodVeryBad:  1,
	MoodBad:      2,
	MoodNeutral:  3,
	MoodGood:     4,
	MoodVeryGood: 5,
}

// Score maps the label onto the 1..5 scale.
func (m Mood) Score() (int, bool) {
	s, ok := moodScale[m]
	return s, ok
}

type DailyLog struct {
	ID           int64
	UserID       uuid.UUID
	Date         time.Time
	SleepHours   float64
	SleepQuality SleepQuality
	Mood         Mood
	Meals        []string
	Activities   []string
	Notes        string
}

type RangeKind string

const (
	RangeWeek  RangeKind = "week"
	RangeMonth RangeKind = "month"
	RangeYear  RangeKind = "year"
	RangeAll   RangeKind = "all"
)

// ParseRangeKind falls back to RangeAll for anything it doesn't know.
func ParseRangeKind(s string) RangeKind {
	switch k := RangeKind(s); k {
	case RangeWeek, RangeMonth, RangeYear:
		return k
	default:
		return RangeAll
	}
}

// Lookback returns the window length in days. Zero means "since the first log".
func (k RangeKind) Lookback() int {
	switch k {
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	case RangeYear:
		return 365
	default:
		return 0
	}
}

// DateRange is inclusive on both ends.
type DateRange struct {
	From time.Time
	To   time.Time
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
