// Package analytics turns daily logs into aggregate statistics and the
// rule-based observations handed to the assistant. It never touches storage.
package analytics

import (
	"errors"
	"fmt"
	"sort"
	"time"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/entity"
)

var ErrUnknownLabel = errors.New("unknown ordinal label")

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Point is one entry of the sleep/mood trend chart.
type Point struct {
	Date       time.Time `json:"date"`
	SleepHours float64   `json:"sleep_hours"`
	Mood       int       `json:"mood"`
}

type Report struct {
	Days            int     `json:"days"`
	AvgSleepHours   float64 `json:"avg_sleep_hours"`
	AvgSleepQuality float64 `json:"avg_sleep_quality"`
	AvgMood         float64 `json:"avg_mood"`
	// Sorted by count, descending. Equal counts keep first-seen order.
	ActivityFrequency []LabelCount `json:"activity_frequency"`
	MealFrequency     []LabelCount `json:"meal_frequency"`
	// Ascending by date.
	Series []Point `json:"series"`
}

// Aggregate computes the report over logs in any order. Empty input is
// ErrNoData rather than a report of zeroes.
func Aggregate(logs []entity.DailyLog) (*Report, error) {
	if len(logs) == 0 {
		return nil, errorvalues.ErrNoData
	}
	var (
		sleepSum, qualitySum, moodSum float64
		activities                    = newCounter()
		meals                         = newCounter()
		series                        = make([]Point, 0, len(logs))
	)
	for _, log := range logs {
		quality, ok := log.SleepQuality.Score()
		if !ok {
			return nil, fmt.Errorf("%w: sleep quality %q on %s", ErrUnknownLabel, log.SleepQuality, entity.FormatDate(log.Date))
		}
		mood, ok := log.Mood.Score()
		if !ok {
			return nil, fmt.Errorf("%w: mood %q on %s", ErrUnknownLabel, log.Mood, entity.FormatDate(log.Date))
		}
		sleepSum += log.SleepHours
		qualitySum += float64(quality)
		moodSum += float64(mood)
		activities.add(log.Activities...)
		meals.add(log.Meals...)
		series = append(series, Point{Date: log.Date, SleepHours: log.SleepHours, Mood: mood})
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	n := float64(len(logs))
	return &Report{
		Days:              len(logs),
		AvgSleepHours:     sleepSum / n,
		AvgSleepQuality:   qualitySum / n,
		AvgMood:           moodSum / n,
		ActivityFrequency: activities.sorted(),
		MealFrequency:     meals.sorted(),
		Series:            series,
	}, nil
}

// ActivityCount returns how many times label was recorded, zero if never.
func (r *Report) ActivityCount(label string) int {
	return countOf(r.ActivityFrequency, label)
}

func (r *Report) MealCount(label string) int {
	return countOf(r.MealFrequency, label)
}

func countOf(freq []LabelCount, label string) int {
	for _, lc := range freq {
		if lc.Label == label {
			return lc.Count
		}
	}
	return 0
}

type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(labels ...string) {
	for _, l := range labels {
		if _, seen := c.counts[l]; !seen {
			c.order = append(c.order, l)
		}
		c.counts[l]++
	}
}

func (c *counter) sorted() []LabelCount {
	out := make([]LabelCount, 0, len(c.order))
	for _, l := range c.order {
		out = append(out, LabelCount{Label: l, Count: c.counts[l]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
