package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/limbo/mindful/pkg/entity"
)

const (
	minSleepMinutes = 420
	maxSleepMinutes = 540
	exerciseLabel   = "Exercise"
)

const (
	InsightLowSleep = "Your average sleep duration is below the recommended 7-9 hours. " +
		"Consider adjusting your sleep schedule to improve your mental well-being."
	InsightHighSleep = "Your average sleep duration is above the recommended 7-9 hours. " +
		"While individual needs vary, excessive sleep can sometimes be associated with mood disorders. " +
		"Monitor how you feel and consult a professional if concerned."
	InsightLowQuality = "Your average sleep quality is lower than ideal. " +
		"Try implementing a consistent bedtime routine and creating a sleep-friendly environment to improve your sleep quality."
	InsightLowMood = "Your mood has been trending lower recently. " +
		"Consider incorporating more mood-boosting activities into your routine, such as exercise or socializing with friends."
	InsightHighMood = "Your mood has been consistently positive lately. " +
		"Keep up the good work and continue with the activities that seem to be benefiting your mental health."
	InsightNoExercise = "You haven't reported any exercise recently. " +
		"Regular physical activity can significantly improve mood and reduce stress. " +
		"Try incorporating some form of exercise into your routine."
	insightTopActivity = "Your most frequent activity is %s. Consider how this activity affects your mood and energy levels."
)

// SleepSummary is one night as shown to the assistant.
type SleepSummary struct {
	Date     time.Time
	Duration time.Duration
	Quality  entity.SleepQuality
}

// DaySummary is one day as shown to the assistant.
type DaySummary struct {
	Date       time.Time
	Mood       entity.Mood
	Activities []string
	Summary    string
}

// Summaries splits logs into the sleep and day views, keeping the input order.
func Summaries(logs []entity.DailyLog) ([]SleepSummary, []DaySummary) {
	sleep := make([]SleepSummary, 0, len(logs))
	days := make([]DaySummary, 0, len(logs))
	for _, log := range logs {
		sleep = append(sleep, SleepSummary{
			Date:     log.Date,
			Duration: time.Duration(math.Round(log.SleepHours*60)) * time.Minute,
			Quality:  log.SleepQuality,
		})
		days = append(days, DaySummary{
			Date:       log.Date,
			Mood:       log.Mood,
			Activities: log.Activities,
			Summary:    log.Notes,
		})
	}
	return sleep, days
}

// SummarizeRaw builds a report from the assistant views. Sleep and mood are
// averaged over their own entries; labels outside the scales are skipped.
// Returns nil when both views are empty.
func SummarizeRaw(sleep []SleepSummary, days []DaySummary) *Report {
	if len(sleep) == 0 && len(days) == 0 {
		return nil
	}
	r := &Report{Days: max(len(sleep), len(days))}
	var minutes, quality float64
	qualityN := 0
	for _, s := range sleep {
		minutes += s.Duration.Minutes()
		if q, ok := s.Quality.Score(); ok {
			quality += float64(q)
			qualityN++
		}
	}
	if len(sleep) > 0 {
		r.AvgSleepHours = minutes / float64(len(sleep)) / 60
	}
	if qualityN > 0 {
		r.AvgSleepQuality = quality / float64(qualityN)
	}
	var mood float64
	moodN := 0
	activities := newCounter()
	series := make([]Point, 0, len(days))
	for _, d := range days {
		m, ok := d.Mood.Score()
		if ok {
			mood += float64(m)
			moodN++
		}
		activities.add(d.Activities...)
		series = append(series, Point{Date: d.Date, Mood: m})
	}
	if moodN > 0 {
		r.AvgMood = mood / float64(moodN)
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	r.ActivityFrequency = activities.sorted()
	r.Series = series
	return r
}

// Insights evaluates the fixed rule set against r. Each rule is independent
// and the output order is stable. A nil report produces no insights.
func Insights(r *Report) []string {
	if r == nil {
		return nil
	}
	insights := make([]string, 0, 5)
	sleepMinutes := r.AvgSleepHours * 60
	if sleepMinutes < minSleepMinutes {
		insights = append(insights, InsightLowSleep)
	} else if sleepMinutes > maxSleepMinutes {
		insights = append(insights, InsightHighSleep)
	}
	if r.AvgSleepQuality < 3 {
		insights = append(insights, InsightLowQuality)
	}
	if r.AvgMood < 3 {
		insights = append(insights, InsightLowMood)
	} else if r.AvgMood > 4 {
		insights = append(insights, InsightHighMood)
	}
	if len(r.ActivityFrequency) > 0 {
		insights = append(insights, fmt.Sprintf(insightTopActivity, r.ActivityFrequency[0].Label))
	}
	if r.ActivityCount(exerciseLabel) == 0 {
		insights = append(insights, InsightNoExercise)
	}
	return insights
}
