// Package insights computes display statistics over the entry log:
// timeframe filtering, mood distribution, sleep/exercise averages, and
// stress assessment trends. Pure functions, no persistence.
package insights

import (
	"math"
	"time"

	"github.com/rooted-app/rooted/internal/models"
)

type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeAll   Timeframe = "all"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// FilterByTimeframe keeps entries whose day falls inside the window.
func FilterByTimeframe(entries []models.JournalEntry, tf Timeframe, now time.Time) []models.JournalEntry {
	if tf == TimeframeAll {
		return entries
	}

	days := 7
	if tf == TimeframeMonth {
		days = 30
	}
	cutoff := now.AddDate(0, 0, -days)

	var filtered []models.JournalEntry
	for _, e := range entries {
		day, err := e.DayTime()
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MoodStats is the mood distribution over a set of entries.
type MoodStats struct {
	Counts      map[models.Mood]int
	Percentages map[models.Mood]int
	Total       int
}

// GetMoodStats counts moods and derives rounded percentages.
func GetMoodStats(entries []models.JournalEntry) MoodStats {
	stats := MoodStats{
		Counts:      make(map[models.Mood]int),
		Percentages: make(map[models.Mood]int),
		Total:       len(entries),
	}
	if stats.Total == 0 {
		return stats
	}

	for _, e := range entries {
		stats.Counts[e.Mood]++
	}
	for mood, count := range stats.Counts {
		stats.Percentages[mood] = int(math.Round(float64(count) / float64(stats.Total) * 100))
	}
	return stats
}

// Averages summarizes sleep and exercise over entries that logged them.
type Averages struct {
	Sleep           float64
	Exercise        int
	SleepEntries    int
	ExerciseEntries int
}

// GetAverages averages sleep hours and exercise minutes.
func GetAverages(entries []models.JournalEntry) Averages {
	var avg Averages
	sleepSum := 0.0
	exerciseSum := 0

	for _, e := range entries {
		if e.SleepHours != nil {
			sleepSum += *e.SleepHours
			avg.SleepEntries++
		}
		if e.ExerciseMinutes != nil {
			exerciseSum += *e.ExerciseMinutes
			avg.ExerciseEntries++
		}
	}

	if avg.SleepEntries > 0 {
		avg.Sleep = math.Round(sleepSum/float64(avg.SleepEntries)*10) / 10
	}
	if avg.ExerciseEntries > 0 {
		avg.Exercise = int(math.Round(float64(exerciseSum) / float64(avg.ExerciseEntries)))
	}
	return avg
}

// StressStats summarizes the assessments in a window.
type StressStats struct {
	AvgScore         float64
	TotalAssessments int
	Trend            Trend
	Categories       map[string]int
}

// GetStressStats averages assessment percentages, derives the short-term
// trend (first 3 vs next 3 scores, ±5 threshold), and buckets scores into
// the display categories. Returns nil when no assessments exist.
func GetStressStats(entries []models.JournalEntry) *StressStats {
	var scores []int
	for _, e := range entries {
		if e.HasAssessment() {
			scores = append(scores, e.StressData.Result.Percentage)
		}
	}
	if len(scores) == 0 {
		return nil
	}

	stats := &StressStats{
		TotalAssessments: len(scores),
		Trend:            TrendStable,
		Categories:       make(map[string]int),
	}

	sum := 0
	for _, s := range scores {
		sum += s
		stats.Categories[scoreCategory(s)]++
	}
	stats.AvgScore = math.Round(float64(sum)/float64(len(scores))*10) / 10

	recentEnd := min(3, len(scores))
	olderEnd := min(6, len(scores))
	recent := scores[:recentEnd]
	older := scores[recentEnd:olderEnd]
	if len(older) > 0 {
		recentAvg := intAvg(recent)
		olderAvg := intAvg(older)
		if recentAvg > olderAvg+5 {
			stats.Trend = TrendImproving
		} else if recentAvg < olderAvg-5 {
			stats.Trend = TrendDeclining
		}
	}

	return stats
}

// GetMoodTrend compares the 5 most recent ordinal moods against the 5
// before them, on a ±0.2 threshold. Empty string when data is too thin.
func GetMoodTrend(entries []models.JournalEntry) Trend {
	if len(entries) < 2 {
		return ""
	}

	recentEnd := min(5, len(entries))
	olderEnd := min(10, len(entries))
	recent := entries[:recentEnd]
	older := entries[recentEnd:olderEnd]
	if len(older) == 0 {
		return ""
	}

	diff := moodAvg(recent) - moodAvg(older)
	if diff > 0.2 {
		return TrendImproving
	}
	if diff < -0.2 {
		return TrendDeclining
	}
	return TrendStable
}

func scoreCategory(score int) string {
	switch {
	case score <= 60:
		return "High Anxiety"
	case score <= 70:
		return "Moderate Anxiety"
	case score <= 80:
		return "Balanced"
	case score <= 90:
		return "Low Anxiety"
	default:
		return "Optimal"
	}
}

func intAvg(vals []int) float64 {
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}

func moodAvg(entries []models.JournalEntry) float64 {
	sum := 0
	for _, e := range entries {
		sum += e.Mood.Ordinal()
	}
	return float64(sum) / float64(len(entries))
}
