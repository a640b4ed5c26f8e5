// Package achievements derives gamification counters from the raw entry log.
// Everything here is a pure function of the entries and an explicit "now";
// nothing is persisted.
package achievements

import (
	"math"
	"sort"
	"time"

	"github.com/rooted-app/rooted/internal/models"
)

// Snapshot is the derived achievement state, recomputed on demand.
type Snapshot struct {
	ExerciseStreak    int     `json:"exercise_streak"`
	ExerciseTotal     int     `json:"exercise_total"`
	SleepStreak       int     `json:"sleep_streak"`
	GoodSleepCount    int     `json:"good_sleep_count"`
	StressImprovement int     `json:"stress_improvement"`
	AnxietyReduction  int     `json:"anxiety_reduction"`
	JournalStreak     int     `json:"journal_streak"`
	TotalEntries      int     `json:"total_entries"`
	PositivityStreak  int     `json:"positivity_streak"`
	MoodImprovement   float64 `json:"mood_improvement"`
	ReflectionCount   int     `json:"reflection_count"`
	WellnessScore     int     `json:"wellness_score"`
	ConsistencyScore  int     `json:"consistency_score"`
}

// Calculate builds the full snapshot from the entry log. Input order does
// not matter; entries are sorted by day descending internally.
func Calculate(entries []models.JournalEntry, now time.Time) Snapshot {
	sorted := sortByDayDesc(entries)

	return Snapshot{
		ExerciseStreak:    ExerciseStreak(sorted),
		ExerciseTotal:     countEntries(entries, didExercise),
		SleepStreak:       SleepStreak(sorted),
		GoodSleepCount:    countEntries(entries, sleptWell),
		StressImprovement: StressImprovement(sorted),
		AnxietyReduction:  AnxietyReduction(sorted),
		JournalStreak:     JournalStreak(sorted, now),
		TotalEntries:      len(entries),
		PositivityStreak:  PositivityStreak(sorted),
		MoodImprovement:   MoodImprovement(sorted),
		ReflectionCount:   countEntries(entries, func(e models.JournalEntry) bool { return e.StressData.HasReflections() }),
		WellnessScore:     WellnessScore(entries),
		ConsistencyScore:  ConsistencyScore(entries, now),
	}
}

// ExerciseStreak counts consecutive leading entries with exercise logged.
// Multiple entries on the same day each count; the streak measures entries,
// not days.
func ExerciseStreak(sorted []models.JournalEntry) int {
	return leadingStreak(sorted, didExercise)
}

// SleepStreak counts consecutive leading entries with 7-9 hours of sleep.
func SleepStreak(sorted []models.JournalEntry) int {
	return leadingStreak(sorted, sleptWell)
}

// PositivityStreak counts consecutive leading entries with a positive mood.
func PositivityStreak(sorted []models.JournalEntry) int {
	return leadingStreak(sorted, func(e models.JournalEntry) bool { return e.Mood.IsPositive() })
}

// JournalStreak counts consecutive covered calendar days ending today.
// Days are de-duplicated first; a day is covered when it equals today minus
// the streak so far, and the first gap breaks the streak.
func JournalStreak(sorted []models.JournalEntry, now time.Time) int {
	if len(sorted) == 0 {
		return 0
	}

	today := midnight(now)
	days := uniqueDaysDesc(sorted)

	streak := 0
	for _, day := range days {
		diff := daysBetween(today, day)
		if diff == streak {
			streak++
		} else if diff > streak {
			break
		}
	}
	return streak
}

// StressImprovement compares the average assessment percentage of the 7 most
// recent entries against entries 7-14. Regressions report as zero.
func StressImprovement(sorted []models.JournalEntry) int {
	recent := window(sorted, 0, 7)
	older := window(sorted, 7, 14)
	if len(recent) == 0 || len(older) == 0 {
		return 0
	}

	diff := assessmentSum(recent)/float64(len(recent)) - assessmentSum(older)/float64(len(older))
	return clampNonNegative(int(math.Round(diff)))
}

// AnxietyReduction compares the first three assessed entries against the
// trailing three; it needs at least five assessed entries to report anything.
func AnxietyReduction(sorted []models.JournalEntry) int {
	assessed := make([]models.JournalEntry, 0, len(sorted))
	for _, e := range sorted {
		if e.HasAssessment() {
			assessed = append(assessed, e)
		}
	}
	if len(assessed) < 5 {
		return 0
	}

	recent := assessed[:3]
	older := assessed[len(assessed)-3:]
	diff := assessmentSum(recent)/3 - assessmentSum(older)/3
	return clampNonNegative(int(math.Round(diff)))
}

// MoodImprovement compares the ordinal mood average of the 7 most recent
// entries against entries 7-14, to one decimal, floored at zero.
func MoodImprovement(sorted []models.JournalEntry) float64 {
	recent := window(sorted, 0, 7)
	older := window(sorted, 7, 14)
	if len(recent) == 0 || len(older) == 0 {
		return 0
	}

	diff := moodSum(recent)/float64(len(recent)) - moodSum(older)/float64(len(older))
	if diff < 0 {
		return 0
	}
	return math.Round(diff*10) / 10
}

// WellnessScore is the mean assessment percentage across the whole log.
func WellnessScore(entries []models.JournalEntry) int {
	count := 0
	sum := 0.0
	for _, e := range entries {
		if e.HasAssessment() {
			sum += float64(e.StressData.Result.Percentage)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / float64(count)))
}

// ConsistencyScore is the percentage of the last 30 calendar days with at
// least one entry. Distinct days cap it at 100 by construction.
func ConsistencyScore(entries []models.JournalEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	today := midnight(now)
	cutoff := today.AddDate(0, 0, -29)

	covered := make(map[string]bool)
	for _, e := range entries {
		day, err := e.DayTime()
		if err != nil {
			continue
		}
		if !day.Before(cutoff) && !day.After(today) {
			covered[e.Day] = true
		}
	}

	return int(math.Round(float64(len(covered)) / 30 * 100))
}

func leadingStreak(sorted []models.JournalEntry, qualifies func(models.JournalEntry) bool) int {
	streak := 0
	for _, e := range sorted {
		if !qualifies(e) {
			break
		}
		streak++
	}
	return streak
}

func didExercise(e models.JournalEntry) bool {
	return e.ExerciseMinutes != nil && *e.ExerciseMinutes > 0
}

func sleptWell(e models.JournalEntry) bool {
	return e.SleepHours != nil && *e.SleepHours >= 7 && *e.SleepHours <= 9
}

func countEntries(entries []models.JournalEntry, qualifies func(models.JournalEntry) bool) int {
	count := 0
	for _, e := range entries {
		if qualifies(e) {
			count++
		}
	}
	return count
}

func assessmentSum(entries []models.JournalEntry) float64 {
	sum := 0.0
	for _, e := range entries {
		if e.HasAssessment() {
			sum += float64(e.StressData.Result.Percentage)
		}
	}
	return sum
}

func moodSum(entries []models.JournalEntry) float64 {
	sum := 0.0
	for _, e := range entries {
		sum += float64(e.Mood.Ordinal())
	}
	return sum
}

func window(entries []models.JournalEntry, from, to int) []models.JournalEntry {
	if from >= len(entries) {
		return nil
	}
	if to > len(entries) {
		to = len(entries)
	}
	return entries[from:to]
}

func sortByDayDesc(entries []models.JournalEntry) []models.JournalEntry {
	sorted := make([]models.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Day != sorted[j].Day {
			return sorted[i].Day > sorted[j].Day
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

func uniqueDaysDesc(sorted []models.JournalEntry) []time.Time {
	seen := make(map[string]bool)
	var days []time.Time
	for _, e := range sorted {
		if seen[e.Day] {
			continue
		}
		day, err := e.DayTime()
		if err != nil {
			continue
		}
		seen[e.Day] = true
		days = append(days, day)
	}
	return days
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from b up to a. Rounding absorbs DST
// offsets between the two midnights.
func daysBetween(a, b time.Time) int {
	return int(math.Round(a.Sub(b).Hours() / 24))
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
