package achievements

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rooted-app/rooted/internal/models"
)

var testNow = time.Date(2026, 8, 29, 15, 0, 0, 0, time.Local)

func day(offset int) string {
	return testNow.AddDate(0, 0, -offset).Format("2006-01-02")
}

func entry(dayOffset int, mood models.Mood) models.JournalEntry {
	return models.JournalEntry{
		ID:        fmt.Sprintf("e-%d-%s", dayOffset, mood),
		Day:       day(dayOffset),
		Mood:      mood,
		CreatedAt: testNow.AddDate(0, 0, -dayOffset),
	}
}

func withExercise(e models.JournalEntry, minutes int) models.JournalEntry {
	e.ExerciseMinutes = &minutes
	return e
}

func withSleep(e models.JournalEntry, hours float64) models.JournalEntry {
	e.SleepHours = &hours
	return e
}

func withAssessment(e models.JournalEntry, percentage int) models.JournalEntry {
	e.StressData = &models.StressData{
		Result: models.StressResult{Percentage: percentage},
	}
	return e
}

func TestJournalStreak(t *testing.T) {
	tests := []struct {
		name    string
		offsets []int
		want    int
	}{
		{"empty", nil, 0},
		{"today only", []int{0}, 1},
		{"three consecutive", []int{0, 1, 2}, 3},
		{"gap breaks streak", []int{0, 1, 3, 4}, 2},
		{"no entry today or yesterday", []int{2, 3}, 0},
		{"starts yesterday", []int{1, 2, 3}, 0},
		{"duplicate days count once", []int{0, 0, 1, 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []models.JournalEntry
			for _, off := range tt.offsets {
				entries = append(entries, entry(off, models.MoodOkay))
			}
			sorted := sortByDayDesc(entries)
			assert.Equal(t, tt.want, JournalStreak(sorted, testNow))
		})
	}
}

func TestLeadingStreaks_CountEntriesNotDays(t *testing.T) {
	// Two qualifying entries on the same day both extend the streak.
	entries := []models.JournalEntry{
		withExercise(entry(0, models.MoodGood), 30),
		withExercise(entry(0, models.MoodGreat), 20),
		withExercise(entry(1, models.MoodOkay), 45),
		entry(2, models.MoodOkay),
		withExercise(entry(3, models.MoodOkay), 10),
	}
	sorted := sortByDayDesc(entries)

	assert.Equal(t, 3, ExerciseStreak(sorted))
}

func TestExerciseStreak_ZeroMinutesDoesNotCount(t *testing.T) {
	sorted := sortByDayDesc([]models.JournalEntry{
		withExercise(entry(0, models.MoodGood), 0),
		withExercise(entry(1, models.MoodGood), 30),
	})
	assert.Equal(t, 0, ExerciseStreak(sorted))
}

func TestSleepStreak_HealthyRangeOnly(t *testing.T) {
	sorted := sortByDayDesc([]models.JournalEntry{
		withSleep(entry(0, models.MoodGood), 8),
		withSleep(entry(1, models.MoodGood), 7),
		withSleep(entry(2, models.MoodGood), 10), // oversleeping breaks it
		withSleep(entry(3, models.MoodGood), 8),
	})
	assert.Equal(t, 2, SleepStreak(sorted))
}

func TestPositivityStreak(t *testing.T) {
	sorted := sortByDayDesc([]models.JournalEntry{
		entry(0, models.MoodGreat),
		entry(1, models.MoodGood),
		entry(2, models.MoodOkay),
		entry(3, models.MoodGreat),
	})
	assert.Equal(t, 2, PositivityStreak(sorted))
}

func TestStressImprovement(t *testing.T) {
	// Recent week averages 80, prior week 70: +10.
	var entries []models.JournalEntry
	for i := 0; i < 7; i++ {
		entries = append(entries, withAssessment(entry(i, models.MoodOkay), 80))
	}
	for i := 7; i < 14; i++ {
		entries = append(entries, withAssessment(entry(i, models.MoodOkay), 70))
	}
	sorted := sortByDayDesc(entries)
	assert.Equal(t, 10, StressImprovement(sorted))
}

func TestStressImprovement_RegressionClampsToZero(t *testing.T) {
	var entries []models.JournalEntry
	for i := 0; i < 7; i++ {
		entries = append(entries, withAssessment(entry(i, models.MoodOkay), 60))
	}
	for i := 7; i < 14; i++ {
		entries = append(entries, withAssessment(entry(i, models.MoodOkay), 80))
	}
	sorted := sortByDayDesc(entries)
	assert.Equal(t, 0, StressImprovement(sorted))
}

func TestStressImprovement_NeedsBothWindows(t *testing.T) {
	var entries []models.JournalEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, withAssessment(entry(i, models.MoodOkay), 80))
	}
	assert.Equal(t, 0, StressImprovement(sortByDayDesc(entries)))
}

func TestAnxietyReduction(t *testing.T) {
	// Most recent three average 90, oldest three average 70: +20.
	scores := []int{90, 90, 90, 75, 70, 70, 70}
	var entries []models.JournalEntry
	for i, score := range scores {
		entries = append(entries, withAssessment(entry(i, models.MoodOkay), score))
	}
	sorted := sortByDayDesc(entries)
	assert.Equal(t, 20, AnxietyReduction(sorted))
}

func TestAnxietyReduction_NeedsFiveAssessments(t *testing.T) {
	var entries []models.JournalEntry
	for i := 0; i < 4; i++ {
		entries = append(entries, withAssessment(entry(i, models.MoodOkay), 90))
	}
	assert.Equal(t, 0, AnxietyReduction(sortByDayDesc(entries)))
}

func TestMoodImprovement(t *testing.T) {
	var entries []models.JournalEntry
	for i := 0; i < 7; i++ {
		entries = append(entries, entry(i, models.MoodGood)) // ordinal 4
	}
	for i := 7; i < 14; i++ {
		entries = append(entries, entry(i, models.MoodLow)) // ordinal 2
	}
	sorted := sortByDayDesc(entries)
	assert.InDelta(t, 2.0, MoodImprovement(sorted), 0.001)
}

func TestWellnessScore(t *testing.T) {
	entries := []models.JournalEntry{
		withAssessment(entry(0, models.MoodOkay), 80),
		withAssessment(entry(1, models.MoodOkay), 71),
		entry(2, models.MoodOkay), // no assessment, ignored
	}
	assert.Equal(t, 76, WellnessScore(entries))
	assert.Equal(t, 0, WellnessScore(nil))
}

func TestConsistencyScore(t *testing.T) {
	var entries []models.JournalEntry
	for i := 0; i < 15; i++ {
		entries = append(entries, entry(i, models.MoodOkay))
	}
	// 15 of 30 days covered.
	assert.Equal(t, 50, ConsistencyScore(entries, testNow))
}

func TestConsistencyScore_DuplicateDaysAndOldEntries(t *testing.T) {
	entries := []models.JournalEntry{
		entry(0, models.MoodOkay),
		entry(0, models.MoodGood),  // same day, counts once
		entry(45, models.MoodOkay), // outside the 30-day window
	}
	assert.Equal(t, 3, ConsistencyScore(entries, testNow)) // 1/30 ≈ 3%
}

func TestCalculate(t *testing.T) {
	entries := []models.JournalEntry{
		withAssessment(withSleep(withExercise(entry(0, models.MoodGreat), 30), 8), 85),
		withSleep(entry(1, models.MoodGood), 7.5),
		entry(2, models.MoodOkay),
	}
	entries[0].StressData.ReflectionResponses = map[string]string{"prompt": "an answer"}

	snap := Calculate(entries, testNow)

	assert.Equal(t, 3, snap.TotalEntries)
	assert.Equal(t, 3, snap.JournalStreak)
	assert.Equal(t, 1, snap.ExerciseStreak)
	assert.Equal(t, 1, snap.ExerciseTotal)
	assert.Equal(t, 2, snap.SleepStreak)
	assert.Equal(t, 2, snap.GoodSleepCount)
	assert.Equal(t, 2, snap.PositivityStreak)
	assert.Equal(t, 1, snap.ReflectionCount)
	assert.Equal(t, 85, snap.WellnessScore)
	assert.Equal(t, 10, snap.ConsistencyScore)
}

func TestCalculate_OrderIndependent(t *testing.T) {
	forward := []models.JournalEntry{
		entry(0, models.MoodGreat),
		entry(1, models.MoodGood),
		entry(2, models.MoodOkay),
	}
	backward := []models.JournalEntry{forward[2], forward[0], forward[1]}

	assert.Equal(t, Calculate(forward, testNow), Calculate(backward, testNow))
}
