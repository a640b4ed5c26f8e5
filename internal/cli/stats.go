package cli

import (
	"fmt"

	"github.com/rooted-app/rooted/internal/achievements"
	"github.com/rooted-app/rooted/internal/insights"
	"github.com/rooted-app/rooted/internal/models"
)

type StatsCmd struct {
	Timeframe string `short:"t" help:"Timeframe (week|month|all)." enum:"week,month,all" default:"week"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries yet. Log one with 'rooted add'.")
		return nil
	}

	now := ctx.Now()
	tf := insights.Timeframe(c.Timeframe)
	windowed := insights.FilterByTimeframe(entries, tf, now)

	fmt.Println(titleStyle.Render(fmt.Sprintf("Stats — %s", c.Timeframe)))
	fmt.Printf("Entries in window: %d\n\n", len(windowed))

	moodStats := insights.GetMoodStats(windowed)
	if moodStats.Total > 0 {
		fmt.Println("Moods:")
		for _, mood := range []models.Mood{models.MoodGreat, models.MoodGood, models.MoodOkay, models.MoodLow, models.MoodStruggling} {
			if count := moodStats.Counts[mood]; count > 0 {
				fmt.Printf("  %s %-10s %3d (%d%%)\n", moodEmoji[mood], mood, count, moodStats.Percentages[mood])
			}
		}
		if trend := insights.GetMoodTrend(windowed); trend != "" {
			fmt.Printf("  Trend: %s\n", trend)
		}
		fmt.Println()
	}

	averages := insights.GetAverages(windowed)
	if averages.SleepEntries > 0 || averages.ExerciseEntries > 0 {
		fmt.Println("Habits:")
		if averages.SleepEntries > 0 {
			fmt.Printf("  Sleep:    %.1fh average over %d nights\n", averages.Sleep, averages.SleepEntries)
		}
		if averages.ExerciseEntries > 0 {
			fmt.Printf("  Exercise: %dmin average over %d sessions\n", averages.Exercise, averages.ExerciseEntries)
		}
		fmt.Println()
	}

	if stressStats := insights.GetStressStats(windowed); stressStats != nil {
		fmt.Println("Assessments:")
		fmt.Printf("  Average wellbeing: %.1f%% over %d assessments (%s)\n",
			stressStats.AvgScore, stressStats.TotalAssessments, stressStats.Trend)
		for category, count := range stressStats.Categories {
			fmt.Printf("    %-18s %d\n", category, count)
		}
		fmt.Println()
	}

	// Streaks always run over the full log, not the window.
	snap := achievements.Calculate(entries, now)
	fmt.Println("Streaks:")
	fmt.Printf("  Journal:    %d days\n", snap.JournalStreak)
	fmt.Printf("  Exercise:   %d entries\n", snap.ExerciseStreak)
	fmt.Printf("  Sleep:      %d entries\n", snap.SleepStreak)
	fmt.Printf("  Positivity: %d entries\n", snap.PositivityStreak)
	fmt.Println()
	fmt.Printf("Wellness score:    %d%%\n", snap.WellnessScore)
	fmt.Printf("Consistency (30d): %d%%  %s\n", snap.ConsistencyScore, progressBar(snap.ConsistencyScore, 20))

	return nil
}
