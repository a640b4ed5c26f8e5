package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rooted-app/rooted/internal/achievements"
	"github.com/rooted-app/rooted/internal/badges"
	"github.com/rooted-app/rooted/internal/constants"
	"github.com/rooted-app/rooted/internal/ledger"
	"github.com/rooted-app/rooted/internal/logger"
	"github.com/rooted-app/rooted/internal/models"
	"github.com/rooted-app/rooted/internal/plant"
	"github.com/rooted-app/rooted/internal/storage"
)

type Context struct {
	Store storage.Provider
	Now   func() time.Time
	Roll  plant.Roll
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	coinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)
)

// rewardSummary collects everything one reward pass paid out, for display.
type rewardSummary struct {
	CoinsEarned int
	Milestones  []string
	Badges      []badges.Badge
}

// runRewardPass runs the full award sequence after a new entry: entry
// rewards, crossed streak milestones, then badge evaluation. Every grant is
// keyed, so re-running over the same state pays nothing.
func runRewardPass(ctx *Context, entry models.JournalEntry, now time.Time) (rewardSummary, error) {
	var summary rewardSummary

	currency, err := ctx.Store.GetCurrency()
	if err != nil {
		return summary, err
	}
	before := currency.Balance

	currency, _ = ledger.AwardJournalEntry(currency, entry.ID, now)
	if entry.HasAssessment() {
		currency, _ = ledger.AwardStressAssessment(currency, entry.ID, now)
		if entry.StressData.HasReflections() {
			currency, _ = ledger.AwardReflectionComplete(currency, entry.ID, now)
		}
	}

	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return summary, err
	}

	snap := achievements.Calculate(entries, now)
	for _, streak := range []struct {
		name   string
		length int
	}{
		{"exercise", snap.ExerciseStreak},
		{"sleep", snap.SleepStreak},
		{"journal", snap.JournalStreak},
		{"positivity", snap.PositivityStreak},
	} {
		var granted []int
		currency, granted = ledger.AwardCrossedMilestones(currency, streak.name, streak.length, now)
		for _, length := range granted {
			summary.Milestones = append(summary.Milestones, fmt.Sprintf("%d-day %s streak", length, streak.name))
		}
	}

	state, err := ctx.Store.GetPlant()
	if err != nil {
		return summary, err
	}
	evaluated := badges.Evaluate(snap, entries, state, now)
	currency, summary.Badges = badges.AwardNewlyEarned(currency, evaluated, now)

	if err := ctx.Store.SaveCurrency(currency); err != nil {
		// Rewards are recomputable from keys; losing one save is not fatal.
		logger.Warn("Failed to save ledger after reward pass", "error", err)
	}

	summary.CoinsEarned = currency.Balance - before
	return summary, nil
}

func printRewardSummary(summary rewardSummary) {
	if summary.CoinsEarned > 0 {
		fmt.Printf("%s\n", coinStyle.Render(fmt.Sprintf("+%d %s earned!", summary.CoinsEarned, constants.CurrencyName)))
	}
	for _, m := range summary.Milestones {
		fmt.Printf("  🎉 Milestone reached: %s\n", m)
	}
	for _, b := range summary.Badges {
		fmt.Printf("  %s New badge: %s — %s\n", b.Icon, b.Name, b.Description)
	}
}

func formatCoins(amount int) string {
	return fmt.Sprintf("%s %d %s", constants.CurrencySymbol, amount, constants.CurrencyName)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
