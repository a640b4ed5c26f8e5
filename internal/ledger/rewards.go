package ledger

import (
	"fmt"
	"time"

	"github.com/rooted-app/rooted/internal/constants"
	"github.com/rooted-app/rooted/internal/models"
)

// Typed award helpers. Each is a one-time grant keyed on the triggering
// record's id, so duplicate evaluation passes cannot double-pay.

func AwardJournalEntry(data models.CurrencyData, entryID string, now time.Time) (models.CurrencyData, bool) {
	return Award(data, constants.RewardJournalEntry, models.TxJournalEntry, "Completed a journal entry", entryID, now)
}

func AwardStressAssessment(data models.CurrencyData, assessmentID string, now time.Time) (models.CurrencyData, bool) {
	return Award(data, constants.RewardStressAssessment, models.TxStressAssessment, "Completed stress assessment", assessmentID, now)
}

func AwardReflectionComplete(data models.CurrencyData, reflectionID string, now time.Time) (models.CurrencyData, bool) {
	return Award(data, constants.RewardReflectionComplete, models.TxReflectionComplete, "Completed reflection session", reflectionID, now)
}

func AwardBadgeEarned(data models.CurrencyData, badgeID, badgeName string, now time.Time) (models.CurrencyData, bool) {
	return Award(data, constants.RewardBadgeEarned, models.TxBadgeEarned, fmt.Sprintf("Earned badge: %s", badgeName), badgeID, now)
}

func AwardGoalCreation(data models.CurrencyData, goalID string, now time.Time) (models.CurrencyData, bool) {
	return Award(data, constants.RewardGoalCreate, models.TxGoalCreate, "Created a new goal", goalID, now)
}

func AwardGoalCompletion(data models.CurrencyData, goalID string, now time.Time) (models.CurrencyData, bool) {
	return Award(data, constants.RewardGoalComplete, models.TxGoalComplete, "Completed a personal goal", goalID, now)
}

// AwardWeeklyCheckIn grants the weekly check-in bonus at most once per ISO
// week; weekID is the "2006-W02"-style week token.
func AwardWeeklyCheckIn(data models.CurrencyData, weekID string, now time.Time) (models.CurrencyData, bool) {
	return Award(data, constants.RewardWeeklyCheckIn, models.TxWeeklyCheckIn, "Weekly check-in", weekID, now)
}

// AwardStreakMilestone pays out a streak milestone. Lengths outside the
// milestone schedule grant nothing. The reward key is streakType_length, so
// each tier pays at most once per streak type.
func AwardStreakMilestone(data models.CurrencyData, streakType string, length int, now time.Time) (models.CurrencyData, bool) {
	reward, ok := constants.StreakMilestones[length]
	if !ok {
		return data, false
	}
	return Award(
		data,
		reward,
		models.TxStreakMilestone,
		fmt.Sprintf("Achieved %d-day %s streak", length, streakType),
		fmt.Sprintf("%s_%d", streakType, length),
		now,
	)
}

// AwardCrossedMilestones grants every unclaimed milestone at or below the
// current streak length and returns the lengths that paid out. Reward keys
// make this safe to call on every evaluation pass, and it still pays tiers
// that were skipped while evaluation wasn't running.
func AwardCrossedMilestones(data models.CurrencyData, streakType string, length int, now time.Time) (models.CurrencyData, []int) {
	var granted []int
	for _, m := range constants.MilestoneLengths {
		if m > length {
			break
		}
		var ok bool
		data, ok = AwardStreakMilestone(data, streakType, m, now)
		if ok {
			granted = append(granted, m)
		}
	}
	return data, granted
}

// WeekID formats the ISO week token used as the weekly check-in reward key.
func WeekID(now time.Time) string {
	year, week := now.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
