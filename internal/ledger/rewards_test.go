package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rooted-app/rooted/internal/constants"
	"github.com/rooted-app/rooted/internal/models"
)

func TestTypedAwards(t *testing.T) {
	tests := []struct {
		name   string
		award  func(models.CurrencyData) (models.CurrencyData, bool)
		amount int
		txType models.TransactionType
	}{
		{
			"journal entry",
			func(d models.CurrencyData) (models.CurrencyData, bool) { return AwardJournalEntry(d, "e1", testNow) },
			constants.RewardJournalEntry, models.TxJournalEntry,
		},
		{
			"stress assessment",
			func(d models.CurrencyData) (models.CurrencyData, bool) { return AwardStressAssessment(d, "e1", testNow) },
			constants.RewardStressAssessment, models.TxStressAssessment,
		},
		{
			"reflection",
			func(d models.CurrencyData) (models.CurrencyData, bool) { return AwardReflectionComplete(d, "e1", testNow) },
			constants.RewardReflectionComplete, models.TxReflectionComplete,
		},
		{
			"badge",
			func(d models.CurrencyData) (models.CurrencyData, bool) {
				return AwardBadgeEarned(d, "zen-master", "Zen Master", testNow)
			},
			constants.RewardBadgeEarned, models.TxBadgeEarned,
		},
		{
			"goal creation",
			func(d models.CurrencyData) (models.CurrencyData, bool) { return AwardGoalCreation(d, "g1", testNow) },
			constants.RewardGoalCreate, models.TxGoalCreate,
		},
		{
			"goal completion",
			func(d models.CurrencyData) (models.CurrencyData, bool) { return AwardGoalCompletion(d, "g1", testNow) },
			constants.RewardGoalComplete, models.TxGoalComplete,
		},
		{
			"weekly check-in",
			func(d models.CurrencyData) (models.CurrencyData, bool) { return AwardWeeklyCheckIn(d, "2026-W35", testNow) },
			constants.RewardWeeklyCheckIn, models.TxWeeklyCheckIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, granted := tt.award(emptyLedger())
			require.True(t, granted)
			assert.Equal(t, tt.amount, data.Balance)
			require.Len(t, data.Transactions, 1)
			assert.Equal(t, tt.txType, data.Transactions[0].Type)

			// All typed awards are one-time per id.
			_, granted = tt.award(data)
			assert.False(t, granted)
		})
	}
}

func TestAwardStreakMilestone(t *testing.T) {
	data, granted := AwardStreakMilestone(emptyLedger(), "exercise", 7, testNow)
	require.True(t, granted)
	assert.Equal(t, 150, data.Balance)
	assert.True(t, data.HasRewardKey("streak_milestone_exercise_7"))

	// Not a scheduled milestone.
	_, granted = AwardStreakMilestone(emptyLedger(), "exercise", 8, testNow)
	assert.False(t, granted)

	// Same length, different streak type: pays independently.
	data, granted = AwardStreakMilestone(data, "sleep", 7, testNow)
	require.True(t, granted)
	assert.Equal(t, 300, data.Balance)
}

func TestAwardCrossedMilestones(t *testing.T) {
	// A 15-day streak pays 3, 7, and 14 at once.
	data, granted := AwardCrossedMilestones(emptyLedger(), "journal", 15, testNow)
	assert.Equal(t, []int{3, 7, 14}, granted)
	assert.Equal(t, 75+150+300, data.Balance)

	// Re-running over the same state pays nothing more.
	data, granted = AwardCrossedMilestones(data, "journal", 15, testNow)
	assert.Empty(t, granted)
	assert.Equal(t, 75+150+300, data.Balance)

	// Growing to 30 pays only the new tier.
	data, granted = AwardCrossedMilestones(data, "journal", 30, testNow)
	assert.Equal(t, []int{30}, granted)
	assert.Equal(t, 75+150+300+500, data.Balance)
}

func TestAwardCrossedMilestones_ShortStreak(t *testing.T) {
	data, granted := AwardCrossedMilestones(emptyLedger(), "journal", 2, testNow)
	assert.Empty(t, granted)
	assert.Equal(t, 0, data.Balance)
}

func TestWeekID(t *testing.T) {
	assert.Equal(t, "2026-W35", WeekID(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)))
	// ISO week years differ from calendar years at the boundary.
	assert.Equal(t, "2020-W53", WeekID(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
}
