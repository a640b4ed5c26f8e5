package constants

const (
	CurrencyName   = "RootCoins"
	CurrencySymbol = "🪙"
)

// Reward payouts. These values are load-bearing for saved ledgers: changing
// them changes what historical reward keys were worth, so treat them as fixed.
const (
	RewardGoalComplete       = 50
	RewardGoalCreate         = 10
	RewardBadgeEarned        = 100
	RewardJournalEntry       = 25
	RewardStressAssessment   = 20
	RewardReflectionComplete = 30
	RewardWeeklyCheckIn      = 100
)

// StreakMilestones maps streak length in days to its one-time payout.
var StreakMilestones = map[int]int{
	3:   75,
	7:   150,
	14:  300,
	30:  500,
	60:  750,
	100: 1000,
}

// MilestoneLengths lists the milestone streak lengths in ascending order.
var MilestoneLengths = []int{3, 7, 14, 30, 60, 100}

// MaxTransactions caps ledger history; older records are silently dropped.
const MaxTransactions = 1000

func init() {
	// Runtime validation: the ordered length list and the payout table must
	// describe the same milestones.
	if len(MilestoneLengths) != len(StreakMilestones) {
		panic("MilestoneLengths and StreakMilestones are out of sync")
	}
	for _, l := range MilestoneLengths {
		if _, ok := StreakMilestones[l]; !ok {
			panic("MilestoneLengths contains a length missing from StreakMilestones")
		}
	}
}
