package models

import "time"

type TransactionType string

const (
	TxGoalComplete       TransactionType = "goal_complete"
	TxGoalCreate         TransactionType = "goal_create"
	TxBadgeEarned        TransactionType = "badge_earned"
	TxJournalEntry       TransactionType = "journal_entry"
	TxStreakMilestone    TransactionType = "streak_milestone"
	TxStressAssessment   TransactionType = "stress_assessment"
	TxReflectionComplete TransactionType = "reflection_complete"
	TxWeeklyCheckIn      TransactionType = "weekly_check_in"
	TxPlantPurchase      TransactionType = "plant_purchase"
)

// Transaction is one ledger line. Amounts are positive for awards and
// negative for purchases.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      int             `json:"amount"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
	UniqueID    string          `json:"unique_id,omitempty"`
}

// CurrencyData is the whole ledger blob: balance, recent-first history, and
// the set of claimed reward keys (serialized as an array).
type CurrencyData struct {
	Balance       int           `json:"balance" validate:"min=0"`
	Transactions  []Transaction `json:"transactions"`
	EarnedRewards []string      `json:"earned_rewards"`
	LastUpdated   time.Time     `json:"last_updated"`
}

// HasRewardKey reports whether the given idempotence key has been claimed.
func (d CurrencyData) HasRewardKey(key string) bool {
	for _, k := range d.EarnedRewards {
		if k == key {
			return true
		}
	}
	return false
}
