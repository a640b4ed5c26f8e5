// Package ledger implements the RootCoins currency ledger: balance,
// recent-first transaction history, and the idempotent reward-claim set.
//
// All functions are pure: they take the current CurrencyData plus an explicit
// timestamp and return the updated copy. The persistence boundary lives in
// the caller.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rooted-app/rooted/internal/constants"
	"github.com/rooted-app/rooted/internal/models"
)

// ErrInsufficientBalance indicates a debit larger than the current balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// RewardKey builds the `type_uniqueId` idempotence token.
func RewardKey(txType models.TransactionType, uniqueID string) string {
	return fmt.Sprintf("%s_%s", txType, uniqueID)
}

// Award grants currency for an action. When uniqueID is non-empty the grant
// is idempotent: a key that was already claimed is a no-op returning false.
// Amounts must be positive; anything else is rejected.
func Award(data models.CurrencyData, amount int, txType models.TransactionType, description, uniqueID string, now time.Time) (models.CurrencyData, bool) {
	if amount <= 0 {
		return data, false
	}

	if uniqueID != "" {
		key := RewardKey(txType, uniqueID)
		if data.HasRewardKey(key) {
			return data, false
		}
		data.EarnedRewards = append(cloneStrings(data.EarnedRewards), key)
	}

	data.Balance += amount
	data.Transactions = prependTransaction(data.Transactions, models.Transaction{
		ID:          uuid.NewString(),
		Type:        txType,
		Amount:      amount,
		Description: description,
		Timestamp:   now,
		UniqueID:    uniqueID,
	})
	data.LastUpdated = now

	return data, true
}

// HasEarned reports whether the reward identified by type and uniqueID has
// been claimed. Calls without a uniqueID always report not-earned.
func HasEarned(data models.CurrencyData, txType models.TransactionType, uniqueID string) bool {
	if uniqueID == "" {
		return false
	}
	return data.HasRewardKey(RewardKey(txType, uniqueID))
}

// Debit subtracts amount from the balance and returns the new balance.
// It records no transaction: the caller pairs the debit with its own audit
// record so both are applied at the same call site.
func Debit(data models.CurrencyData, amount int) (models.CurrencyData, int, error) {
	if amount <= 0 {
		return data, data.Balance, fmt.Errorf("debit amount must be positive, got %d", amount)
	}
	if data.Balance < amount {
		return data, data.Balance, fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, data.Balance, amount)
	}

	data.Balance -= amount
	return data, data.Balance, nil
}

// AddTransaction appends an audit record without touching the balance.
func AddTransaction(data models.CurrencyData, txType models.TransactionType, amount int, description, uniqueID string, now time.Time) (models.CurrencyData, models.Transaction) {
	tx := models.Transaction{
		ID:          uuid.NewString(),
		Type:        txType,
		Amount:      amount,
		Description: description,
		Timestamp:   now,
		UniqueID:    uniqueID,
	}
	data.Transactions = prependTransaction(data.Transactions, tx)
	data.LastUpdated = now
	return data, tx
}

// RecentTransactions returns up to limit transactions, most recent first.
func RecentTransactions(data models.CurrencyData, limit int) []models.Transaction {
	if limit <= 0 || limit > len(data.Transactions) {
		limit = len(data.Transactions)
	}
	out := make([]models.Transaction, limit)
	copy(out, data.Transactions[:limit])
	return out
}

// CategoryEarnings summarizes all transactions of one type.
type CategoryEarnings struct {
	Total int
	Count int
}

// EarningsByCategory groups transaction totals by type.
func EarningsByCategory(data models.CurrencyData) map[models.TransactionType]CategoryEarnings {
	categories := make(map[models.TransactionType]CategoryEarnings)
	for _, tx := range data.Transactions {
		c := categories[tx.Type]
		c.Total += tx.Amount
		c.Count++
		categories[tx.Type] = c
	}
	return categories
}

// DailyEarnings sums transaction amounts per calendar day for the last
// `days` days, keyed by YYYY-MM-DD. Days without activity map to zero.
func DailyEarnings(data models.CurrencyData, days int, now time.Time) map[string]int {
	earnings := make(map[string]int, days)
	for i := 0; i < days; i++ {
		earnings[now.AddDate(0, 0, -i).Format("2006-01-02")] = 0
	}
	for _, tx := range data.Transactions {
		day := tx.Timestamp.Format("2006-01-02")
		if _, ok := earnings[day]; ok {
			earnings[day] += tx.Amount
		}
	}
	return earnings
}

// FormatAmount renders an amount with the currency symbol.
func FormatAmount(amount int) string {
	return fmt.Sprintf("%s %d", constants.CurrencySymbol, amount)
}

func prependTransaction(transactions []models.Transaction, tx models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions)+1)
	out = append(out, tx)
	out = append(out, transactions...)
	// Cap retention; the oldest records are shed silently.
	if len(out) > constants.MaxTransactions {
		out = out[:constants.MaxTransactions]
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
