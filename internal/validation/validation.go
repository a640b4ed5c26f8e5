// Package validation checks stored records for corruption and internal
// inconsistencies. Field-level rules come from struct tags; cross-record
// rules (duplicate IDs, ledger drift) are checked here directly.
package validation

import (
	"fmt"
	"time"

	playground "github.com/go-playground/validator/v10"

	"github.com/rooted-app/rooted/internal/models"
	"github.com/rooted-app/rooted/internal/shop"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidField      ConflictType = "invalid_field"
	ConflictDuplicateID       ConflictType = "duplicate_id"
	ConflictInvalidDateTime   ConflictType = "invalid_datetime"
	ConflictNegativeBalance   ConflictType = "negative_balance"
	ConflictLedgerDrift       ConflictType = "ledger_drift"
	ConflictUnknownItem       ConflictType = "unknown_item"
	ConflictPlantOutOfRange   ConflictType = "plant_out_of_range"
	ConflictDanglingRewardKey ConflictType = "dangling_reward_key"
	ConflictGoalStateMismatch ConflictType = "goal_state_mismatch"
)

// Conflict represents a detected problem in stored records
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // record IDs or keys involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates stored records for conflicts
type Validator struct {
	fields *playground.Validate
}

// New creates a new Validator
func New() *Validator {
	return &Validator{
		fields: playground.New(),
	}
}

// ValidateEntries checks journal entries for field errors, duplicate IDs,
// and unparseable days.
func (v *Validator) ValidateEntries(entries []models.JournalEntry) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seen := make(map[string][]int)
	for i, entry := range entries {
		if entry.ID != "" {
			seen[entry.ID] = append(seen[entry.ID], i)
		}

		if err := v.fields.Struct(entry); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidField,
				Description: fmt.Sprintf("Entry %s failed field validation: %v", describeEntry(entry), err),
				Items:       []string{entry.ID},
			})
		}

		if entry.Day != "" {
			if _, err := time.ParseInLocation("2006-01-02", entry.Day, time.Local); err != nil {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidDateTime,
					Description: fmt.Sprintf("Entry %s has unparseable day %q", describeEntry(entry), entry.Day),
					Items:       []string{entry.ID},
				})
			}
		}

		if entry.Time != "" {
			if _, err := time.Parse("15:04", entry.Time); err != nil {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidDateTime,
					Description: fmt.Sprintf("Entry %s has unparseable time %q", describeEntry(entry), entry.Time),
					Items:       []string{entry.ID},
				})
			}
		}

		if entry.HasAssessment() {
			if err := v.fields.Struct(entry.StressData.Inputs); err != nil {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidField,
					Description: fmt.Sprintf("Entry %s has assessment inputs out of range: %v", describeEntry(entry), err),
					Items:       []string{entry.ID},
				})
			}
		}
	}

	for id, indexes := range seen {
		if len(indexes) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("Duplicate entry ID %q appears %d times", id, len(indexes)),
				Items:       []string{id},
			})
		}
	}

	return result
}

// ValidateGoals checks goals for duplicate IDs and completion-state drift
// (completed without a timestamp, or vice versa).
func (v *Validator) ValidateGoals(goals []models.Goal) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seen := make(map[string]int)
	for _, goal := range goals {
		if goal.ID != "" {
			seen[goal.ID]++
		}

		if goal.Text == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidField,
				Description: fmt.Sprintf("Goal %s has empty text", goal.ID),
				Items:       []string{goal.ID},
			})
		}

		if goal.Completed && goal.CompletedAt == nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictGoalStateMismatch,
				Description: fmt.Sprintf("Goal %s is completed but has no completion timestamp", goal.ID),
				Items:       []string{goal.ID},
			})
		}
		if !goal.Completed && goal.CompletedAt != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictGoalStateMismatch,
				Description: fmt.Sprintf("Goal %s has a completion timestamp but is not completed", goal.ID),
				Items:       []string{goal.ID},
			})
		}
	}

	for id, count := range seen {
		if count > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("Duplicate goal ID %q appears %d times", id, count),
				Items:       []string{id},
			})
		}
	}

	return result
}

// ValidateCurrency checks the ledger blob: non-negative balance, transaction
// history consistent with the balance, and no duplicate reward keys.
// Balance drift is reported, not fixed; the transaction log is capped so an
// old ledger legitimately sums to less than the balance. Drift is only
// flagged when the full history is present.
func (v *Validator) ValidateCurrency(data models.CurrencyData, maxTransactions int) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if data.Balance < 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictNegativeBalance,
			Description: fmt.Sprintf("Ledger balance is negative: %d", data.Balance),
		})
	}

	if len(data.Transactions) < maxTransactions {
		sum := 0
		for _, tx := range data.Transactions {
			sum += tx.Amount
		}
		if sum != data.Balance {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictLedgerDrift,
				Description: fmt.Sprintf("Transaction history sums to %d but balance is %d", sum, data.Balance),
			})
		}
	}

	seenKeys := make(map[string]int)
	for _, key := range data.EarnedRewards {
		seenKeys[key]++
	}
	for key, count := range seenKeys {
		if count > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDanglingRewardKey,
				Description: fmt.Sprintf("Reward key %q recorded %d times", key, count),
				Items:       []string{key},
			})
		}
	}

	return result
}

// ValidatePlant checks the plant blob for out-of-range values and
// decorations that don't exist in the shop catalog.
func (v *Validator) ValidatePlant(state models.PlantState) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if state.Health < 0 || state.Health > 100 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictPlantOutOfRange,
			Description: fmt.Sprintf("Plant health %.1f is outside 0-100", state.Health),
		})
	}
	if state.Size < 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictPlantOutOfRange,
			Description: fmt.Sprintf("Plant size %.1f is negative", state.Size),
		})
	}

	seen := make(map[string]int)
	for _, deco := range state.Decorations {
		seen[deco.ID]++
		if _, err := shop.FindItem(deco.ID); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownItem,
				Description: fmt.Sprintf("Plant owns unknown decoration %q", deco.ID),
				Items:       []string{deco.ID},
			})
		}
	}
	for id, count := range seen {
		if count > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("Decoration %q owned %d times", id, count),
				Items:       []string{id},
			})
		}
	}

	return result
}

// ValidateItemCooldowns flags cooldown markers for items that no longer
// exist in the catalog and markers stamped in the future.
func (v *Validator) ValidateItemCooldowns(cooldowns map[string]time.Time, now time.Time) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	for itemID, lastUsed := range cooldowns {
		if _, err := shop.FindItem(itemID); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownItem,
				Description: fmt.Sprintf("Cooldown recorded for unknown item %q", itemID),
				Items:       []string{itemID},
			})
		}
		if lastUsed.After(now) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Cooldown for %q is stamped in the future (%s)", itemID, lastUsed.Format(time.RFC3339)),
				Items:       []string{itemID},
			})
		}
	}

	return result
}

func describeEntry(entry models.JournalEntry) string {
	if entry.ID == "" {
		return "(no id)"
	}
	return entry.ID
}
