package shop

import (
	"fmt"
	"time"

	"github.com/rooted-app/rooted/internal/ledger"
	"github.com/rooted-app/rooted/internal/models"
	"github.com/rooted-app/rooted/internal/plant"
)

// Result is the outcome of a successful purchase: the debited ledger with its
// audit record appended, the mutated plant, and refreshed cooldown markers.
type Result struct {
	Currency       models.CurrencyData
	Plant          models.PlantState
	Cooldowns      map[string]time.Time
	Item           Item
	RemainingCoins int
}

// CanPurchase checks affordability and item eligibility without mutating
// anything. The returned error carries a human-readable reason.
func CanPurchase(item Item, currency models.CurrencyData, state models.PlantState, cooldowns map[string]time.Time, now time.Time) error {
	if currency.Balance < item.Price {
		return fmt.Errorf("%w: have %d, need %d", ledger.ErrInsufficientBalance, currency.Balance, item.Price)
	}

	state = plant.UpdateHealth(state, now)

	if item.Type == TypeConsumable {
		switch item.ID {
		case "water":
			if now.Sub(state.LastWatered) < item.Cooldown {
				return fmt.Errorf("%w: plant was watered recently", plant.ErrActionOnCooldown)
			}
		case "fertilizer":
			if state.LastFertilized != nil && now.Sub(*state.LastFertilized) < item.Cooldown {
				return fmt.Errorf("%w: plant was fertilized recently", plant.ErrActionOnCooldown)
			}
		default:
			if lastUsed, ok := cooldowns[item.ID]; ok && now.Sub(lastUsed) < item.Cooldown {
				return fmt.Errorf("%w: %s used recently", plant.ErrActionOnCooldown, item.Name)
			}
		}
	}

	if item.Type == TypeDecoration && state.OwnsDecoration(item.ID) {
		return fmt.Errorf("%w: %s", plant.ErrAlreadyOwned, item.Name)
	}

	return nil
}

// Purchase validates eligibility fully, then debits the ledger, applies the
// item's plant effect, and records the purchase transaction. A failed
// purchase leaves every input untouched.
func Purchase(item Item, currency models.CurrencyData, state models.PlantState, cooldowns map[string]time.Time, now time.Time, roll plant.Roll) (Result, error) {
	if err := CanPurchase(item, currency, state, cooldowns, now); err != nil {
		return Result{}, err
	}

	currency, remaining, err := ledger.Debit(currency, item.Price)
	if err != nil {
		return Result{}, err
	}

	updatedCooldowns := cloneCooldowns(cooldowns)

	switch {
	case item.Type == TypeDecoration:
		state, err = plant.AddDecoration(state, item.ID, item.Name, item.Emoji, now)
		if err != nil {
			return Result{}, err
		}
	case item.ID == "water":
		state, err = plant.Water(state, now, roll)
		if err != nil {
			return Result{}, err
		}
	case item.ID == "fertilizer":
		state, err = plant.Fertilize(state, now, roll)
		if err != nil {
			return Result{}, err
		}
	case item.ID == "growth_potion":
		state = plant.ApplyGrowthPotion(state, now, roll)
		updatedCooldowns[item.ID] = now
	case item.ID == "healing_elixir":
		state = plant.ApplyHealingElixir(state, now, roll)
		updatedCooldowns[item.ID] = now
	default:
		return Result{}, fmt.Errorf("item %s has no purchase effect", item.ID)
	}

	currency, _ = ledger.AddTransaction(
		currency,
		models.TxPlantPurchase,
		-item.Price,
		fmt.Sprintf("Purchased %s", item.Name),
		item.ID,
		now,
	)

	return Result{
		Currency:       currency,
		Plant:          state,
		Cooldowns:      updatedCooldowns,
		Item:           item,
		RemainingCoins: remaining,
	}, nil
}

func cloneCooldowns(in map[string]time.Time) map[string]time.Time {
	out := make(map[string]time.Time, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
