// Package plant implements the plant companion simulation: lazily decayed
// health, growth-stage bucketing, and cooldown-gated care actions.
//
// Time never ticks in the background; every function takes an explicit "now"
// and recomputes elapsed-time effects on the spot. Growth randomness comes
// from an injected roll in [0,1) so behavior stays deterministic under test.
package plant

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rooted-app/rooted/internal/constants"
	"github.com/rooted-app/rooted/internal/models"
)

var (
	// ErrActionOnCooldown indicates a care action attempted before its
	// cooldown window elapsed.
	ErrActionOnCooldown = errors.New("action on cooldown")
	// ErrAlreadyOwned indicates a decoration re-purchase.
	ErrAlreadyOwned = errors.New("decoration already owned")
)

// Roll produces a pseudo-random float in [0,1). Tests inject a fixed value.
type Roll func() float64

// DefaultRoll uses the shared math/rand source.
func DefaultRoll() float64 {
	return rand.Float64()
}

// NewState returns a freshly adopted plant: a small seed at full health.
func NewState(now time.Time) models.PlantState {
	return models.PlantState{
		Size:        5,
		Health:      100,
		LastWatered: now,
		Decorations: []models.Decoration{},
		CreatedAt:   now,
	}
}

// Health returns the current health after applying lazy time decay: the
// plant loses health past 24 dry hours and gains a bonus inside the 48-hour
// fertilizer window. The result is clamped to [0,100].
func Health(state models.PlantState, now time.Time) float64 {
	hoursDry := now.Sub(state.LastWatered).Hours()

	decay := 0.0
	if hoursDry > constants.DryGraceHours {
		decay = (hoursDry - constants.DryGraceHours) * constants.DecayPerHour
		if decay > constants.MaxDecay {
			decay = constants.MaxDecay
		}
	}

	bonus := 0.0
	if state.LastFertilized != nil && now.Sub(*state.LastFertilized) < constants.FertilizerBonusWindow {
		bonus = constants.FertilizerBonus
	}

	return clampHealth(state.Health - decay + bonus)
}

// UpdateHealth applies the lazy decay to the state. It must run before any
// care-action eligibility is evaluated.
func UpdateHealth(state models.PlantState, now time.Time) models.PlantState {
	state.Health = Health(state, now)
	return state
}

// Water waters the plant: +15 health and 1-3 growth, gated to once per six
// hours. The returned state already has decay applied.
func Water(state models.PlantState, now time.Time, roll Roll) (models.PlantState, error) {
	state = UpdateHealth(state, now)

	if since := now.Sub(state.LastWatered); since < constants.WaterCooldown {
		return state, fmt.Errorf("%w: plant was watered recently, wait %s before watering again",
			ErrActionOnCooldown, (constants.WaterCooldown - since).Round(time.Minute))
	}

	state.Health = clampHealth(state.Health + 15)
	state.Size += growth(roll, 1, 3)
	state.LastWatered = now
	state.TotalWatering++
	return state, nil
}

// Fertilize feeds the plant: +30 health and 3-8 growth, once per 24 hours.
func Fertilize(state models.PlantState, now time.Time, roll Roll) (models.PlantState, error) {
	state = UpdateHealth(state, now)

	if state.LastFertilized != nil {
		if since := now.Sub(*state.LastFertilized); since < constants.FertilizeCooldown {
			return state, fmt.Errorf("%w: plant was fertilized recently, wait %s before fertilizing again",
				ErrActionOnCooldown, (constants.FertilizeCooldown - since).Round(time.Minute))
		}
	}

	state.Health = clampHealth(state.Health + 30)
	state.Size += growth(roll, 3, 8)
	fertilizedAt := now
	state.LastFertilized = &fertilizedAt
	state.TotalFertilizer++
	return state, nil
}

// AddDecoration attaches a purchased decoration. Decorations are additive:
// no stacking, no removal.
func AddDecoration(state models.PlantState, id, name, emoji string, now time.Time) (models.PlantState, error) {
	if state.OwnsDecoration(id) {
		return state, fmt.Errorf("%w: %s", ErrAlreadyOwned, name)
	}

	decorations := make([]models.Decoration, 0, len(state.Decorations)+1)
	decorations = append(decorations, state.Decorations...)
	decorations = append(decorations, models.Decoration{
		ID:          id,
		Name:        name,
		Emoji:       emoji,
		PurchasedAt: now,
	})
	state.Decorations = decorations
	return state, nil
}

// ApplyGrowthPotion applies the growth potion effect: +50 health and 10-15
// growth. Cooldown gating lives with the caller's per-item cooldown records.
func ApplyGrowthPotion(state models.PlantState, now time.Time, roll Roll) models.PlantState {
	state = UpdateHealth(state, now)
	state.Health = clampHealth(state.Health + 50)
	state.Size += growth(roll, 10, 15)
	return state
}

// ApplyHealingElixir restores health to exactly 100 and adds 2-4 growth.
func ApplyHealingElixir(state models.PlantState, now time.Time, roll Roll) models.PlantState {
	state = UpdateHealth(state, now)
	state.Health = 100
	state.Size += growth(roll, 2, 4)
	return state
}

func growth(roll Roll, min, max float64) float64 {
	return roll()*(max-min) + min
}

func clampHealth(h float64) float64 {
	if h < 0 {
		return 0
	}
	if h > 100 {
		return 100
	}
	return h
}
