package constants

import "time"

// Plant care tuning. Decay is computed lazily at read time, so these
// constants fully determine health behavior.
const (
	// WaterCooldown is the minimum gap between waterings.
	WaterCooldown = 6 * time.Hour
	// FertilizeCooldown is the minimum gap between fertilizer uses.
	FertilizeCooldown = 24 * time.Hour
	// DryGraceHours is how long the plant holds health without water.
	DryGraceHours = 24.0
	// DecayPerHour is health lost per hour past the grace window.
	DecayPerHour = 2.0
	// MaxDecay bounds a single decay application.
	MaxDecay = 50.0
	// FertilizerBonusWindow is how long fertilizer keeps boosting health.
	FertilizerBonusWindow = 48 * time.Hour
	// FertilizerBonus is the health boost while the window is active.
	FertilizerBonus = 20.0
)
