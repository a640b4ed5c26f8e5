package shop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rooted-app/rooted/internal/ledger"
	"github.com/rooted-app/rooted/internal/models"
	"github.com/rooted-app/rooted/internal/plant"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func fixedRoll(v float64) plant.Roll {
	return func() float64 { return v }
}

func richLedger(balance int) models.CurrencyData {
	return models.CurrencyData{
		Balance:       balance,
		Transactions:  []models.Transaction{},
		EarnedRewards: []string{},
	}
}

func thirstyPlant() models.PlantState {
	state := plant.NewState(testNow.Add(-8 * time.Hour))
	return state
}

func TestCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range Catalog {
		assert.False(t, seen[item.ID], "duplicate item id %s", item.ID)
		seen[item.ID] = true
		assert.Greater(t, item.Price, 0, "item %s", item.ID)
		if item.Type == TypeDecoration {
			assert.Zero(t, item.Cooldown, "decorations have no cooldown: %s", item.ID)
		}
	}
	assert.Len(t, Catalog, 11)
}

func TestFindItem(t *testing.T) {
	item, err := FindItem("water")
	require.NoError(t, err)
	assert.Equal(t, 25, item.Price)
	assert.Equal(t, 6*time.Hour, item.Cooldown)

	_, err = FindItem("unobtainium")
	assert.Error(t, err)
}

func TestItemsByCategory(t *testing.T) {
	assert.Len(t, ItemsByCategory(CategoryCare), 2)
	assert.Len(t, ItemsByCategory(CategoryDecorations), 7)
	assert.Len(t, ItemsByCategory(CategorySpecial), 2)
}

func TestCanPurchase_InsufficientBalance(t *testing.T) {
	water, _ := FindItem("water")
	err := CanPurchase(water, richLedger(10), thirstyPlant(), nil, testNow)
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
}

func TestCanPurchase_WaterCooldown(t *testing.T) {
	water, _ := FindItem("water")
	recentlyWatered := plant.NewState(testNow.Add(-time.Hour))

	err := CanPurchase(water, richLedger(100), recentlyWatered, nil, testNow)
	assert.ErrorIs(t, err, plant.ErrActionOnCooldown)

	assert.NoError(t, CanPurchase(water, richLedger(100), thirstyPlant(), nil, testNow))
}

func TestCanPurchase_BalanceCheckedBeforeCooldown(t *testing.T) {
	water, _ := FindItem("water")
	recentlyWatered := plant.NewState(testNow.Add(-time.Hour))

	err := CanPurchase(water, richLedger(0), recentlyWatered, nil, testNow)
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
}

func TestCanPurchase_SpecialItemCooldown(t *testing.T) {
	potion, _ := FindItem("growth_potion")
	cooldowns := map[string]time.Time{"growth_potion": testNow.Add(-10 * time.Hour)}

	err := CanPurchase(potion, richLedger(1000), thirstyPlant(), cooldowns, testNow)
	assert.ErrorIs(t, err, plant.ErrActionOnCooldown)

	expired := map[string]time.Time{"growth_potion": testNow.Add(-49 * time.Hour)}
	assert.NoError(t, CanPurchase(potion, richLedger(1000), thirstyPlant(), expired, testNow))
}

func TestCanPurchase_DecorationOwnership(t *testing.T) {
	pot, _ := FindItem("rainbow_pot")
	state := thirstyPlant()
	state.Decorations = []models.Decoration{{ID: "rainbow_pot"}}

	err := CanPurchase(pot, richLedger(1000), state, nil, testNow)
	assert.ErrorIs(t, err, plant.ErrAlreadyOwned)
}

func TestPurchase_Water(t *testing.T) {
	water, _ := FindItem("water")
	state := thirstyPlant()

	result, err := Purchase(water, richLedger(100), state, nil, testNow, fixedRoll(0))
	require.NoError(t, err)

	assert.Equal(t, 75, result.Currency.Balance)
	assert.Equal(t, 75, result.RemainingCoins)
	assert.Equal(t, 1, result.Plant.TotalWatering)
	assert.Equal(t, testNow, result.Plant.LastWatered)

	// Exactly one audit record: the purchase, negative amount.
	require.Len(t, result.Currency.Transactions, 1)
	tx := result.Currency.Transactions[0]
	assert.Equal(t, models.TxPlantPurchase, tx.Type)
	assert.Equal(t, -25, tx.Amount)
	assert.Equal(t, "water", tx.UniqueID)
	assert.Equal(t, "Purchased Fresh Water", tx.Description)
}

func TestPurchase_Decoration(t *testing.T) {
	pot, _ := FindItem("golden_pot")

	result, err := Purchase(pot, richLedger(500), thirstyPlant(), nil, testNow, fixedRoll(0))
	require.NoError(t, err)

	assert.Equal(t, 200, result.RemainingCoins)
	require.Len(t, result.Plant.Decorations, 1)
	assert.Equal(t, "golden_pot", result.Plant.Decorations[0].ID)
	assert.Equal(t, "Golden Pot", result.Plant.Decorations[0].Name)
}

func TestPurchase_GrowthPotionStampsCooldown(t *testing.T) {
	potion, _ := FindItem("growth_potion")

	result, err := Purchase(potion, richLedger(1100), thirstyPlant(), nil, testNow, fixedRoll(0))
	require.NoError(t, err)

	assert.Equal(t, testNow, result.Cooldowns["growth_potion"])
	assert.InDelta(t, 15.0, result.Plant.Size, 0.001) // 5 + 10

	// Immediate repurchase is gated by the fresh stamp.
	_, err = Purchase(potion, result.Currency, result.Plant, result.Cooldowns, testNow.Add(time.Hour), fixedRoll(0))
	assert.ErrorIs(t, err, plant.ErrActionOnCooldown)
}

func TestPurchase_HealingElixir(t *testing.T) {
	elixir, _ := FindItem("healing_elixir")
	state := thirstyPlant()
	state.Health = 20

	result, err := Purchase(elixir, richLedger(300), state, nil, testNow, fixedRoll(0))
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Plant.Health)
	assert.Equal(t, testNow, result.Cooldowns["healing_elixir"])
}

func TestPurchase_FailureLeavesInputsUntouched(t *testing.T) {
	water, _ := FindItem("water")
	currency := richLedger(10)
	state := thirstyPlant()

	_, err := Purchase(water, currency, state, nil, testNow, fixedRoll(0))
	require.Error(t, err)

	assert.Equal(t, 10, currency.Balance)
	assert.Equal(t, 0, state.TotalWatering)
}

func TestPurchase_DoesNotMutateCooldownMap(t *testing.T) {
	potion, _ := FindItem("growth_potion")
	cooldowns := map[string]time.Time{"healing_elixir": testNow.Add(-time.Hour)}

	result, err := Purchase(potion, richLedger(600), thirstyPlant(), cooldowns, testNow, fixedRoll(0))
	require.NoError(t, err)

	_, stamped := cooldowns["growth_potion"]
	assert.False(t, stamped, "input map must not be mutated")
	assert.Equal(t, testNow, result.Cooldowns["growth_potion"])
	assert.Contains(t, result.Cooldowns, "healing_elixir")
}
