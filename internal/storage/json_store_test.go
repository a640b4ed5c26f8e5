package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rooted-app/rooted/internal/models"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "rooted.json"))
	require.NoError(t, store.Init())
	require.NoError(t, store.Load())
	return store
}

func TestJSONStore_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "rooted.json")
	store := NewJSONStore(path)
	require.NoError(t, store.Init())

	_, err := os.Stat(path)
	assert.NoError(t, err)

	// Re-initializing an existing store is refused.
	assert.ErrorContains(t, NewJSONStore(path).Init(), "already initialized")
}

func TestJSONStore_LoadMissing(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "rooted.json"))
	assert.ErrorContains(t, store.Load(), "not initialized")
}

func TestJSONStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooted.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))
	assert.ErrorContains(t, NewJSONStore(path).Load(), "failed to parse")
}

func TestJSONStore_RequiresLoad(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "rooted.json"))
	require.NoError(t, store.Init())

	fresh := NewJSONStore(store.GetConfigPath())
	_, err := fresh.GetEntries()
	assert.ErrorContains(t, err, "storage not loaded")
	assert.ErrorContains(t, fresh.AddEntry(models.JournalEntry{}), "storage not loaded")
}

func TestJSONStore_DefaultSettings(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "model.json", settings.ModelPath)
	assert.Equal(t, "Sprout", settings.PlantName)

	settings.PlantName = "Fern"
	require.NoError(t, store.SaveSettings(settings))

	reloaded := NewJSONStore(store.GetConfigPath())
	require.NoError(t, reloaded.Load())
	got, err := reloaded.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "Fern", got.PlantName)
}

func TestJSONStore_EntriesMostRecentFirst(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []string{"first", "second", "third"} {
		require.NoError(t, store.AddEntry(models.JournalEntry{
			ID:        id,
			Day:       "2026-08-29",
			Mood:      models.MoodOkay,
			CreatedAt: testNow,
		}))
	}

	entries, err := store.GetEntries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].ID)
	assert.Equal(t, "first", entries[2].ID)
}

func TestJSONStore_GetEntry(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddEntry(models.JournalEntry{ID: "e1", Mood: models.MoodGood}))

	entry, err := store.GetEntry("e1")
	require.NoError(t, err)
	assert.Equal(t, models.MoodGood, entry.Mood)

	_, err = store.GetEntry("nope")
	assert.ErrorContains(t, err, "entry not found")
}

func TestJSONStore_EntryRoundTrip(t *testing.T) {
	store := newTestStore(t)

	sleep := 7.5
	exercise := 30
	entry := models.JournalEntry{
		ID:              "e1",
		Day:             "2026-08-29",
		Time:            "12:00",
		Mood:            models.MoodGreat,
		Notes:           "a good day",
		SleepHours:      &sleep,
		ExerciseMinutes: &exercise,
		StressData: &models.StressData{
			Inputs:              models.StressInputs{Stress: 1, Depression: 0, Anxiety: 2},
			Result:              models.StressResult{Percentage: 25, Category: "Low Anxiety (Thriving)"},
			ReflectionResponses: map[string]string{"contributing": "sunshine"},
		},
		CreatedAt: testNow,
	}
	require.NoError(t, store.AddEntry(entry))

	reloaded := NewJSONStore(store.GetConfigPath())
	require.NoError(t, reloaded.Load())
	got, err := reloaded.GetEntry("e1")
	require.NoError(t, err)

	assert.Equal(t, entry.Notes, got.Notes)
	require.NotNil(t, got.SleepHours)
	assert.Equal(t, 7.5, *got.SleepHours)
	require.NotNil(t, got.StressData)
	assert.Equal(t, 25, got.StressData.Result.Percentage)
	assert.Equal(t, "sunshine", got.StressData.ReflectionResponses["contributing"])
	assert.True(t, got.CreatedAt.Equal(testNow))
}

func TestJSONStore_Goals(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddGoal(models.Goal{ID: "g1", Text: "meditate daily", CreatedAt: testNow}))
	require.NoError(t, store.AddGoal(models.Goal{ID: "g2", Text: "walk more", CreatedAt: testNow}))

	goals, err := store.GetGoals()
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "g2", goals[0].ID)

	done := goals[1]
	done.Completed = true
	completedAt := testNow
	done.CompletedAt = &completedAt
	require.NoError(t, store.UpdateGoal(done))

	reloaded := NewJSONStore(store.GetConfigPath())
	require.NoError(t, reloaded.Load())
	got, err := reloaded.GetGoals()
	require.NoError(t, err)
	assert.True(t, got[1].Completed)
	require.NotNil(t, got[1].CompletedAt)

	assert.ErrorContains(t, store.UpdateGoal(models.Goal{ID: "ghost"}), "goal not found")
}

func TestJSONStore_CurrencyDefaultsEmpty(t *testing.T) {
	store := newTestStore(t)

	data, err := store.GetCurrency()
	require.NoError(t, err)
	assert.Equal(t, 0, data.Balance)
	assert.NotNil(t, data.Transactions)
	assert.NotNil(t, data.EarnedRewards)
}

func TestJSONStore_CurrencyRoundTrip(t *testing.T) {
	store := newTestStore(t)

	data := models.CurrencyData{
		Balance: 125,
		Transactions: []models.Transaction{
			{ID: "t1", Type: models.TxJournalEntry, Amount: 25, Description: "d", Timestamp: testNow},
		},
		EarnedRewards: []string{"journal_entry_e1"},
		LastUpdated:   testNow,
	}
	require.NoError(t, store.SaveCurrency(data))

	reloaded := NewJSONStore(store.GetConfigPath())
	require.NoError(t, reloaded.Load())
	got, err := reloaded.GetCurrency()
	require.NoError(t, err)
	assert.Equal(t, 125, got.Balance)
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, models.TxJournalEntry, got.Transactions[0].Type)
	assert.Equal(t, []string{"journal_entry_e1"}, got.EarnedRewards)
}

func TestJSONStore_PlantDefaultsToNewPlant(t *testing.T) {
	store := newTestStore(t)

	state, err := store.GetPlant()
	require.NoError(t, err)
	assert.Equal(t, 5.0, state.Size)
	assert.Equal(t, 100.0, state.Health)
}

func TestJSONStore_PlantRoundTrip(t *testing.T) {
	store := newTestStore(t)

	fertilized := testNow.Add(-2 * time.Hour)
	state := models.PlantState{
		Size:           42,
		Health:         77,
		LastWatered:    testNow,
		LastFertilized: &fertilized,
		CreatedAt:      testNow.AddDate(0, 0, -30),
		TotalWatering:  9,
		Decorations: []models.Decoration{
			{ID: "rainbow_pot", Name: "Rainbow Pot", Emoji: "🌈", PurchasedAt: testNow},
		},
	}
	require.NoError(t, store.SavePlant(state))

	reloaded := NewJSONStore(store.GetConfigPath())
	require.NoError(t, reloaded.Load())
	got, err := reloaded.GetPlant()
	require.NoError(t, err)
	assert.Equal(t, 42.0, got.Size)
	require.NotNil(t, got.LastFertilized)
	assert.True(t, got.LastFertilized.Equal(fertilized))
	require.Len(t, got.Decorations, 1)
	assert.Equal(t, "rainbow_pot", got.Decorations[0].ID)
}

func TestJSONStore_ItemCooldowns(t *testing.T) {
	store := newTestStore(t)

	cooldowns, err := store.GetItemCooldowns()
	require.NoError(t, err)
	assert.Empty(t, cooldowns)

	require.NoError(t, store.SaveItemCooldowns(map[string]time.Time{"growth_potion": testNow}))

	reloaded := NewJSONStore(store.GetConfigPath())
	require.NoError(t, reloaded.Load())
	got, err := reloaded.GetItemCooldowns()
	require.NoError(t, err)
	assert.True(t, got["growth_potion"].Equal(testNow))
}
