package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rooted-app/rooted/internal/models"
	"github.com/rooted-app/rooted/internal/plant"
)

// Store is the whole persisted document for the JSON backend.
type Store struct {
	Version       int                   `json:"version"`
	Settings      Settings              `json:"settings"`
	Entries       []models.JournalEntry `json:"entries"`
	Goals         []models.Goal         `json:"goals"`
	Currency      *models.CurrencyData  `json:"currency,omitempty"`
	Plant         *models.PlantState    `json:"plant,omitempty"`
	ItemCooldowns map[string]time.Time  `json:"item_cooldowns,omitempty"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: DefaultSettings(),
		Entries:  []models.JournalEntry{},
		Goals:    []models.Goal{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'rooted init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure slices are initialized
	if s.store.Entries == nil {
		s.store.Entries = []models.JournalEntry{}
	}
	if s.store.Goals == nil {
		s.store.Goals = []models.Goal{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

// AddEntry prepends the entry: the log is kept most-recent-first.
func (s *JSONStore) AddEntry(entry models.JournalEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	entries := make([]models.JournalEntry, 0, len(s.store.Entries)+1)
	entries = append(entries, entry)
	entries = append(entries, s.store.Entries...)
	s.store.Entries = entries
	return s.save()
}

func (s *JSONStore) GetEntry(id string) (models.JournalEntry, error) {
	if s.store == nil {
		return models.JournalEntry{}, fmt.Errorf("storage not loaded")
	}

	for _, e := range s.store.Entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.JournalEntry{}, fmt.Errorf("entry not found: %s", id)
}

func (s *JSONStore) GetEntries() ([]models.JournalEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.JournalEntry, len(s.store.Entries))
	copy(entries, s.store.Entries)
	return entries, nil
}

func (s *JSONStore) AddGoal(goal models.Goal) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	goals := make([]models.Goal, 0, len(s.store.Goals)+1)
	goals = append(goals, goal)
	goals = append(goals, s.store.Goals...)
	s.store.Goals = goals
	return s.save()
}

func (s *JSONStore) GetGoals() ([]models.Goal, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	goals := make([]models.Goal, len(s.store.Goals))
	copy(goals, s.store.Goals)
	return goals, nil
}

func (s *JSONStore) UpdateGoal(goal models.Goal) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, g := range s.store.Goals {
		if g.ID == goal.ID {
			s.store.Goals[i] = goal
			return s.save()
		}
	}
	return fmt.Errorf("goal not found: %s", goal.ID)
}

// GetCurrency returns the ledger blob, or an empty ledger when none was
// ever saved.
func (s *JSONStore) GetCurrency() (models.CurrencyData, error) {
	if s.store == nil {
		return models.CurrencyData{}, fmt.Errorf("storage not loaded")
	}

	if s.store.Currency == nil {
		return models.CurrencyData{
			Transactions:  []models.Transaction{},
			EarnedRewards: []string{},
		}, nil
	}
	return *s.store.Currency, nil
}

func (s *JSONStore) SaveCurrency(data models.CurrencyData) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Currency = &data
	return s.save()
}

// GetPlant returns the plant blob, or a freshly adopted plant when none was
// ever saved.
func (s *JSONStore) GetPlant() (models.PlantState, error) {
	if s.store == nil {
		return models.PlantState{}, fmt.Errorf("storage not loaded")
	}

	if s.store.Plant == nil {
		return plant.NewState(time.Now()), nil
	}
	return *s.store.Plant, nil
}

func (s *JSONStore) SavePlant(state models.PlantState) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Plant = &state
	return s.save()
}

func (s *JSONStore) GetItemCooldowns() (map[string]time.Time, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	cooldowns := make(map[string]time.Time, len(s.store.ItemCooldowns))
	for k, v := range s.store.ItemCooldowns {
		cooldowns[k] = v
	}
	return cooldowns, nil
}

func (s *JSONStore) SaveItemCooldowns(cooldowns map[string]time.Time) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.ItemCooldowns = cooldowns
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
