package storage

import (
	"time"

	"github.com/rooted-app/rooted/internal/models"
)

// Settings is the small persisted configuration blob.
type Settings struct {
	ModelPath string `json:"model_path"`
	PlantName string `json:"plant_name"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		ModelPath: "model.json",
		PlantName: "Sprout",
	}
}

// Provider is the persistence boundary. Reads of state that was never
// written return initialized defaults rather than errors; callers treat the
// store as a whole-blob key-value collaborator.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Entries: an append-only log, most recent first.
	AddEntry(models.JournalEntry) error
	GetEntry(id string) (models.JournalEntry, error)
	GetEntries() ([]models.JournalEntry, error)

	// Goals
	AddGoal(models.Goal) error
	GetGoals() ([]models.Goal, error)
	UpdateGoal(models.Goal) error

	// Currency ledger blob
	GetCurrency() (models.CurrencyData, error)
	SaveCurrency(models.CurrencyData) error

	// Plant companion blob
	GetPlant() (models.PlantState, error)
	SavePlant(models.PlantState) error

	// Per-item cooldown markers for special consumables
	GetItemCooldowns() (map[string]time.Time, error)
	SaveItemCooldowns(map[string]time.Time) error

	// Utils
	GetConfigPath() string
}
