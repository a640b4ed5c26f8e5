package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rooted-app/rooted/internal/models"
	"github.com/rooted-app/rooted/internal/plant"
	_ "modernc.org/sqlite"
)

// schema is idempotent so opening an existing database is a no-op.
const schema = `
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	model_path TEXT NOT NULL,
	plant_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	day TEXT NOT NULL,
	time TEXT NOT NULL DEFAULT '',
	mood TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	sleep_hours REAL,
	exercise_minutes INTEGER,
	stress_data TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	text TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	completed_at TEXT
);

CREATE TABLE IF NOT EXISTS currency (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	balance INTEGER NOT NULL,
	last_updated TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	position INTEGER NOT NULL,
	id TEXT NOT NULL,
	type TEXT NOT NULL,
	amount INTEGER NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	timestamp TEXT NOT NULL,
	unique_id TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS earned_rewards (
	key TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS plant (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	size REAL NOT NULL,
	health REAL NOT NULL,
	last_watered TEXT NOT NULL,
	last_fertilized TEXT,
	decorations TEXT NOT NULL DEFAULT '[]',
	total_watering INTEGER NOT NULL DEFAULT 0,
	total_fertilizer INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS item_cooldowns (
	item_id TEXT PRIMARY KEY,
	last_used TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'rooted init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// The schema is idempotent; running it on load picks up tables added in
	// newer versions without a separate migration step.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	if s.db == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}

	var settings Settings
	err := s.db.QueryRow(`SELECT model_path, plant_name FROM settings WHERE id = 1`).
		Scan(&settings.ModelPath, &settings.PlantName)
	if err != nil {
		return Settings{}, fmt.Errorf("settings not found: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO settings (id, model_path, plant_name) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET model_path = excluded.model_path, plant_name = excluded.plant_name`,
		settings.ModelPath, settings.PlantName)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AddEntry(entry models.JournalEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var stressData any
	if entry.StressData != nil {
		encoded, err := json.Marshal(entry.StressData)
		if err != nil {
			return fmt.Errorf("failed to encode stress data: %w", err)
		}
		stressData = string(encoded)
	}

	_, err := s.db.Exec(`
		INSERT INTO entries (id, day, time, mood, notes, sleep_hours, exercise_minutes, stress_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Day, entry.Time, string(entry.Mood), entry.Notes,
		entry.SleepHours, entry.ExerciseMinutes, stressData,
		entry.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetEntry(id string) (models.JournalEntry, error) {
	if s.db == nil {
		return models.JournalEntry{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(`
		SELECT id, day, time, mood, notes, sleep_hours, exercise_minutes, stress_data, created_at
		FROM entries WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("entry not found: %s", id)
	}
	return entry, nil
}

// GetEntries returns the log most recent first (insertion order, newest on
// top, matching the JSON backend's prepend behavior).
func (s *SQLiteStore) GetEntries() ([]models.JournalEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, day, time, mood, notes, sleep_hours, exercise_minutes, stress_data, created_at
		FROM entries ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.JournalEntry, error) {
	var (
		entry      models.JournalEntry
		mood       string
		sleep      sql.NullFloat64
		exercise   sql.NullInt64
		stressData sql.NullString
		createdAt  string
	)
	if err := row.Scan(&entry.ID, &entry.Day, &entry.Time, &mood, &entry.Notes,
		&sleep, &exercise, &stressData, &createdAt); err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to scan entry: %w", err)
	}

	entry.Mood = models.Mood(mood)
	if sleep.Valid {
		entry.SleepHours = &sleep.Float64
	}
	if exercise.Valid {
		minutes := int(exercise.Int64)
		entry.ExerciseMinutes = &minutes
	}
	if stressData.Valid && stressData.String != "" {
		var sd models.StressData
		if err := json.Unmarshal([]byte(stressData.String), &sd); err != nil {
			return models.JournalEntry{}, fmt.Errorf("failed to decode stress data: %w", err)
		}
		entry.StressData = &sd
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		entry.CreatedAt = t
	}
	return entry, nil
}

func (s *SQLiteStore) AddGoal(goal models.Goal) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO goals (id, text, completed, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?)`,
		goal.ID, goal.Text, boolToInt(goal.Completed),
		goal.CreatedAt.Format(time.RFC3339), formatOptionalTime(goal.CompletedAt))
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetGoals() ([]models.Goal, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT id, text, completed, created_at, completed_at FROM goals ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		var (
			goal        models.Goal
			completed   int
			createdAt   string
			completedAt sql.NullString
		)
		if err := rows.Scan(&goal.ID, &goal.Text, &completed, &createdAt, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goal.Completed = completed != 0
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			goal.CreatedAt = t
		}
		goal.CompletedAt = parseOptionalTime(completedAt)
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (s *SQLiteStore) UpdateGoal(goal models.Goal) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(`UPDATE goals SET text = ?, completed = ?, completed_at = ? WHERE id = ?`,
		goal.Text, boolToInt(goal.Completed), formatOptionalTime(goal.CompletedAt), goal.ID)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("goal not found: %s", goal.ID)
	}
	return nil
}

func (s *SQLiteStore) GetCurrency() (models.CurrencyData, error) {
	if s.db == nil {
		return models.CurrencyData{}, fmt.Errorf("storage not loaded")
	}

	data := models.CurrencyData{
		Transactions:  []models.Transaction{},
		EarnedRewards: []string{},
	}

	var lastUpdated string
	err := s.db.QueryRow(`SELECT balance, last_updated FROM currency WHERE id = 1`).
		Scan(&data.Balance, &lastUpdated)
	if err == sql.ErrNoRows {
		// Never saved: an empty ledger.
		return data, nil
	}
	if err != nil {
		return models.CurrencyData{}, fmt.Errorf("failed to read currency: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, lastUpdated); err == nil {
		data.LastUpdated = t
	}

	rows, err := s.db.Query(`
		SELECT id, type, amount, description, timestamp, unique_id
		FROM transactions ORDER BY position ASC`)
	if err != nil {
		return models.CurrencyData{}, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			tx        models.Transaction
			txType    string
			timestamp string
		)
		if err := rows.Scan(&tx.ID, &txType, &tx.Amount, &tx.Description, &timestamp, &tx.UniqueID); err != nil {
			return models.CurrencyData{}, fmt.Errorf("failed to scan transaction: %w", err)
		}
		tx.Type = models.TransactionType(txType)
		if t, err := time.Parse(time.RFC3339, timestamp); err == nil {
			tx.Timestamp = t
		}
		data.Transactions = append(data.Transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return models.CurrencyData{}, err
	}

	keyRows, err := s.db.Query(`SELECT key FROM earned_rewards`)
	if err != nil {
		return models.CurrencyData{}, fmt.Errorf("failed to query earned rewards: %w", err)
	}
	defer keyRows.Close()

	for keyRows.Next() {
		var key string
		if err := keyRows.Scan(&key); err != nil {
			return models.CurrencyData{}, fmt.Errorf("failed to scan reward key: %w", err)
		}
		data.EarnedRewards = append(data.EarnedRewards, key)
	}
	return data, keyRows.Err()
}

// SaveCurrency rewrites the whole ledger blob: the snapshot model is
// last-writer-wins, so history and keys are replaced wholesale.
func (s *SQLiteStore) SaveCurrency(data models.CurrencyData) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO currency (id, balance, last_updated) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET balance = excluded.balance, last_updated = excluded.last_updated`,
		data.Balance, data.LastUpdated.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to save balance: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM transactions`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	for i, record := range data.Transactions {
		if _, err := tx.Exec(`
			INSERT INTO transactions (position, id, type, amount, description, timestamp, unique_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, record.ID, string(record.Type), record.Amount, record.Description,
			record.Timestamp.Format(time.RFC3339), record.UniqueID); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM earned_rewards`); err != nil {
		return fmt.Errorf("failed to clear earned rewards: %w", err)
	}
	for _, key := range data.EarnedRewards {
		if _, err := tx.Exec(`INSERT INTO earned_rewards (key) VALUES (?)`, key); err != nil {
			return fmt.Errorf("failed to insert reward key: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetPlant() (models.PlantState, error) {
	if s.db == nil {
		return models.PlantState{}, fmt.Errorf("storage not loaded")
	}

	var (
		state          models.PlantState
		lastWatered    string
		lastFertilized sql.NullString
		decorations    string
		createdAt      string
	)
	err := s.db.QueryRow(`
		SELECT size, health, last_watered, last_fertilized, decorations, total_watering, total_fertilizer, created_at
		FROM plant WHERE id = 1`).
		Scan(&state.Size, &state.Health, &lastWatered, &lastFertilized,
			&decorations, &state.TotalWatering, &state.TotalFertilizer, &createdAt)
	if err == sql.ErrNoRows {
		return plant.NewState(time.Now()), nil
	}
	if err != nil {
		return models.PlantState{}, fmt.Errorf("failed to read plant: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, lastWatered); err == nil {
		state.LastWatered = t
	}
	state.LastFertilized = parseOptionalTime(lastFertilized)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		state.CreatedAt = t
	}
	state.Decorations = []models.Decoration{}
	if err := json.Unmarshal([]byte(decorations), &state.Decorations); err != nil {
		return models.PlantState{}, fmt.Errorf("failed to decode decorations: %w", err)
	}
	return state, nil
}

func (s *SQLiteStore) SavePlant(state models.PlantState) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if state.Decorations == nil {
		state.Decorations = []models.Decoration{}
	}
	decorations, err := json.Marshal(state.Decorations)
	if err != nil {
		return fmt.Errorf("failed to encode decorations: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO plant (id, size, health, last_watered, last_fertilized, decorations, total_watering, total_fertilizer, created_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			size = excluded.size,
			health = excluded.health,
			last_watered = excluded.last_watered,
			last_fertilized = excluded.last_fertilized,
			decorations = excluded.decorations,
			total_watering = excluded.total_watering,
			total_fertilizer = excluded.total_fertilizer`,
		state.Size, state.Health, state.LastWatered.Format(time.RFC3339),
		formatOptionalTime(state.LastFertilized), string(decorations),
		state.TotalWatering, state.TotalFertilizer, state.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save plant: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetItemCooldowns() (map[string]time.Time, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT item_id, last_used FROM item_cooldowns`)
	if err != nil {
		return nil, fmt.Errorf("failed to query item cooldowns: %w", err)
	}
	defer rows.Close()

	cooldowns := make(map[string]time.Time)
	for rows.Next() {
		var itemID, lastUsed string
		if err := rows.Scan(&itemID, &lastUsed); err != nil {
			return nil, fmt.Errorf("failed to scan item cooldown: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, lastUsed); err == nil {
			cooldowns[itemID] = t
		}
	}
	return cooldowns, rows.Err()
}

func (s *SQLiteStore) SaveItemCooldowns(cooldowns map[string]time.Time) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM item_cooldowns`); err != nil {
		return fmt.Errorf("failed to clear item cooldowns: %w", err)
	}
	for itemID, lastUsed := range cooldowns {
		if _, err := tx.Exec(`INSERT INTO item_cooldowns (item_id, last_used) VALUES (?, ?)`,
			itemID, lastUsed.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("failed to insert item cooldown: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatOptionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

func parseOptionalTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
