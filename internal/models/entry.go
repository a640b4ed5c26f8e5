package models

import "time"

type Mood string

const (
	MoodStruggling Mood = "struggling"
	MoodLow        Mood = "low"
	MoodOkay       Mood = "okay"
	MoodGood       Mood = "good"
	MoodGreat      Mood = "great"
)

// Ordinal maps a mood onto the 1-5 scale used for trend averaging.
// Unknown moods map to 0 so they drag averages down instead of panicking.
func (m Mood) Ordinal() int {
	switch m {
	case MoodStruggling:
		return 1
	case MoodLow:
		return 2
	case MoodOkay:
		return 3
	case MoodGood:
		return 4
	case MoodGreat:
		return 5
	default:
		return 0
	}
}

// IsPositive reports whether the mood counts toward the positivity streak.
func (m Mood) IsPositive() bool {
	return m == MoodGood || m == MoodGreat
}

// StressInputs are the three self-rated sliders fed to the model.
type StressInputs struct {
	Stress     int `json:"stress" validate:"min=0,max=5"`
	Depression int `json:"depression" validate:"min=0,max=5"`
	Anxiety    int `json:"anxiety" validate:"min=0,max=5"`
}

// StressResult is the categorized output of one assessment.
// LifelongScore is string-encoded to three decimals, matching the stored format.
type StressResult struct {
	Percentage     int    `json:"percentage" validate:"min=0,max=100"`
	Category       string `json:"category"`
	Message        string `json:"message,omitempty"`
	LifelongScore  string `json:"lifelong_score"`
	RawModelOutput string `json:"raw_model_output,omitempty"`
	ManualRating   bool   `json:"manual_rating,omitempty"`
}

// StressData is attached to an entry at creation time and never mutated after.
type StressData struct {
	Inputs              StressInputs      `json:"inputs"`
	Result              StressResult      `json:"result"`
	ReflectionResponses map[string]string `json:"reflection_responses,omitempty"`
}

// HasReflections reports whether at least one reflection response is non-empty.
func (d *StressData) HasReflections() bool {
	if d == nil {
		return false
	}
	for _, resp := range d.ReflectionResponses {
		if resp != "" {
			return true
		}
	}
	return false
}

// JournalEntry is one mood-log record. Entries are immutable once created.
type JournalEntry struct {
	ID              string      `json:"id" validate:"required"`
	Day             string      `json:"day" validate:"required"` // YYYY-MM-DD format
	Time            string      `json:"time"`                    // HH:MM format
	Mood            Mood        `json:"mood" validate:"required,oneof=struggling low okay good great"`
	Notes           string      `json:"notes,omitempty"`
	SleepHours      *float64    `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24"`
	ExerciseMinutes *int        `json:"exercise_minutes,omitempty" validate:"omitempty,min=0"`
	StressData      *StressData `json:"stress_data,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// DayTime parses the entry's calendar day in the local timezone.
func (e JournalEntry) DayTime() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", e.Day, time.Local)
}

// HasAssessment reports whether a stress assessment was attached.
func (e JournalEntry) HasAssessment() bool {
	return e.StressData != nil
}
