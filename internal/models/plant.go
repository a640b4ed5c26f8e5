package models

import "time"

// Decoration is one owned plant decoration with its acquisition timestamp.
type Decoration struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Emoji       string    `json:"emoji"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// PlantState is the plant companion blob. Health is recomputed lazily from
// the timestamps below every time the state is read; there is no tick.
type PlantState struct {
	Size            float64      `json:"size" validate:"min=0"`
	Health          float64      `json:"health" validate:"min=0,max=100"`
	LastWatered     time.Time    `json:"last_watered"`
	LastFertilized  *time.Time   `json:"last_fertilized,omitempty"`
	Decorations     []Decoration `json:"decorations"`
	TotalWatering   int          `json:"total_watering"`
	TotalFertilizer int          `json:"total_fertilizer"`
	CreatedAt       time.Time    `json:"created_at"`
}

// OwnsDecoration reports whether a decoration with the given id is owned.
func (p PlantState) OwnsDecoration(id string) bool {
	for _, d := range p.Decorations {
		if d.ID == id {
			return true
		}
	}
	return false
}
