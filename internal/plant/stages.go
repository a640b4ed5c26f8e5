package plant

import (
	"math"
	"time"

	"github.com/rooted-app/rooted/internal/models"
)

// Stage is a named bucket over the continuous size value. Display-only:
// size itself is never capped.
type Stage struct {
	ID      string
	Name    string
	Emoji   string
	MinSize float64
	MaxSize float64
}

// MoodBucket is a named bucket over the continuous health value.
type MoodBucket struct {
	ID        string
	Name      string
	Emoji     string
	HealthMin float64
}

// Stages in ascending size order. The table tops out at 150 for naming only.
var Stages = []Stage{
	{ID: "seed", Name: "Seed", Emoji: "🌱", MinSize: 0, MaxSize: 10},
	{ID: "sprout", Name: "Sprout", Emoji: "🌿", MinSize: 11, MaxSize: 25},
	{ID: "sapling", Name: "Sapling", Emoji: "🌳", MinSize: 26, MaxSize: 50},
	{ID: "young", Name: "Young Tree", Emoji: "🌲", MinSize: 51, MaxSize: 75},
	{ID: "mature", Name: "Mature Tree", Emoji: "🌴", MinSize: 76, MaxSize: 100},
	{ID: "ancient", Name: "Ancient Tree", Emoji: "🎄", MinSize: 101, MaxSize: 150},
}

// Moods in descending health order so the first match wins.
var Moods = []MoodBucket{
	{ID: "thriving", Name: "Thriving", Emoji: "✨", HealthMin: 80},
	{ID: "happy", Name: "Happy", Emoji: "😊", HealthMin: 60},
	{ID: "content", Name: "Content", Emoji: "🙂", HealthMin: 40},
	{ID: "struggling", Name: "Struggling", Emoji: "😔", HealthMin: 20},
	{ID: "wilting", Name: "Wilting", Emoji: "🥀", HealthMin: 0},
}

// StageFor returns the named growth stage for a size. Sizes beyond the table
// stay at the final stage.
func StageFor(size float64) Stage {
	for _, s := range Stages {
		if size >= s.MinSize && size <= s.MaxSize {
			return s
		}
	}
	return Stages[len(Stages)-1]
}

// MoodFor returns the named mood for a health value.
func MoodFor(health float64) MoodBucket {
	for _, m := range Moods {
		if health >= m.HealthMin {
			return m
		}
	}
	return Moods[len(Moods)-1]
}

// Stats summarizes the plant for display.
type Stats struct {
	Stage         Stage
	Mood          MoodBucket
	AgeDays       int
	NextStageSize float64 // 0 when the final stage is reached
	Progress      int     // percent toward the next stage
}

// GetStats derives the display summary. Health decay is applied first so the
// mood reflects elapsed time.
func GetStats(state models.PlantState, now time.Time) Stats {
	state = UpdateHealth(state, now)

	stats := Stats{
		Stage:   StageFor(state.Size),
		Mood:    MoodFor(state.Health),
		AgeDays: int(now.Sub(state.CreatedAt).Hours() / 24),
	}

	for _, s := range Stages {
		if s.MinSize > state.Size {
			stats.NextStageSize = s.MinSize
			break
		}
	}

	if stats.NextStageSize == 0 {
		stats.Progress = 100
	} else {
		stats.Progress = int(math.Round(state.Size / stats.NextStageSize * 100))
	}
	return stats
}
