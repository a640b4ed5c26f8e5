// Package badges maps the achievement snapshot, entry log, and plant state
// onto the fixed badge catalog. Earned-ness is recomputed fresh on every
// evaluation; a badge can un-earn when the underlying counter regresses.
// Only the one-time currency reward persists, guarded by the ledger's
// reward keys.
package badges

import (
	"time"

	"github.com/rooted-app/rooted/internal/achievements"
	"github.com/rooted-app/rooted/internal/ledger"
	"github.com/rooted-app/rooted/internal/models"
	"github.com/rooted-app/rooted/internal/plant"
)

// Badge is one evaluated catalog entry.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
	Earned      bool
}

type definition struct {
	id          string
	name        string
	description string
	icon        string
	color       string
	condition   func(snap achievements.Snapshot, entries []models.JournalEntry, state models.PlantState, now time.Time) bool
}

var catalog = []definition{
	// Exercise
	{
		id: "exercise-starter", name: "Exercise Starter",
		description: "Log your first workout", icon: "🏃", color: "green",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.ExerciseTotal >= 1
		},
	},
	{
		id: "exercise-warrior", name: "Exercise Warrior",
		description: "7-day exercise streak", icon: "💪", color: "orange",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.ExerciseStreak >= 7
		},
	},
	{
		id: "fitness-champion", name: "Fitness Champion",
		description: "30 days of exercise logged", icon: "🏆", color: "yellow",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.ExerciseTotal >= 30
		},
	},

	// Sleep
	{
		id: "sleep-conscious", name: "Sleep Conscious",
		description: "Track your first good night's sleep", icon: "😴", color: "blue",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.GoodSleepCount >= 1
		},
	},
	{
		id: "sleep-master", name: "Sleep Master",
		description: "7 consecutive nights of healthy sleep", icon: "🌙", color: "indigo",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.SleepStreak >= 7
		},
	},
	{
		id: "dream-keeper", name: "Dream Keeper",
		description: "30 nights of quality sleep", icon: "✨", color: "purple",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.GoodSleepCount >= 30
		},
	},

	// Stress & anxiety
	{
		id: "stress-aware", name: "Stress Aware",
		description: "Complete your first stress assessment", icon: "🧠", color: "teal",
		condition: func(_ achievements.Snapshot, entries []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			for _, e := range entries {
				if e.HasAssessment() {
					return true
				}
			}
			return false
		},
	},
	{
		id: "anxiety-reducer", name: "Anxiety Reducer",
		description: "Improve stress levels by 10%", icon: "🌱", color: "emerald",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.StressImprovement >= 10
		},
	},
	{
		id: "zen-master", name: "Zen Master",
		description: "Achieve 80%+ average wellness score", icon: "🧘", color: "cyan",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.WellnessScore >= 80
		},
	},

	// Journal & reflection
	{
		id: "journal-rookie", name: "Journal Rookie",
		description: "Write your first journal entry", icon: "📝", color: "pink",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.TotalEntries >= 1
		},
	},
	{
		id: "reflection-enthusiast", name: "Reflection Enthusiast",
		description: "Complete 10 reflection sessions", icon: "💭", color: "rose",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.ReflectionCount >= 10
		},
	},
	{
		id: "consistent-chronicler", name: "Consistent Chronicler",
		description: "14-day journaling streak", icon: "📚", color: "amber",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.JournalStreak >= 14
		},
	},

	// Mood & positivity
	{
		id: "positivity-spark", name: "Positivity Spark",
		description: "Log 3 consecutive positive moods", icon: "😊", color: "lime",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.PositivityStreak >= 3
		},
	},
	{
		id: "mood-booster", name: "Mood Booster",
		description: "Improve mood trend by 1 point", icon: "📈", color: "sky",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.MoodImprovement >= 1
		},
	},
	{
		id: "consistency-king", name: "Consistency King",
		description: "Maintain 80% journal consistency", icon: "👑", color: "violet",
		condition: func(s achievements.Snapshot, _ []models.JournalEntry, _ models.PlantState, _ time.Time) bool {
			return s.ConsistencyScore >= 80
		},
	},

	// Plant companion
	{
		id: "plant-parent", name: "Plant Parent",
		description: "Adopt your first plant companion", icon: "🪴", color: "green",
		condition: func(_ achievements.Snapshot, _ []models.JournalEntry, p models.PlantState, _ time.Time) bool {
			return p.Size >= 1
		},
	},
	{
		id: "green-thumb", name: "Green Thumb",
		description: "Water your plant 10 times", icon: "💧", color: "cyan",
		condition: func(_ achievements.Snapshot, _ []models.JournalEntry, p models.PlantState, _ time.Time) bool {
			return p.TotalWatering >= 10
		},
	},
	{
		id: "dedicated-gardener", name: "Dedicated Gardener",
		description: "Fertilize your plant 5 times", icon: "🌰", color: "amber",
		condition: func(_ achievements.Snapshot, _ []models.JournalEntry, p models.PlantState, _ time.Time) bool {
			return p.TotalFertilizer >= 5
		},
	},
	{
		id: "decorator", name: "Plant Decorator",
		description: "Buy 3 decorations for your plant", icon: "🎨", color: "pink",
		condition: func(_ achievements.Snapshot, _ []models.JournalEntry, p models.PlantState, _ time.Time) bool {
			return len(p.Decorations) >= 3
		},
	},
	{
		id: "tree-hugger", name: "Tree Hugger",
		description: "Grow your plant to tree stage", icon: "🌳", color: "emerald",
		condition: func(_ achievements.Snapshot, _ []models.JournalEntry, p models.PlantState, _ time.Time) bool {
			return p.Size >= 26
		},
	},
	{
		id: "plant-whisperer", name: "Plant Whisperer",
		description: "Keep your plant healthy for 7 days", icon: "🌿", color: "green",
		condition: func(_ achievements.Snapshot, _ []models.JournalEntry, p models.PlantState, now time.Time) bool {
			return p.Health >= 80 && now.Sub(p.CreatedAt) >= 7*24*time.Hour
		},
	},
	{
		id: "ancient-keeper", name: "Ancient Keeper",
		description: "Raise your plant to ancient tree status", icon: "🎄", color: "purple",
		condition: func(_ achievements.Snapshot, _ []models.JournalEntry, p models.PlantState, _ time.Time) bool {
			return p.Size >= 101
		},
	},
}

// Evaluate returns the full catalog with fresh Earned flags. Plant health
// decay is applied before plant conditions are checked.
func Evaluate(snap achievements.Snapshot, entries []models.JournalEntry, state models.PlantState, now time.Time) []Badge {
	state = plant.UpdateHealth(state, now)

	out := make([]Badge, 0, len(catalog))
	for _, def := range catalog {
		out = append(out, Badge{
			ID:          def.id,
			Name:        def.name,
			Description: def.description,
			Icon:        def.icon,
			Color:       def.color,
			Earned:      def.condition(snap, entries, state, now),
		})
	}
	return out
}

// AwardNewlyEarned grants the one-time badge reward for every earned badge
// whose reward key has not been claimed yet. Repeat passes over the same
// state grant nothing.
func AwardNewlyEarned(data models.CurrencyData, evaluated []Badge, now time.Time) (models.CurrencyData, []Badge) {
	var awarded []Badge
	for _, b := range evaluated {
		if !b.Earned {
			continue
		}
		var granted bool
		data, granted = ledger.AwardBadgeEarned(data, b.ID, b.Name, now)
		if granted {
			awarded = append(awarded, b)
		}
	}
	return data, awarded
}
