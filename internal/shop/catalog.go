// Package shop holds the static item catalog and the purchase orchestrator
// that ties the ledger and plant simulation together.
package shop

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryCare        Category = "care"
	CategoryDecorations Category = "decorations"
	CategorySpecial     Category = "special"
)

type ItemType string

const (
	TypeConsumable ItemType = "consumable"
	TypeDecoration ItemType = "decoration"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Effects describes what a consumable does to the plant. HealthFull means
// health is set to 100 outright instead of adding HealthDelta.
type Effects struct {
	HealthDelta float64
	HealthFull  bool
	GrowthMin   float64
	GrowthMax   float64
}

// Item is one immutable catalog entry.
type Item struct {
	ID          string
	Name        string
	Description string
	Emoji       string
	Price       int
	Category    Category
	Type        ItemType
	Cooldown    time.Duration
	Effects     Effects
	Rarity      Rarity
}

// Catalog is the fixed shop inventory, in display order.
var Catalog = []Item{
	{
		ID:          "water",
		Name:        "Fresh Water",
		Description: "Refreshing water to keep your plant healthy. Restores 15 health and grows the plant.",
		Emoji:       "💧",
		Price:       25,
		Category:    CategoryCare,
		Type:        TypeConsumable,
		Cooldown:    6 * time.Hour,
		Effects:     Effects{HealthDelta: 15, GrowthMin: 1, GrowthMax: 3},
	},
	{
		ID:          "fertilizer",
		Name:        "Plant Fertilizer",
		Description: "Nutrient-rich fertilizer for rapid growth. Restores 30 health and significant growth boost.",
		Emoji:       "🌰",
		Price:       75,
		Category:    CategoryCare,
		Type:        TypeConsumable,
		Cooldown:    24 * time.Hour,
		Effects:     Effects{HealthDelta: 30, GrowthMin: 3, GrowthMax: 8},
	},
	{
		ID:          "rainbow_pot",
		Name:        "Rainbow Pot",
		Description: "A beautiful rainbow-colored pot that makes your plant extra cheerful!",
		Emoji:       "🌈",
		Price:       150,
		Category:    CategoryDecorations,
		Type:        TypeDecoration,
		Rarity:      RarityCommon,
	},
	{
		ID:          "golden_pot",
		Name:        "Golden Pot",
		Description: "An elegant golden pot fit for royalty. Shows off your plant in style.",
		Emoji:       "✨",
		Price:       300,
		Category:    CategoryDecorations,
		Type:        TypeDecoration,
		Rarity:      RarityRare,
	},
	{
		ID:          "flower_crown",
		Name:        "Flower Crown",
		Description: "A delicate crown of flowers to make your plant feel special.",
		Emoji:       "🌸",
		Price:       200,
		Category:    CategoryDecorations,
		Type:        TypeDecoration,
		Rarity:      RarityCommon,
	},
	{
		ID:          "butterfly_friend",
		Name:        "Butterfly Friend",
		Description: "A colorful butterfly companion that loves to visit your plant.",
		Emoji:       "🦋",
		Price:       250,
		Category:    CategoryDecorations,
		Type:        TypeDecoration,
		Rarity:      RarityUncommon,
	},
	{
		ID:          "sun_hat",
		Name:        "Tiny Sun Hat",
		Description: "Protects your plant from harsh sunlight while looking adorable.",
		Emoji:       "🎩",
		Price:       180,
		Category:    CategoryDecorations,
		Type:        TypeDecoration,
		Rarity:      RarityCommon,
	},
	{
		ID:          "fairy_lights",
		Name:        "Fairy Lights",
		Description: "Magical twinkling lights that make your plant glow beautifully.",
		Emoji:       "💫",
		Price:       350,
		Category:    CategoryDecorations,
		Type:        TypeDecoration,
		Rarity:      RarityRare,
	},
	{
		ID:          "love_heart",
		Name:        "Love Heart",
		Description: "Show your plant some love with this sweet floating heart.",
		Emoji:       "💕",
		Price:       100,
		Category:    CategoryDecorations,
		Type:        TypeDecoration,
		Rarity:      RarityCommon,
	},
	{
		ID:          "growth_potion",
		Name:        "Growth Potion",
		Description: "A powerful potion that instantly boosts your plant's size significantly!",
		Emoji:       "🧪",
		Price:       500,
		Category:    CategorySpecial,
		Type:        TypeConsumable,
		Cooldown:    48 * time.Hour,
		Effects:     Effects{HealthDelta: 50, GrowthMin: 10, GrowthMax: 15},
		Rarity:      RarityLegendary,
	},
	{
		ID:          "healing_elixir",
		Name:        "Healing Elixir",
		Description: "Completely restores your plant's health and gives a small growth boost.",
		Emoji:       "💚",
		Price:       200,
		Category:    CategorySpecial,
		Type:        TypeConsumable,
		Cooldown:    12 * time.Hour,
		Effects:     Effects{HealthFull: true, GrowthMin: 2, GrowthMax: 4},
		Rarity:      RarityUncommon,
	},
}

// FindItem looks up a catalog item by id.
func FindItem(id string) (Item, error) {
	for _, item := range Catalog {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, fmt.Errorf("unknown shop item: %s", id)
}

// ItemsByCategory filters the catalog preserving display order.
func ItemsByCategory(category Category) []Item {
	var items []Item
	for _, item := range Catalog {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}
