package catalog

import "strings"

// Category is the closed set of health item kinds
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryFruit
	CategoryVegetable
	CategoryNut
	CategoryProtein
	CategoryDairy
	CategoryGrain
	CategoryVitamin
	CategoryHerb
	CategorySuperfood
	CategoryWater
	CategoryExercise
	CategorySleep
	CategoryMental
	CategoryHygiene
	CategorySafety
)

// DefaultGlyph is drawn for categories without a glyph of their own
const DefaultGlyph = "❔"

// DefaultTitle is the popup title for categories without a title of their own
const DefaultTitle = "Health Knowledge"

var categoryNames = [...]string{
	CategoryUnknown:   "unknown",
	CategoryFruit:     "fruit",
	CategoryVegetable: "vegetable",
	CategoryNut:       "nut",
	CategoryProtein:   "protein",
	CategoryDairy:     "dairy",
	CategoryGrain:     "grain",
	CategoryVitamin:   "vitamin",
	CategoryHerb:      "herb",
	CategorySuperfood: "superfood",
	CategoryWater:     "water",
	CategoryExercise:  "exercise",
	CategorySleep:     "sleep",
	CategoryMental:    "mental",
	CategoryHygiene:   "hygiene",
	CategorySafety:    "safety",
}

// Categories lists every known category in declaration order, excluding CategoryUnknown
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames)-1)
	for c := CategoryFruit; int(c) < len(categoryNames); c++ {
		out = append(out, c)
	}
	return out
}

// String returns the lower-case catalog key
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return categoryNames[CategoryUnknown]
}

// MarshalText encodes the category by catalog key
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a catalog key, unknown keys become CategoryUnknown
func (c *Category) UnmarshalText(b []byte) error {
	*c = ParseCategory(string(b))
	return nil
}

// ParseCategory maps a catalog key to its category
// Unrecognised keys yield CategoryUnknown, never an error
func ParseCategory(s string) Category {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range categoryNames {
		if name == key {
			return Category(i)
		}
	}
	return CategoryUnknown
}

// Title returns the popup heading shown when an item of this category is collected
func (c Category) Title() string {
	switch c {
	case CategoryFruit:
		return "Nutrition Fact"
	case CategoryVegetable:
		return "Veggie Power"
	case CategoryNut:
		return "Nutrient Boost"
	case CategoryProtein:
		return "Protein Power"
	case CategoryDairy:
		return "Dairy Fact"
	case CategoryGrain:
		return "Grain Knowledge"
	case CategoryVitamin:
		return "Vitamin Insight"
	case CategoryWater:
		return "Hydration Tip"
	case CategoryExercise:
		return "Exercise Benefit"
	case CategorySleep:
		return "Sleep Science"
	case CategoryMental:
		return "Mental Health Tip"
	case CategoryHygiene:
		return "Hygiene Fact"
	case CategorySafety:
		return "Health Safety"
	default:
		return DefaultTitle
	}
}

// Glyph returns the representative glyph used by the guide and legend
func (c Category) Glyph() string {
	switch c {
	case CategoryFruit:
		return "🍎"
	case CategoryVegetable:
		return "🥦"
	case CategoryNut:
		return "🥜"
	case CategoryProtein:
		return "🥩"
	case CategoryDairy:
		return "🥛"
	case CategoryGrain:
		return "🌾"
	case CategoryVitamin:
		return "💊"
	case CategoryHerb:
		return "🌿"
	case CategorySuperfood:
		return "🫐"
	case CategoryWater:
		return "💧"
	case CategoryExercise:
		return "🏃"
	case CategorySleep:
		return "😴"
	case CategoryMental:
		return "🧠"
	case CategoryHygiene:
		return "🧼"
	case CategorySafety:
		return "🚭"
	default:
		return DefaultGlyph
	}
}
