package auspicious

import "github.com/AngusHsu/lunar-mcp-server/lunar/convert"

// Weights of the three scoring factors. They sum to 1.0 and scale to the
// 0–10 score. Kept as data so tests can substitute rule sets.
type Weights struct {
	Element   float64
	ZodiacDay float64
	MoonPhase float64
}

// DefaultWeights is the baseline factor weighting.
var DefaultWeights = Weights{Element: 0.40, ZodiacDay: 0.35, MoonPhase: 0.25}

// Score-to-level thresholds, inclusive on the lower bound.
const (
	LevelVeryGood = "very_good"
	LevelGood     = "good"
	LevelNeutral  = "neutral"
	LevelPoor     = "poor"
	LevelVeryPoor = "very_poor"
)

// ActivityRule is the per-activity favorability table: which day elements
// suit the activity and which day animals help or hinder it.
type ActivityRule struct {
	FavorableElements  []string
	FavorableAnimals   []string
	UnfavorableAnimals []string
}

// defaultActivityRules covers the traditional activity set. Activities not
// listed score neutral on the element and zodiac factors.
var defaultActivityRules = map[string]ActivityRule{
	"wedding": {
		FavorableElements:  []string{convert.ElementFire, convert.ElementEarth},
		FavorableAnimals:   []string{"Dragon", "Rooster", "Rabbit", "Pig"},
		UnfavorableAnimals: []string{"Tiger", "Snake"},
	},
	"business_opening": {
		FavorableElements:  []string{convert.ElementMetal, convert.ElementWater},
		FavorableAnimals:   []string{"Dragon", "Rat", "Monkey"},
		UnfavorableAnimals: []string{"Goat", "Dog"},
	},
	"travel": {
		FavorableElements:  []string{convert.ElementWater, convert.ElementWood},
		FavorableAnimals:   []string{"Horse", "Monkey", "Tiger"},
		UnfavorableAnimals: []string{"Ox", "Snake"},
	},
	"moving": {
		FavorableElements:  []string{convert.ElementEarth, convert.ElementWood},
		FavorableAnimals:   []string{"Dragon", "Horse", "Dog"},
		UnfavorableAnimals: []string{"Rat", "Rooster"},
	},
	"surgery": {
		FavorableElements:  []string{convert.ElementMetal, convert.ElementEarth},
		FavorableAnimals:   []string{"Ox", "Rooster"},
		UnfavorableAnimals: []string{"Pig", "Rabbit"},
	},
	"signing_contract": {
		FavorableElements:  []string{convert.ElementMetal, convert.ElementEarth},
		FavorableAnimals:   []string{"Ox", "Dragon", "Rooster"},
		UnfavorableAnimals: []string{"Monkey", "Goat"},
	},
	"planting": {
		FavorableElements:  []string{convert.ElementWood, convert.ElementWater},
		FavorableAnimals:   []string{"Rabbit", "Goat", "Pig"},
		UnfavorableAnimals: []string{"Monkey", "Rooster"},
	},
	"celebration": {
		FavorableElements:  []string{convert.ElementFire, convert.ElementWood},
		FavorableAnimals:   []string{"Dragon", "Horse", "Monkey"},
		UnfavorableAnimals: []string{"Ox"},
	},
	"funeral": {
		FavorableElements:  []string{convert.ElementWater, convert.ElementMetal},
		FavorableAnimals:   []string{"Ox", "Dog"},
		UnfavorableAnimals: []string{"Dragon", "Horse"},
	},
	"haircut": {
		FavorableElements:  []string{convert.ElementWood, convert.ElementFire},
		FavorableAnimals:   []string{"Rabbit", "Snake", "Rooster"},
		UnfavorableAnimals: []string{"Dog"},
	},
}

// elementColors is the fixed element → lucky colors table.
var elementColors = map[string][]string{
	convert.ElementWood:  {"green", "brown", "teal"},
	convert.ElementFire:  {"red", "orange", "purple"},
	convert.ElementEarth: {"yellow", "beige", "ochre"},
	convert.ElementMetal: {"white", "gold", "silver"},
	convert.ElementWater: {"black", "blue", "gray"},
}

// elementNumbers is the fixed element → resonant number table.
var elementNumbers = map[string]int{
	convert.ElementWood:  3,
	convert.ElementFire:  9,
	convert.ElementEarth: 5,
	convert.ElementMetal: 7,
	convert.ElementWater: 1,
}

// animalDayBaseline is each day animal's general fortune contribution in
// [0,1], used when no activity narrows the question.
var animalDayBaseline = map[string]float64{
	"Rat": 0.6, "Ox": 0.55, "Tiger": 0.5, "Rabbit": 0.65,
	"Dragon": 0.9, "Snake": 0.5, "Horse": 0.7, "Goat": 0.45,
	"Monkey": 0.6, "Rooster": 0.55, "Dog": 0.5, "Pig": 0.65,
}

// phaseFortune is each moon phase's general fortune contribution in [0,1].
var phaseFortune = map[string]float64{
	"New Moon": 0.7, "Waxing Crescent": 0.65, "First Quarter": 0.6,
	"Waxing Gibbous": 0.7, "Full Moon": 0.9, "Waning Gibbous": 0.55,
	"Last Quarter": 0.45, "Waning Crescent": 0.4,
}

// compatibilityRecommendations keyed by compatibility level.
var compatibilityRecommendations = map[string]string{
	"excellent":   "A naturally harmonious pairing. Joint ventures and long-term plans are well supported.",
	"good":        "A supportive match. Cooperation comes easily with a little mutual attention.",
	"neutral":     "Neither helped nor hindered by the zodiac. Success depends on effort, not the stars.",
	"challenging": "Some friction is traditional for this pairing. Patience and clear roles smooth the way.",
	"conflicting": "These signs sit in direct opposition. Important joint decisions deserve extra care and a favorable date.",
}
