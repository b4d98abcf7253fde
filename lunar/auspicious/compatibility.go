package auspicious

import (
	"fmt"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
	"github.com/AngusHsu/lunar-mcp-server/lunar/convert"
)

// Compatibility levels, best to worst.
const (
	CompatExcellent   = "excellent"
	CompatGood        = "good"
	CompatNeutral     = "neutral"
	CompatChallenging = "challenging"
	CompatConflicting = "conflicting"
)

// ElementRelationship describes the five-element relation between the two
// animals' intrinsic elements.
type ElementRelationship struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// CompatibilityResult is the reading for a pair of dates.
type CompatibilityResult struct {
	Date1               string              `json:"date1"`
	Date2               string              `json:"date2"`
	Culture             string              `json:"culture"`
	Zodiac1             string              `json:"zodiac1"`
	Zodiac2             string              `json:"zodiac2"`
	Level               string              `json:"compatibility_level"`
	Description         string              `json:"description"`
	ElementRelationship ElementRelationship `json:"element_relationship"`
	Recommendations     string              `json:"recommendations"`
}

// AnimalCompatibility classifies a pair of zodiac animals. The relation is
// symmetric by construction: trine membership, harmony, opposition, and
// harm pairs are all unordered relations.
func AnimalCompatibility(a, b string) string {
	if sameTrine(a, b) {
		return CompatExcellent
	}
	if matches(a, b, sixHarmonyOf) {
		return CompatGood
	}
	if convertOpposite(a) == b {
		return CompatConflicting
	}
	if matches(a, b, harmPairOf) {
		return CompatChallenging
	}
	return CompatNeutral
}

// CheckCompatibility derives each date's year animal and reads the pair.
func (e *Engine) CheckCompatibility(d1, d2 lunar.Date, culture lunar.Culture) (CompatibilityResult, error) {
	if _, err := lunar.ParseCulture(string(culture)); err != nil {
		return CompatibilityResult{}, err
	}
	z1 := convert.ZodiacYear(d1)
	z2 := convert.ZodiacYear(d2)
	level := AnimalCompatibility(z1, z2)
	e1 := convert.AnimalElement(z1)
	e2 := convert.AnimalElement(z2)
	relation := convert.ElementRelation(e1, e2)
	return CompatibilityResult{
		Date1:       d1.String(),
		Date2:       d2.String(),
		Culture:     string(culture),
		Zodiac1:     z1,
		Zodiac2:     z2,
		Level:       level,
		Description: compatibilityDescription(z1, z2, level),
		ElementRelationship: ElementRelationship{
			Type:        relation,
			Description: convert.ElementRelationDescription(e1, e2, relation),
		},
		Recommendations: compatibilityRecommendations[level],
	}, nil
}

func compatibilityDescription(a, b, level string) string {
	switch level {
	case CompatExcellent:
		return fmt.Sprintf("%s and %s belong to the same harmony triangle and understand each other instinctively.", a, b)
	case CompatGood:
		return fmt.Sprintf("%s and %s form one of the six harmonies, a quietly supportive bond.", a, b)
	case CompatConflicting:
		return fmt.Sprintf("%s and %s stand in direct opposition on the zodiac wheel.", a, b)
	case CompatChallenging:
		return fmt.Sprintf("%s and %s form a traditional harm pair; misunderstandings come easily.", a, b)
	default:
		return fmt.Sprintf("%s and %s have no strong traditional bond either way.", a, b)
	}
}

// The relation tables live in the convert package next to the animal
// ordering; thin accessors keep this package free of duplicated data.
func sameTrine(a, b string) bool { return convert.SameTrine(a, b) }

func sixHarmonyOf(a string) string { return convert.SixHarmonyOf(a) }

func harmPairOf(a string) string { return convert.HarmPairOf(a) }

func convertOpposite(a string) string { return convert.OppositeAnimal(a) }

func matches(a, b string, partner func(string) string) bool {
	return partner(a) == b && b != ""
}
