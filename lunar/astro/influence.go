package astro

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
)

// Influence describes the traditional character attributed to a moon phase.
type Influence struct {
	GoodFor    []string `json:"good_for"`
	Avoid      []string `json:"avoid"`
	EnergyType string   `json:"energy_type"`
	LuckLevel  string   `json:"luck_level"`
}

// phaseInfluences is the fixed phase → influence table.
var phaseInfluences = map[string]Influence{
	PhaseNewMoon: {
		GoodFor:    []string{"new beginnings", "planning", "setting intentions"},
		Avoid:      []string{"major launches", "signing contracts"},
		EnergyType: "renewal",
		LuckLevel:  "moderate",
	},
	PhaseWaxingCrescent: {
		GoodFor:    []string{"starting projects", "learning", "networking"},
		Avoid:      []string{"endings", "letting go"},
		EnergyType: "growth",
		LuckLevel:  "good",
	},
	PhaseFirstQuarter: {
		GoodFor:    []string{"decision making", "overcoming obstacles", "taking action"},
		Avoid:      []string{"hesitation", "passive waiting"},
		EnergyType: "action",
		LuckLevel:  "moderate",
	},
	PhaseWaxingGibbous: {
		GoodFor:    []string{"refinement", "persistence", "preparation"},
		Avoid:      []string{"shortcuts", "haste"},
		EnergyType: "momentum",
		LuckLevel:  "good",
	},
	PhaseFullMoon: {
		GoodFor:    []string{"completion", "celebration", "gratitude"},
		Avoid:      []string{"starting new projects", "impulsive decisions"},
		EnergyType: "culmination",
		LuckLevel:  "excellent",
	},
	PhaseWaningGibbous: {
		GoodFor:    []string{"sharing", "teaching", "giving thanks"},
		Avoid:      []string{"overcommitment", "new ventures"},
		EnergyType: "dissemination",
		LuckLevel:  "moderate",
	},
	PhaseLastQuarter: {
		GoodFor:    []string{"letting go", "forgiveness", "clearing clutter"},
		Avoid:      []string{"new ventures", "major purchases"},
		EnergyType: "release",
		LuckLevel:  "low",
	},
	PhaseWaningCrescent: {
		GoodFor:    []string{"rest", "reflection", "healing"},
		Avoid:      []string{"strenuous effort", "launches"},
		EnergyType: "surrender",
		LuckLevel:  "low",
	},
}

// InfluenceOf returns the traditional influence for a phase name.
func InfluenceOf(phase string) Influence {
	return phaseInfluences[phase]
}

// Activity ratings used in the phase suitability table.
const (
	RatingExcellent   = "excellent"
	RatingGood        = "good"
	RatingNeutral     = "neutral"
	RatingChallenging = "challenging"
	RatingAvoid       = "avoid"
)

// RatingScore maps a rating to a [0,1] contribution for scoring.
func RatingScore(rating string) float64 {
	switch rating {
	case RatingExcellent:
		return 1.0
	case RatingGood:
		return 0.75
	case RatingChallenging:
		return 0.25
	case RatingAvoid:
		return 0.0
	default:
		return 0.5
	}
}

// defaultPhaseRatings apply when an activity has no specific entry.
var defaultPhaseRatings = map[string]string{
	PhaseNewMoon:        RatingGood,
	PhaseWaxingCrescent: RatingGood,
	PhaseFirstQuarter:   RatingNeutral,
	PhaseWaxingGibbous:  RatingGood,
	PhaseFullMoon:       RatingExcellent,
	PhaseWaningGibbous:  RatingNeutral,
	PhaseLastQuarter:    RatingChallenging,
	PhaseWaningCrescent: RatingChallenging,
}

// activityPhaseRatings overrides the defaults per activity. Waxing phases
// favor growth activities, waning phases favor removal and rest.
var activityPhaseRatings = map[string]map[string]string{
	"wedding": {
		PhaseFullMoon:       RatingExcellent,
		PhaseWaxingGibbous:  RatingGood,
		PhaseWaxingCrescent: RatingGood,
		PhaseLastQuarter:    RatingAvoid,
		PhaseWaningCrescent: RatingAvoid,
	},
	"business_opening": {
		PhaseNewMoon:        RatingExcellent,
		PhaseWaxingCrescent: RatingExcellent,
		PhaseFirstQuarter:   RatingGood,
		PhaseWaningGibbous:  RatingChallenging,
		PhaseWaningCrescent: RatingAvoid,
	},
	"travel": {
		PhaseFirstQuarter:   RatingGood,
		PhaseWaxingCrescent: RatingGood,
		PhaseFullMoon:       RatingGood,
		PhaseWaningCrescent: RatingChallenging,
	},
	"surgery": {
		PhaseFullMoon:       RatingAvoid,
		PhaseWaxingGibbous:  RatingChallenging,
		PhaseWaningCrescent: RatingGood,
		PhaseLastQuarter:    RatingGood,
		PhaseNewMoon:        RatingNeutral,
	},
	"moving": {
		PhaseNewMoon:        RatingGood,
		PhaseWaxingCrescent: RatingGood,
		PhaseWaningGibbous:  RatingChallenging,
	},
	"planting": {
		PhaseWaxingCrescent: RatingExcellent,
		PhaseWaxingGibbous:  RatingExcellent,
		PhaseNewMoon:        RatingGood,
		PhaseFullMoon:       RatingNeutral,
		PhaseLastQuarter:    RatingChallenging,
		PhaseWaningCrescent: RatingAvoid,
	},
	"harvest": {
		PhaseFullMoon:       RatingExcellent,
		PhaseWaningGibbous:  RatingGood,
		PhaseWaxingCrescent: RatingChallenging,
	},
	"haircut": {
		PhaseWaxingCrescent: RatingExcellent,
		PhaseWaxingGibbous:  RatingGood,
		PhaseWaningCrescent: RatingChallenging,
	},
	"celebration": {
		PhaseFullMoon:      RatingExcellent,
		PhaseWaxingGibbous: RatingGood,
		PhaseNewMoon:       RatingNeutral,
	},
	"signing_contract": {
		PhaseFirstQuarter:   RatingGood,
		PhaseWaxingGibbous:  RatingGood,
		PhaseNewMoon:        RatingChallenging,
		PhaseWaningCrescent: RatingAvoid,
	},
	"funeral": {
		PhaseWaningCrescent: RatingGood,
		PhaseLastQuarter:    RatingGood,
		PhaseFullMoon:       RatingChallenging,
		PhaseNewMoon:        RatingNeutral,
	},
}

// ActivityRating returns the suitability rating of a moon phase for an
// activity, falling back to the phase default for unknown activities.
func ActivityRating(phase, activity string) string {
	if ratings, ok := activityPhaseRatings[strings.ToLower(activity)]; ok {
		if r, ok := ratings[phase]; ok {
			return r
		}
	}
	if r, ok := defaultPhaseRatings[phase]; ok {
		return r
	}
	return RatingNeutral
}

// Activities returns the activities with dedicated phase tables, sorted.
func Activities() []string {
	out := make([]string, 0, len(activityPhaseRatings))
	for a := range activityPhaseRatings {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// InfluenceReport is the result of a moon-influence query for one activity.
type InfluenceReport struct {
	Date           string    `json:"date"`
	Activity       string    `json:"activity"`
	MoonPhase      string    `json:"moon_phase"`
	LunarDay       int       `json:"lunar_day"`
	ActivityRating string    `json:"activity_rating"`
	Influence      Influence `json:"influence"`
	Recommendation string    `json:"recommendation"`
}

// MoonInfluence reports how suitable a date's moon phase is for an activity.
func MoonInfluence(d lunar.Date, activity string) InfluenceReport {
	age := MoonAge(d)
	phase := PhaseName(Illumination(age), age)
	rating := ActivityRating(phase, activity)
	return InfluenceReport{
		Date:           d.String(),
		Activity:       activity,
		MoonPhase:      phase,
		LunarDay:       LunarDay(d),
		ActivityRating: rating,
		Influence:      InfluenceOf(phase),
		Recommendation: activityRecommendation(activity, phase, rating),
	}
}

func activityRecommendation(activity, phase, rating string) string {
	switch rating {
	case RatingExcellent:
		return fmt.Sprintf("The %s is optimal for %s. Proceed with confidence.", phase, activity)
	case RatingGood:
		return fmt.Sprintf("The %s favors %s. A good window to go ahead.", phase, activity)
	case RatingChallenging:
		return fmt.Sprintf("The %s is a challenging time for %s. Consider waiting for a waxing moon.", phase, activity)
	case RatingAvoid:
		return fmt.Sprintf("Tradition advises against %s during the %s. Pick another date if possible.", activity, phase)
	default:
		return fmt.Sprintf("The %s is neutral for %s. Other factors should guide the decision.", phase, activity)
	}
}
