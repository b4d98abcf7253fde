// Package auspicious scores dates for traditional activities by combining
// the day's five-element attribution, its zodiac animal, and the moon phase
// into a deterministic 0–10 score with a discrete level. No randomness, no
// external state: the same inputs always produce the same reading.
package auspicious

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
	"github.com/AngusHsu/lunar-mcp-server/lunar/astro"
	"github.com/AngusHsu/lunar-mcp-server/lunar/convert"
)

// maxSearchDays bounds FindGoodDates scans.
const maxSearchDays = 366

// DefaultLimit is the good-date result cap when the caller supplies none.
const DefaultLimit = 10

// Engine evaluates auspiciousness against an injected rule set. The zero
// set of tables is never used; construct with NewEngine.
type Engine struct {
	weights Weights
	rules   map[string]ActivityRule
}

// NewEngine returns an engine with the default weights and activity rules.
func NewEngine() *Engine {
	return &Engine{weights: DefaultWeights, rules: defaultActivityRules}
}

// NewEngineWithRules substitutes weights and rules, for tests and tuning.
func NewEngineWithRules(w Weights, rules map[string]ActivityRule) *Engine {
	return &Engine{weights: w, rules: rules}
}

// Factor is one weighted contribution to a score.
type Factor struct {
	Name         string  `json:"factor"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// Result is the outcome of a single auspiciousness calculation.
type Result struct {
	Score   float64         `json:"score"`
	Level   string          `json:"level"`
	Factors []Factor        `json:"factors"`
	DayInfo convert.DayInfo `json:"chinese_info"`
}

// LevelFor classifies a 0–10 score. Boundaries are inclusive on the lower
// bound: 8 is very_good, 6 is good, and so on.
func LevelFor(score float64) string {
	switch {
	case score >= 8:
		return LevelVeryGood
	case score >= 6:
		return LevelGood
	case score >= 4:
		return LevelNeutral
	case score >= 2:
		return LevelPoor
	default:
		return LevelVeryPoor
	}
}

// Calculate scores a date for an activity. Culture must be one of the
// supported set; the scoring model itself is rooted in the Chinese day
// attribution for every culture.
func (e *Engine) Calculate(d lunar.Date, activity string, culture lunar.Culture) (Result, error) {
	if _, err := lunar.ParseCulture(string(culture)); err != nil {
		return Result{}, err
	}
	day := convert.ChineseDayInfo(d)
	rule := e.rules[strings.ToLower(activity)]

	elementScore := elementFavorability(day.FiveElement, rule.FavorableElements)
	zodiacScore := zodiacFavorability(day.ZodiacDay, rule)
	age := astro.MoonAge(d)
	phase := astro.PhaseName(astro.Illumination(age), age)
	moonScore := astro.RatingScore(astro.ActivityRating(phase, activity))

	score := round1(10 * (e.weights.Element*elementScore +
		e.weights.ZodiacDay*zodiacScore +
		e.weights.MoonPhase*moonScore))

	return Result{
		Score: score,
		Level: LevelFor(score),
		Factors: []Factor{
			{Name: "five_element", Weight: e.weights.Element, Contribution: round2(elementScore)},
			{Name: "zodiac_day", Weight: e.weights.ZodiacDay, Contribution: round2(zodiacScore)},
			{Name: "moon_phase", Weight: e.weights.MoonPhase, Contribution: round2(moonScore)},
		},
		DayInfo: day,
	}, nil
}

// elementFavorability maps the day element onto [0,1] against an activity's
// favorable elements using the five-element cycle: a favorable element is
// ideal, feeding one is good, being fed drains, destruction clashes.
func elementFavorability(dayElement string, favorable []string) float64 {
	if len(favorable) == 0 {
		return 0.5
	}
	best := 0.1
	for _, fav := range favorable {
		var v float64
		switch convert.ElementRelation(dayElement, fav) {
		case convert.RelationSupportive:
			v = 1.0
		case convert.RelationGenerative:
			v = 0.75
		case convert.RelationNeutral:
			v = 0.5
		case convert.RelationWeakening:
			v = 0.35
		case convert.RelationDestructive:
			v = 0.1
		}
		if v > best {
			best = v
		}
	}
	return best
}

func zodiacFavorability(animal string, rule ActivityRule) float64 {
	for _, a := range rule.FavorableAnimals {
		if a == animal {
			return 1.0
		}
	}
	for _, a := range rule.UnfavorableAnimals {
		if a == animal {
			return 0.0
		}
	}
	return 0.5
}

// DateCheck is the enriched per-date reading returned by CheckDate.
type DateCheck struct {
	Date            string   `json:"date"`
	Activity        string   `json:"activity"`
	Culture         string   `json:"culture"`
	Score           float64  `json:"score"`
	Level           string   `json:"auspicious_level"`
	ZodiacDay       string   `json:"zodiac_day"`
	FiveElement     string   `json:"five_element"`
	MoonPhase       string   `json:"moon_phase"`
	LunarDay        int      `json:"lunar_day"`
	GoodFor         []string `json:"good_for"`
	Avoid           []string `json:"avoid"`
	LuckyHours      []string `json:"lucky_hours"`
	LuckyDirections []string `json:"lucky_directions"`
	Factors         []Factor `json:"factors"`
	Recommendations string   `json:"recommendations"`
}

// CheckDate wraps Calculate with the moon phase, lucky hours and directions
// derived from the day's earthly branch, and a textual recommendation.
func (e *Engine) CheckDate(d lunar.Date, activity string, culture lunar.Culture) (DateCheck, error) {
	res, err := e.Calculate(d, activity, culture)
	if err != nil {
		return DateCheck{}, err
	}
	moon := astro.MoonPhaseAt(d, lunar.Location{})
	influence := moon.Influence
	return DateCheck{
		Date:            d.String(),
		Activity:        activity,
		Culture:         string(culture),
		Score:           res.Score,
		Level:           res.Level,
		ZodiacDay:       res.DayInfo.ZodiacDay,
		FiveElement:     res.DayInfo.FiveElement,
		MoonPhase:       moon.PhaseName,
		LunarDay:        moon.LunarDay,
		GoodFor:         influence.GoodFor,
		Avoid:           influence.Avoid,
		LuckyHours:      luckyHours(res.DayInfo.BranchIndex),
		LuckyDirections: convert.BranchDirections(res.DayInfo.BranchIndex),
		Factors:         res.Factors,
		Recommendations: recommendation(activity, res.Level),
	}, nil
}

// luckyHours returns the day branch's own double-hour plus those of its
// trine partners (four branches apart in either direction).
func luckyHours(branch int) []string {
	return []string{
		convert.BranchHours(branch),
		convert.BranchHours(branch + 4),
		convert.BranchHours(branch + 8),
	}
}

func recommendation(activity, level string) string {
	switch level {
	case LevelVeryGood:
		return fmt.Sprintf("An excellent day for %s. Tradition strongly favors proceeding.", activity)
	case LevelGood:
		return fmt.Sprintf("A good day for %s. Most signs are favorable.", activity)
	case LevelNeutral:
		return fmt.Sprintf("A neutral day for %s. Neither favored nor hindered; prepare well.", activity)
	case LevelPoor:
		return fmt.Sprintf("A poor day for %s. Consider a nearby alternative date.", activity)
	default:
		return fmt.Sprintf("An inauspicious day for %s. Tradition advises choosing another date.", activity)
	}
}

// GoodDates is the ranked outcome of a date-range search.
type GoodDates struct {
	Activity     string      `json:"activity"`
	Culture      string      `json:"culture"`
	SearchPeriod string      `json:"search_period"`
	GoodDates    []DateCheck `json:"good_dates"`
	FoundDates   int         `json:"found_dates"`
	BestDate     *DateCheck  `json:"best_date,omitempty"`
}

// FindGoodDates evaluates every date in [start, end], keeps the good and
// very_good ones, and ranks them by descending score with earlier dates
// winning ties. Inverted or oversized ranges fail up front.
func (e *Engine) FindGoodDates(start, end lunar.Date, activity string, culture lunar.Culture, limit int) (GoodDates, error) {
	if err := astro.ValidateRange(start, end); err != nil {
		return GoodDates{}, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	var candidates []DateCheck
	for d := start; !d.After(end); d = d.AddDays(1) {
		check, err := e.CheckDate(d, activity, culture)
		if err != nil {
			return GoodDates{}, err
		}
		if check.Level == LevelVeryGood || check.Level == LevelGood {
			candidates = append(candidates, check)
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].Score != candidates[b].Score {
			return candidates[a].Score > candidates[b].Score
		}
		return candidates[a].Date < candidates[b].Date
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := GoodDates{
		Activity:     activity,
		Culture:      string(culture),
		SearchPeriod: fmt.Sprintf("%s to %s", start, end),
		GoodDates:    candidates,
		FoundDates:   len(candidates),
	}
	if len(candidates) > 0 {
		best := candidates[0]
		out.BestDate = &best
	}
	return out, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
