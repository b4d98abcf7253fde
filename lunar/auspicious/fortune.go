package auspicious

import (
	"fmt"
	"sort"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
	"github.com/AngusHsu/lunar-mcp-server/lunar/astro"
	"github.com/AngusHsu/lunar-mcp-server/lunar/convert"
)

// Fortune is the single-date reading without an activity: general energy,
// lucky items, and advice.
type Fortune struct {
	Date            string   `json:"date"`
	Culture         string   `json:"culture"`
	FortuneScore    float64  `json:"fortune_score"`
	FortuneLevel    string   `json:"fortune_level"`
	ZodiacDay       string   `json:"zodiac_day"`
	FiveElement     string   `json:"five_element"`
	MoonPhase       string   `json:"moon_phase"`
	LunarDay        int      `json:"lunar_day"`
	LuckyColors     []string `json:"lucky_colors"`
	LuckyNumbers    []int    `json:"lucky_numbers"`
	LuckyDirections []string `json:"lucky_directions"`
	Description     string   `json:"description"`
	Advice          string   `json:"advice"`
}

// DailyFortune aggregates the day's stem-branch harmony, animal baseline,
// and moon phase into one fortune score, using the same weights as
// activity scoring.
func (e *Engine) DailyFortune(d lunar.Date, culture lunar.Culture) (Fortune, error) {
	if _, err := lunar.ParseCulture(string(culture)); err != nil {
		return Fortune{}, err
	}
	day := convert.ChineseDayInfo(d)
	moon := astro.MoonPhaseAt(d, lunar.Location{})

	harmony := stemBranchHarmony(day)
	baseline := animalDayBaseline[day.ZodiacDay]
	moonScore := phaseFortune[moon.PhaseName]

	score := round1(10 * (e.weights.Element*harmony +
		e.weights.ZodiacDay*baseline +
		e.weights.MoonPhase*moonScore))
	level := LevelFor(score)

	return Fortune{
		Date:            d.String(),
		Culture:         string(culture),
		FortuneScore:    score,
		FortuneLevel:    level,
		ZodiacDay:       day.ZodiacDay,
		FiveElement:     day.FiveElement,
		MoonPhase:       moon.PhaseName,
		LunarDay:        moon.LunarDay,
		LuckyColors:     luckyColors(day.FiveElement),
		LuckyNumbers:    luckyNumbers(moon.LunarDay, day.FiveElement),
		LuckyDirections: convert.BranchDirections(day.BranchIndex),
		Description:     fortuneDescription(level, day),
		Advice:          dailyAdvice(level, day.FiveElement),
	}, nil
}

// stemBranchHarmony scores the relation between the day stem's element and
// the day branch's intrinsic element.
func stemBranchHarmony(day convert.DayInfo) float64 {
	branchElement := convert.AnimalElement(day.ZodiacDay)
	switch convert.ElementRelation(day.FiveElement, branchElement) {
	case convert.RelationGenerative:
		return 1.0
	case convert.RelationSupportive:
		return 0.8
	case convert.RelationWeakening:
		return 0.35
	case convert.RelationDestructive:
		return 0.15
	default:
		return 0.55
	}
}

func luckyColors(element string) []string {
	return append([]string(nil), elementColors[element]...)
}

// luckyNumbers derives numbers from the lunar day: its digit sum reduced to
// 1..9, its floored-mod-9 successor, and the day element's resonant number.
func luckyNumbers(lunarDay int, element string) []int {
	set := map[int]bool{
		digitRoot(lunarDay):     true,
		lunarDay%9 + 1:          true,
		elementNumbers[element]: true,
	}
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func digitRoot(n int) int {
	if n <= 0 {
		return 9
	}
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

func fortuneDescription(level string, day convert.DayInfo) string {
	base := fmt.Sprintf("A %s day ruled by the %s under the %s element.",
		levelWord(level), day.ZodiacDay, day.FiveElement)
	return base
}

func levelWord(level string) string {
	switch level {
	case LevelVeryGood:
		return "very fortunate"
	case LevelGood:
		return "fortunate"
	case LevelNeutral:
		return "steady"
	case LevelPoor:
		return "cautious"
	default:
		return "difficult"
	}
}

func dailyAdvice(level, element string) string {
	feeds := convert.GenerativeNext(element)
	switch level {
	case LevelVeryGood:
		return fmt.Sprintf("Act on important plans today; %s energy feeds %s and momentum is with you.", element, feeds)
	case LevelGood:
		return fmt.Sprintf("A favorable day for steady progress. Lean on %s-natured pursuits.", element)
	case LevelNeutral:
		return "An ordinary day. Keep routines, finish small tasks, and avoid forcing outcomes."
	case LevelPoor:
		return "Hold back on major commitments today; review, repair, and rest instead."
	default:
		return "An unfavorable day for new undertakings. Keep a low profile and tend to what already exists."
	}
}
