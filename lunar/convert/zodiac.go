package convert

import (
	"fmt"
	"time"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
)

func monthOf(m int) time.Month { return time.Month(m) }

// YearZodiac describes the zodiac attribution of a Chinese lunar year.
type YearZodiac struct {
	Animal   string `json:"animal"`
	Element  string `json:"element"`
	YinYang  string `json:"yin_yang"`
	FullName string `json:"full_name"`
}

// DailyZodiac describes the animal governing a single day.
type DailyZodiac struct {
	Animal    string `json:"animal"`
	Influence string `json:"influence"`
}

// HourlyZodiac is the double-hour attribution reported alongside the day.
type HourlyZodiac struct {
	Animal    string `json:"animal"`
	HourRange string `json:"hour_range"`
}

// Compatibility lists an animal's best and challenging matches.
type Compatibility struct {
	BestMatches        []string `json:"best_matches"`
	ChallengingMatches []string `json:"challenging_matches"`
}

// ChineseZodiacProfile aggregates year, day, and hour attributions.
type ChineseZodiacProfile struct {
	Date          string        `json:"date"`
	Culture       string        `json:"culture"`
	YearZodiac    YearZodiac    `json:"year_zodiac"`
	DailyZodiac   DailyZodiac   `json:"daily_zodiac"`
	HourlyZodiac  HourlyZodiac  `json:"hourly_zodiac"`
	Compatibility Compatibility `json:"compatibility"`
}

// WesternZodiacProfile is the sun-sign attribution of a date.
type WesternZodiacProfile struct {
	Date            string              `json:"date"`
	Culture         string              `json:"culture"`
	ZodiacSign      string              `json:"zodiac_sign"`
	Element         string              `json:"element"`
	Quality         string              `json:"quality"`
	RulingPlanet    string              `json:"ruling_planet"`
	Traits          map[string][]string `json:"traits"`
	CompatibleSigns map[string][]string `json:"compatible_signs"`
}

// WesternSign returns the sun sign for a date. Start boundaries are
// inclusive; a date before the Aquarius start (Jan 1–19) is Capricorn.
func WesternSign(d lunar.Date) string {
	sign := westernSigns[len(westernSigns)-1].Name // Capricorn wraps the year
	for _, s := range westernSigns {
		start := lunar.Date{Year: d.Year, Month: monthOf(s.StartMonth), Day: s.StartDay}
		if d.Before(start) {
			break
		}
		sign = s.Name
	}
	return sign
}

func westernSignRow(name string) westernSign {
	for _, s := range westernSigns {
		if s.Name == name {
			return s
		}
	}
	return westernSigns[0]
}

// AnimalCompatibilityMatches returns the fixed best/challenging match lists
// for an animal: trine partners and the six-harmony partner are best;
// the opposition and harm partners are challenging.
func AnimalCompatibilityMatches(animal string) Compatibility {
	var best []string
	for _, trine := range zodiacTrines {
		if contains(trine, animal) {
			for _, a := range trine {
				if a != animal {
					best = append(best, a)
				}
			}
		}
	}
	if h, ok := sixHarmonies[animal]; ok && !contains(best, h) {
		best = append(best, h)
	}
	var challenging []string
	if opp := OppositeAnimal(animal); opp != "" {
		challenging = append(challenging, opp)
	}
	if h, ok := harmPairs[animal]; ok && !contains(challenging, h) {
		challenging = append(challenging, h)
	}
	return Compatibility{BestMatches: best, ChallengingMatches: challenging}
}

// OppositeAnimal returns the animal six branches away, the traditional
// clash partner.
func OppositeAnimal(animal string) string {
	for i, a := range zodiacAnimals {
		if a == animal {
			return zodiacAnimals[(i+6)%12]
		}
	}
	return ""
}

// SameTrine reports whether two animals share a harmony triangle. An animal
// is in the same trine as itself.
func SameTrine(a, b string) bool {
	for _, trine := range zodiacTrines {
		if contains(trine, a) && contains(trine, b) {
			return true
		}
	}
	return false
}

// SixHarmonyOf returns an animal's six-harmony partner, or "".
func SixHarmonyOf(animal string) string { return sixHarmonies[animal] }

// HarmPairOf returns an animal's harm partner, or "".
func HarmPairOf(animal string) string { return harmPairs[animal] }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ChineseZodiacInfo builds the full Chinese zodiac profile for a date.
func ChineseZodiacInfo(d lunar.Date) ChineseZodiacProfile {
	ld := chineseFromSolar(d)
	animal := zodiacAnimals[flooredModInt(ld.Year-4, 12)]
	stem := yearStemIndex(ld.Year)
	element := FiveElements[stem/2]
	yinYang := "Yang"
	if stem%2 == 1 {
		yinYang = "Yin"
	}
	day := ChineseDayInfo(d)
	return ChineseZodiacProfile{
		Date:    d.String(),
		Culture: string(lunar.Chinese),
		YearZodiac: YearZodiac{
			Animal:   animal,
			Element:  element,
			YinYang:  yinYang,
			FullName: fmt.Sprintf("%s %s", element, animal),
		},
		DailyZodiac: DailyZodiac{
			Animal:    day.ZodiacDay,
			Influence: animalTraits[day.ZodiacDay],
		},
		HourlyZodiac: HourlyZodiac{
			Animal:    day.ZodiacDay,
			HourRange: BranchHours(day.BranchIndex),
		},
		Compatibility: AnimalCompatibilityMatches(animal),
	}
}

// WesternZodiacInfo builds the sun-sign profile for a date.
func WesternZodiacInfo(d lunar.Date) WesternZodiacProfile {
	row := westernSignRow(WesternSign(d))
	return WesternZodiacProfile{
		Date:         d.String(),
		Culture:      string(lunar.Western),
		ZodiacSign:   row.Name,
		Element:      row.Element,
		Quality:      row.Quality,
		RulingPlanet: row.RulingPlanet,
		Traits: map[string][]string{
			"positive": append([]string(nil), row.Positive...),
			"negative": append([]string(nil), row.Negative...),
		},
		CompatibleSigns: map[string][]string{
			"compatible":  append([]string(nil), row.Compatible...),
			"challenging": append([]string(nil), row.Challenging...),
		},
	}
}
