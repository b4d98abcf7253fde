package convert

import (
	"testing"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
)

func TestWesternSign_Boundaries(t *testing.T) {
	cases := []struct {
		date, want string
	}{
		{"2024-01-19", "Capricorn"}, // year opens inside Capricorn
		{"2024-01-20", "Aquarius"},
		{"2024-02-18", "Aquarius"},
		{"2024-02-19", "Pisces"},
		{"2024-03-20", "Pisces"},
		{"2024-03-21", "Aries"},
		{"2024-07-22", "Cancer"},
		{"2024-07-23", "Leo"},
		{"2024-12-21", "Sagittarius"},
		{"2024-12-22", "Capricorn"},
		{"2024-12-31", "Capricorn"},
	}
	for _, c := range cases {
		if got := WesternSign(lunar.MustDate(c.date)); got != c.want {
			t.Errorf("WesternSign(%s) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestWesternZodiacInfo(t *testing.T) {
	info := WesternZodiacInfo(lunar.MustDate("2024-04-01"))
	if info.ZodiacSign != "Aries" {
		t.Fatalf("sign = %q, want Aries", info.ZodiacSign)
	}
	if info.Element != "Fire" || info.Quality != "Cardinal" || info.RulingPlanet != "Mars" {
		t.Fatalf("aries attributes wrong: %+v", info)
	}
	if len(info.Traits["positive"]) == 0 || len(info.Traits["negative"]) == 0 {
		t.Fatalf("traits missing: %+v", info.Traits)
	}
	if len(info.CompatibleSigns["compatible"]) == 0 || len(info.CompatibleSigns["challenging"]) == 0 {
		t.Fatalf("compatibility lists missing: %+v", info.CompatibleSigns)
	}
}

func TestChineseZodiacInfo_WoodDragonYear(t *testing.T) {
	// The lunar year beginning 2024-02-05 is the Wood Dragon (甲辰) year.
	info := ChineseZodiacInfo(lunar.MustDate("2024-06-01"))
	if info.YearZodiac.Animal != "Dragon" {
		t.Fatalf("year animal = %q, want Dragon", info.YearZodiac.Animal)
	}
	if info.YearZodiac.Element != ElementWood || info.YearZodiac.YinYang != "Yang" {
		t.Fatalf("year attribution = %s/%s, want Wood/Yang", info.YearZodiac.Element, info.YearZodiac.YinYang)
	}
	if info.YearZodiac.FullName != "Wood Dragon" {
		t.Fatalf("full name = %q", info.YearZodiac.FullName)
	}
	if info.DailyZodiac.Animal == "" || info.DailyZodiac.Influence == "" {
		t.Fatalf("daily zodiac incomplete: %+v", info.DailyZodiac)
	}
	if info.HourlyZodiac.HourRange == "" {
		t.Fatalf("hourly zodiac incomplete: %+v", info.HourlyZodiac)
	}
}

func TestOppositeAnimal(t *testing.T) {
	cases := map[string]string{
		"Rat":   "Horse",
		"Ox":    "Goat",
		"Tiger": "Monkey",
		"Horse": "Rat",
		"Pig":   "Snake",
	}
	for animal, want := range cases {
		if got := OppositeAnimal(animal); got != want {
			t.Errorf("OppositeAnimal(%q) = %q, want %q", animal, got, want)
		}
	}
	if OppositeAnimal("Unicorn") != "" {
		t.Fatalf("unknown animal has no opposite")
	}
}

func TestTrinesAndHarmonies(t *testing.T) {
	if !SameTrine("Rat", "Dragon") || !SameTrine("Dragon", "Monkey") {
		t.Fatalf("Rat/Dragon/Monkey trine broken")
	}
	if SameTrine("Rat", "Horse") {
		t.Fatalf("opposites are not trine partners")
	}
	if SixHarmonyOf("Rat") != "Ox" || SixHarmonyOf("Ox") != "Rat" {
		t.Fatalf("Rat/Ox six harmony broken")
	}
	if HarmPairOf("Rat") != "Goat" || HarmPairOf("Goat") != "Rat" {
		t.Fatalf("Rat/Goat harm pair broken")
	}
}

func TestAnimalCompatibilityMatches(t *testing.T) {
	c := AnimalCompatibilityMatches("Rat")
	wantBest := map[string]bool{"Dragon": true, "Monkey": true, "Ox": true}
	if len(c.BestMatches) != len(wantBest) {
		t.Fatalf("best matches = %v", c.BestMatches)
	}
	for _, a := range c.BestMatches {
		if !wantBest[a] {
			t.Fatalf("unexpected best match %q", a)
		}
	}
	wantChallenging := map[string]bool{"Horse": true, "Goat": true}
	if len(c.ChallengingMatches) != len(wantChallenging) {
		t.Fatalf("challenging matches = %v", c.ChallengingMatches)
	}
	for _, a := range c.ChallengingMatches {
		if !wantChallenging[a] {
			t.Fatalf("unexpected challenging match %q", a)
		}
	}
}
