package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
)

func TestChineseDayInfo_EpochCalibration(t *testing.T) {
	// 2000-01-01 is a 戊午 day: stem 4, branch 6 (Horse), sexagenary 54.
	day := ChineseDayInfo(lunar.MustDate("2000-01-01"))
	if day.StemIndex != 4 || day.BranchIndex != 6 {
		t.Fatalf("epoch stem/branch = %d/%d, want 4/6", day.StemIndex, day.BranchIndex)
	}
	if day.HeavenlyStem != "戊" || day.EarthlyBranch != "午" {
		t.Fatalf("epoch symbols = %s%s, want 戊午", day.HeavenlyStem, day.EarthlyBranch)
	}
	if day.SexagenaryDay != 54 {
		t.Fatalf("epoch sexagenary = %d, want 54", day.SexagenaryDay)
	}
	if day.ZodiacDay != "Horse" || day.FiveElement != ElementEarth {
		t.Fatalf("epoch day = %s/%s, want Horse/Earth", day.ZodiacDay, day.FiveElement)
	}
}

func TestChineseDayInfo_SixtyDayCycle(t *testing.T) {
	d := lunar.MustDate("2024-05-01")
	a := ChineseDayInfo(d)
	b := ChineseDayInfo(d.AddDays(60))
	if a.SexagenaryDay != b.SexagenaryDay || a.HeavenlyStem != b.HeavenlyStem || a.EarthlyBranch != b.EarthlyBranch {
		t.Fatalf("60-day cycle broken: %+v vs %+v", a, b)
	}
	c := ChineseDayInfo(d.AddDays(1))
	if c.SexagenaryDay != (a.SexagenaryDay+1)%60 {
		t.Fatalf("sexagenary day did not advance: %d then %d", a.SexagenaryDay, c.SexagenaryDay)
	}
}

func TestChineseDayInfo_PreEpoch(t *testing.T) {
	// The day before the epoch steps every cycle back by one; floored modulo
	// keeps all indices in range.
	day := ChineseDayInfo(lunar.MustDate("1999-12-31"))
	if day.SexagenaryDay != 53 {
		t.Fatalf("pre-epoch sexagenary = %d, want 53", day.SexagenaryDay)
	}
	if day.StemIndex != 3 || day.BranchIndex != 5 {
		t.Fatalf("pre-epoch stem/branch = %d/%d, want 3/5", day.StemIndex, day.BranchIndex)
	}
	old := ChineseDayInfo(lunar.MustDate("1850-07-04"))
	if old.SexagenaryDay < 0 || old.SexagenaryDay > 59 {
		t.Fatalf("pre-epoch sexagenary out of range: %d", old.SexagenaryDay)
	}
	if old.LunarMansion == "" || old.ZodiacDay == "" {
		t.Fatalf("pre-epoch attribution incomplete: %+v", old)
	}
}

func TestChineseNewYear2024(t *testing.T) {
	got := ChineseNewYear(2024)
	if got.String() != "2024-02-05" {
		t.Fatalf("Chinese New Year 2024 = %s, want 2024-02-05", got)
	}
}

func TestChineseNewYear_InWindow(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		cny := ChineseNewYear(year)
		winStart := lunar.Date{Year: year, Month: time.January, Day: 21}
		winEnd := lunar.Date{Year: year, Month: time.February, Day: 20}
		if cny.Before(winStart) || cny.After(winEnd) {
			t.Errorf("CNY %d = %s outside Jan 21 - Feb 20", year, cny)
		}
	}
}

func TestSolarToLunar_Chinese(t *testing.T) {
	ld, err := SolarToLunar(lunar.MustDate("2024-02-14"), lunar.Chinese)
	if err != nil {
		t.Fatalf("SolarToLunar: %v", err)
	}
	if ld.Year != 2024 || ld.Month != 1 || ld.Day != 10 {
		t.Fatalf("2024-02-14 = lunar %d-%02d-%02d, want 2024-01-10", ld.Year, ld.Month, ld.Day)
	}
	// New Year's Day itself.
	nyd, err := SolarToLunar(lunar.MustDate("2024-02-05"), lunar.Chinese)
	if err != nil {
		t.Fatalf("SolarToLunar: %v", err)
	}
	if nyd.Month != 1 || nyd.Day != 1 {
		t.Fatalf("CNY day = lunar month %d day %d, want 1/1", nyd.Month, nyd.Day)
	}
	// The day before belongs to the previous lunar year.
	eve, err := SolarToLunar(lunar.MustDate("2024-02-04"), lunar.Chinese)
	if err != nil {
		t.Fatalf("SolarToLunar: %v", err)
	}
	if eve.Year != 2023 {
		t.Fatalf("CNY eve in lunar year %d, want 2023", eve.Year)
	}
}

func TestSolarToLunar_Islamic(t *testing.T) {
	// Civil (tabular) Hijri: 2024-02-14 is 4 Shaban 1445.
	ld, err := SolarToLunar(lunar.MustDate("2024-02-14"), lunar.Islamic)
	if err != nil {
		t.Fatalf("SolarToLunar: %v", err)
	}
	if ld.Year != 1445 || ld.Month != 8 || ld.Day != 4 {
		t.Fatalf("hijri = %d-%02d-%02d, want 1445-08-04", ld.Year, ld.Month, ld.Day)
	}
	if ld.MonthName != "Shaban" {
		t.Fatalf("month name = %q, want Shaban", ld.MonthName)
	}
}

func TestSolarToLunar_Hindu(t *testing.T) {
	// Before Chaitra the date belongs to the previous Vikram Samvat year.
	ld, err := SolarToLunar(lunar.MustDate("2024-02-14"), lunar.Hindu)
	if err != nil {
		t.Fatalf("SolarToLunar: %v", err)
	}
	if ld.Year != 2080 {
		t.Fatalf("vikram samvat year = %d, want 2080", ld.Year)
	}
	if ld.Month < 1 || ld.Month > 12 || ld.Day < 1 || ld.Day > 30 {
		t.Fatalf("hindu date out of range: %+v", ld)
	}
	if ld.MonthName == "" {
		t.Fatalf("hindu month name missing")
	}
}

func TestSolarToLunar_WesternRejected(t *testing.T) {
	if _, err := SolarToLunar(lunar.MustDate("2024-02-14"), lunar.Western); !errors.Is(err, lunar.ErrUnsupportedCulture) {
		t.Fatalf("western conversion: want ErrUnsupportedCulture, got %v", err)
	}
	if _, err := SolarToLunar(lunar.MustDate("2024-02-14"), lunar.Culture("mayan")); !errors.Is(err, lunar.ErrUnsupportedCulture) {
		t.Fatalf("unknown culture: want ErrUnsupportedCulture, got %v", err)
	}
}

func TestLunarToSolar_RoundTrip(t *testing.T) {
	for _, culture := range []lunar.Culture{lunar.Chinese, lunar.Islamic, lunar.Hindu} {
		for _, s := range []string{"2024-02-14", "2024-06-21", "2023-11-08", "2025-01-03"} {
			d := lunar.MustDate(s)
			ld, err := SolarToLunar(d, culture)
			if err != nil {
				t.Fatalf("%s %s forward: %v", culture, s, err)
			}
			back, err := LunarToSolar(ld)
			if err != nil {
				t.Fatalf("%s %s inverse: %v", culture, s, err)
			}
			// Approximate forward mappings can collide on capped days, so
			// the round trip may land one day off.
			if diff := d.DaysUntil(back); diff < -1 || diff > 1 {
				t.Errorf("%s round trip %s -> %+v -> %s drifted %d days", culture, s, ld, back, diff)
			}
		}
	}
}

func TestLunarToSolar_Validation(t *testing.T) {
	bad := []LunarDate{
		{Culture: lunar.Chinese, Year: 2024, Month: 13, Day: 1},
		{Culture: lunar.Chinese, Year: 2024, Month: 0, Day: 1},
		{Culture: lunar.Islamic, Year: 1445, Month: 8, Day: 31},
		{Culture: lunar.Hindu, Year: 2080, Month: 5, Day: 0},
	}
	for _, ld := range bad {
		if _, err := LunarToSolar(ld); !errors.Is(err, lunar.ErrInvalidDate) {
			t.Errorf("LunarToSolar(%+v): want ErrInvalidDate, got %v", ld, err)
		}
	}
	if _, err := LunarToSolar(LunarDate{Culture: lunar.Western, Year: 2024, Month: 1, Day: 1}); !errors.Is(err, lunar.ErrUnsupportedCulture) {
		t.Fatalf("western inverse: want ErrUnsupportedCulture, got %v", err)
	}
}

func TestZodiacYear_NewYearBoundary(t *testing.T) {
	// The animal changes at Chinese New Year, not January 1.
	if got := ZodiacYear(lunar.MustDate("2024-02-04")); got != "Rabbit" {
		t.Fatalf("day before CNY 2024 = %q, want Rabbit", got)
	}
	if got := ZodiacYear(lunar.MustDate("2024-02-05")); got != "Dragon" {
		t.Fatalf("CNY 2024 = %q, want Dragon", got)
	}
	if got := ZodiacYear(lunar.MustDate("2024-08-15")); got != "Dragon" {
		t.Fatalf("mid 2024 = %q, want Dragon", got)
	}
}

func TestBranchAccessors_WrapAndCopy(t *testing.T) {
	if BranchHours(0) != "23:00-01:00" {
		t.Fatalf("branch 0 hours = %q", BranchHours(0))
	}
	if BranchHours(12) != BranchHours(0) || BranchHours(-1) != BranchHours(11) {
		t.Fatalf("branch hour index does not wrap")
	}
	dirs := BranchDirections(0)
	dirs[0] = "mutated"
	if BranchDirections(0)[0] == "mutated" {
		t.Fatalf("BranchDirections returned shared backing array")
	}
}

func TestAnimalElement(t *testing.T) {
	cases := map[string]string{
		"Rat":    ElementWater,
		"Tiger":  ElementWood,
		"Snake":  ElementFire,
		"Monkey": ElementMetal,
		"Dog":    ElementEarth,
	}
	for animal, want := range cases {
		if got := AnimalElement(animal); got != want {
			t.Errorf("AnimalElement(%q) = %q, want %q", animal, got, want)
		}
	}
	if AnimalElement("Unicorn") != "" {
		t.Fatalf("unknown animal should map to empty element")
	}
}
