// Package convert maps solar (Gregorian) dates to culture-specific lunar
// representations and derives zodiac attributions. All conversions are
// traditional approximations: Chinese and Hindu months come from synodic
// new-moon boundaries, the Islamic calendar uses the fixed civil 30-year
// cycle, and results may differ from observational calendars by a day or
// two. The inverse direction is a bounded search over the forward mapping.
package convert

import (
	"fmt"
	"math"
	"time"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
	"github.com/AngusHsu/lunar-mcp-server/lunar/astro"
)

// sexagenaryEpochOffset calibrates day cycles so 2000-01-01 gets sexagenary
// index 54 (stem 4, branch 6).
const sexagenaryEpochOffset = 54

// inverseSearchBound limits the lunar→solar search to ±40 day-steps around
// the initial estimate.
const inverseSearchBound = 40

// LunarDate is a culture-tagged lunar representation of a solar date.
type LunarDate struct {
	Culture     lunar.Culture `json:"culture"`
	Year        int           `json:"year"`
	Month       int           `json:"month"`
	Day         int           `json:"day"`
	IsLeapMonth bool          `json:"is_leap_month,omitempty"`
	MonthName   string        `json:"month_name,omitempty"`
}

// SolarToLunar converts a solar date into the lunar calendar of the given
// culture. Western has no lunar representation and is rejected.
func SolarToLunar(d lunar.Date, culture lunar.Culture) (LunarDate, error) {
	switch culture {
	case lunar.Chinese:
		return chineseFromSolar(d), nil
	case lunar.Islamic:
		return hijriFromSolar(d), nil
	case lunar.Hindu:
		return hinduFromSolar(d), nil
	case lunar.Western:
		return LunarDate{}, fmt.Errorf("%w: western calendar is solar", lunar.ErrUnsupportedCulture)
	}
	return LunarDate{}, fmt.Errorf("%w: %q", lunar.ErrUnsupportedCulture, culture)
}

// LunarToSolar inverts SolarToLunar by a bounded outward search from an
// initial estimate. Because the forward mapping is approximate there is no
// closed-form inverse; non-convergence within the bound is ErrConversion.
func LunarToSolar(ld LunarDate) (lunar.Date, error) {
	if ld.Month < 1 || ld.Month > 12 || ld.Day < 1 || ld.Day > 30 {
		return lunar.Date{}, fmt.Errorf("%w: lunar month/day out of range", lunar.ErrInvalidDate)
	}
	estimate, err := initialEstimate(ld)
	if err != nil {
		return lunar.Date{}, err
	}
	for step := 0; step <= inverseSearchBound; step++ {
		for _, offset := range []int{step, -step} {
			candidate := estimate.AddDays(offset)
			got, convErr := SolarToLunar(candidate, ld.Culture)
			if convErr != nil {
				return lunar.Date{}, convErr
			}
			if got.Year == ld.Year && got.Month == ld.Month && got.Day == ld.Day {
				return candidate, nil
			}
			if step == 0 {
				break
			}
		}
	}
	return lunar.Date{}, fmt.Errorf("%w: no solar date matches %s %d-%02d-%02d within %d steps",
		lunar.ErrConversion, ld.Culture, ld.Year, ld.Month, ld.Day, inverseSearchBound)
}

func initialEstimate(ld LunarDate) (lunar.Date, error) {
	switch ld.Culture {
	case lunar.Chinese:
		cny := ChineseNewYear(ld.Year)
		days := int(float64(ld.Month-1)*astro.SynodicPeriod) + ld.Day - 1
		return cny.AddDays(days), nil
	case lunar.Islamic:
		return hijriToSolarEstimate(ld.Year, ld.Month, ld.Day), nil
	case lunar.Hindu:
		gregorianYear := ld.Year - vikramSamvatOffset
		start := hinduNewYear(gregorianYear)
		days := int(float64(ld.Month-1)*astro.SynodicPeriod) + ld.Day - 1
		return start.AddDays(days), nil
	case lunar.Western:
		return lunar.Date{}, fmt.Errorf("%w: western calendar is solar", lunar.ErrUnsupportedCulture)
	}
	return lunar.Date{}, fmt.Errorf("%w: %q", lunar.ErrUnsupportedCulture, ld.Culture)
}

// newMoonBefore returns the most recent day on or before d whose moon age
// wrapped, i.e. the first day of the current lunar month.
func newMoonBefore(d lunar.Date) lunar.Date {
	return d.AddDays(-int(math.Floor(astro.MoonAge(d))))
}

// firstNewMoonIn scans [start, end] for the first day whose age wrapped
// relative to the previous day.
func firstNewMoonIn(start, end lunar.Date) lunar.Date {
	for d := start; !d.After(end); d = d.AddDays(1) {
		if astro.MoonAge(d) < astro.MoonAge(d.AddDays(-1)) {
			return d
		}
	}
	return start
}

// ChineseNewYear approximates the lunar new year of a Gregorian year as the
// first new-moon day in the traditional Jan 21 – Feb 20 window.
func ChineseNewYear(year int) lunar.Date {
	return firstNewMoonIn(
		lunar.Date{Year: year, Month: time.January, Day: 21},
		lunar.Date{Year: year, Month: time.February, Day: 20},
	)
}

func chineseFromSolar(d lunar.Date) LunarDate {
	lunarYear := d.Year
	cny := ChineseNewYear(d.Year)
	if d.Before(cny) {
		lunarYear = d.Year - 1
		cny = ChineseNewYear(lunarYear)
	}
	monthStart := newMoonBefore(d)
	months := int(math.Round((astro.DayCount(monthStart) - astro.DayCount(cny)) / astro.SynodicPeriod))
	month := months + 1
	leap := false
	if month > 12 {
		// A 13th month in the lunar year is reported as an intercalary
		// twelfth month under this approximation.
		month = 12
		leap = true
	}
	if month < 1 {
		month = 1
	}
	day := cappedLunarDay(d)
	return LunarDate{Culture: lunar.Chinese, Year: lunarYear, Month: month, Day: day, IsLeapMonth: leap}
}

func cappedLunarDay(d lunar.Date) int {
	day := int(math.Floor(astro.MoonAge(d))) + 1
	if day > 30 {
		day = 30
	}
	return day
}

// hijriEpochJDN is the Julian Day Number offset of the civil (tabular)
// Islamic calendar epoch used by the standard conversion formulas.
const hijriEpochJDN = 1948440

func gregorianJDN(d lunar.Date) int {
	y, m, day := d.Year, int(d.Month), d.Day
	return day - 32075 +
		1461*(y+4800+(m-14)/12)/4 +
		367*(m-2-(m-14)/12*12)/12 -
		3*((y+4900+(m-14)/12)/100)/4
}

// hijriFromSolar applies the standard civil Hijri formula (30-year cycle,
// 11 leap years). Results differ from observational Hijri by up to ±1–2
// days; that is the documented approximation, not a defect.
func hijriFromSolar(d lunar.Date) LunarDate {
	l := gregorianJDN(d) - hijriEpochJDN + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
	month := (24 * l) / 709
	day := l - (709*month)/24
	year := 30*n + j - 30
	return LunarDate{
		Culture:   lunar.Islamic,
		Year:      year,
		Month:     month,
		Day:       day,
		MonthName: hijriMonthNames[clampIndex(month-1, 12)],
	}
}

func hijriToSolarEstimate(year, month, day int) lunar.Date {
	jdn := (11*year+3)/30 + 354*year + 30*month - (month-1)/2 + day + hijriEpochJDN - 385
	y, m, d := jdnToGregorian(jdn)
	return lunar.Date{Year: y, Month: time.Month(m), Day: d}
}

func jdnToGregorian(jdn int) (year, month, day int) {
	l := jdn + 68569
	n := 4 * l / 146097
	l = l - (146097*n+3)/4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	k := l - 2447*j/80
	l = j / 11
	j = j + 2 - 12*l
	i = 100*(n-49) + i + l
	return i, j, k
}

// vikramSamvatOffset converts a Gregorian year to the Vikram Samvat year
// number used for the Hindu approximation.
const vikramSamvatOffset = 57

// hinduNewYear approximates the start of the Hindu lunar year (Chaitra) as
// the first new-moon day in the Mar 15 – Apr 15 window.
func hinduNewYear(year int) lunar.Date {
	return firstNewMoonIn(
		lunar.Date{Year: year, Month: time.March, Day: 15},
		lunar.Date{Year: year, Month: time.April, Day: 15},
	)
}

func hinduFromSolar(d lunar.Date) LunarDate {
	gregorianYear := d.Year
	start := hinduNewYear(d.Year)
	if d.Before(start) {
		gregorianYear = d.Year - 1
		start = hinduNewYear(gregorianYear)
	}
	monthStart := newMoonBefore(d)
	months := int(math.Round((astro.DayCount(monthStart) - astro.DayCount(start)) / astro.SynodicPeriod))
	month := months + 1
	if month > 12 {
		month = 12
	}
	if month < 1 {
		month = 1
	}
	return LunarDate{
		Culture:   lunar.Hindu,
		Year:      gregorianYear + vikramSamvatOffset,
		Month:     month,
		Day:       cappedLunarDay(d),
		MonthName: hinduMonthNames[clampIndex(month-1, 12)],
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// DayInfo is the sexagenary attribution of a single day, derived purely
// from the day-count offset from the fixed epoch.
type DayInfo struct {
	HeavenlyStem  string `json:"heavenly_stem"`
	EarthlyBranch string `json:"earthly_branch"`
	StemIndex     int    `json:"-"`
	BranchIndex   int    `json:"-"`
	FiveElement   string `json:"five_element"`
	ZodiacDay     string `json:"zodiac_day"`
	SexagenaryDay int    `json:"sexagenary_day"`
	LunarMansion  string `json:"lunar_mansion"`
}

// ChineseDayInfo derives the stem, branch, element, day animal, sexagenary
// index, and lunar mansion for a date. All cycles use floored modulo so
// dates before the epoch stay in range.
func ChineseDayInfo(d lunar.Date) DayInfo {
	offset := int(astro.DayCount(d)) + sexagenaryEpochOffset
	stem := flooredModInt(offset, 10)
	branch := flooredModInt(offset, 12)
	return DayInfo{
		HeavenlyStem:  heavenlyStems[stem],
		EarthlyBranch: earthlyBranches[branch],
		StemIndex:     stem,
		BranchIndex:   branch,
		FiveElement:   FiveElements[stem/2],
		ZodiacDay:     zodiacAnimals[branch],
		SexagenaryDay: flooredModInt(offset, 60),
		LunarMansion:  lunarMansions[flooredModInt(offset, 28)],
	}
}

func flooredModInt(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// BranchHours returns the double-hour window of a branch index.
func BranchHours(branch int) string { return branchHours[flooredModInt(branch, 12)] }

// BranchDirections returns the compass directions of a branch index.
func BranchDirections(branch int) []string {
	dirs := branchDirections[flooredModInt(branch, 12)]
	out := make([]string, len(dirs))
	copy(out, dirs)
	return out
}

// AnimalElement returns the intrinsic element of a zodiac animal.
func AnimalElement(animal string) string {
	for i, a := range zodiacAnimals {
		if a == animal {
			return branchElements[i]
		}
	}
	return ""
}

// ZodiacYear returns the Chinese zodiac animal of the lunar year containing
// the date. The year boundary is Chinese New Year, not January 1.
func ZodiacYear(d lunar.Date) string {
	ld := chineseFromSolar(d)
	return zodiacAnimals[flooredModInt(ld.Year-4, 12)]
}

// yearStemIndex returns the heavenly-stem index of a lunar year number.
func yearStemIndex(lunarYear int) int { return flooredModInt(lunarYear-4, 10) }
