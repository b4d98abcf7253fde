// Package astro implements the traditional moon-phase approximations: day
// counts from a fixed epoch, synodic moon age, illumination fraction, phase
// classification, and the moon's zodiac sector. These are deliberately the
// classical closed-form approximations, not an ephemeris; errors of a day or
// two against observation are expected and documented.
package astro

import (
	"fmt"
	"math"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
)

// SynodicPeriod is the mean interval between successive new moons, in days.
const SynodicPeriod = 29.530588853

// epochJDN is the Julian Day Number of 2000-01-01, the system's day zero.
const epochJDN = 2451545

// julianDayNumber converts a Gregorian date to its Julian Day Number using
// the USNO integer formula. Valid for the proleptic Gregorian calendar;
// relies on Go's truncating integer division exactly like the original.
func julianDayNumber(year, month, day int) int {
	return day - 32075 +
		1461*(year+4800+(month-14)/12)/4 +
		367*(month-2-(month-14)/12*12)/12 -
		3*((year+4900+(month-14)/12)/100)/4
}

// jdnToDate inverts julianDayNumber.
func jdnToDate(jdn int) (year, month, day int) {
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

// DayCount returns the days elapsed since 2000-01-01. Integer-valued for
// date-only input; negative before the epoch.
func DayCount(d lunar.Date) float64 {
	return float64(julianDayNumber(d.Year, int(d.Month), d.Day) - epochJDN)
}

// flooredMod returns x mod m normalized to [0, m). Needed for pre-epoch
// dates where the native remainder is negative.
func flooredMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// MoonAge returns the moon's age in days, in [0, SynodicPeriod).
func MoonAge(d lunar.Date) float64 {
	return flooredMod(DayCount(d), SynodicPeriod)
}

// Illumination returns the illuminated fraction of the moon's disc for a
// given age, in [0, 1]. New moon is ~0, full moon ~1.
func Illumination(age float64) float64 {
	return (1 - math.Cos(2*math.Pi*age/SynodicPeriod)) / 2
}

// Phase names, in waxing-to-waning order around the synodic cycle.
const (
	PhaseNewMoon        = "New Moon"
	PhaseWaxingCrescent = "Waxing Crescent"
	PhaseFirstQuarter   = "First Quarter"
	PhaseWaxingGibbous  = "Waxing Gibbous"
	PhaseFullMoon       = "Full Moon"
	PhaseWaningGibbous  = "Waning Gibbous"
	PhaseLastQuarter    = "Last Quarter"
	PhaseWaningCrescent = "Waning Crescent"
)

// PhaseNames lists the eight phases in cycle order.
var PhaseNames = []string{
	PhaseNewMoon, PhaseWaxingCrescent, PhaseFirstQuarter, PhaseWaxingGibbous,
	PhaseFullMoon, PhaseWaningGibbous, PhaseLastQuarter, PhaseWaningCrescent,
}

// PhaseName classifies a moon age into one of the eight phases using equal
// age bins. Illumination takes precedence at the boundaries: a nearly dark
// moon is always New and a nearly full one is always Full, regardless of
// which bin the age falls in.
func PhaseName(illumination, age float64) string {
	if illumination < 0.02 {
		return PhaseNewMoon
	}
	if illumination > 0.97 {
		return PhaseFullMoon
	}
	bin := int(flooredMod(age, SynodicPeriod) / (SynodicPeriod / 8))
	if bin > 7 {
		bin = 7
	}
	return PhaseNames[bin]
}

// EclipticLongitude returns the moon's approximate ecliptic longitude in
// degrees [0, 360), from a linear motion model over the synodic cycle.
func EclipticLongitude(d lunar.Date) float64 {
	return flooredMod(MoonAge(d)/SynodicPeriod*360, 360)
}

// zodiacSigns in ecliptic order from 0° Aries.
var zodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// MoonZodiacSign maps an ecliptic longitude onto one of twelve 30° sectors.
func MoonZodiacSign(longitude float64) string {
	idx := int(flooredMod(longitude, 360) / 30)
	if idx > 11 {
		idx = 11
	}
	return zodiacSigns[idx]
}

// LunarDay returns the traditional lunar day number in [1, 30].
func LunarDay(d lunar.Date) int {
	day := int(math.Floor(MoonAge(d))) + 1
	if day > 30 {
		day = 30
	}
	return day
}

// MoonPhase is a full sample of the moon's state on one date. Computed fresh
// per query, never persisted.
type MoonPhase struct {
	Date              lunar.Date     `json:"-"`
	PhaseName         string         `json:"phase_name"`
	Illumination      float64        `json:"illumination"`
	MoonAge           float64        `json:"moon_age"`
	LunarDay          int            `json:"lunar_day"`
	EclipticLongitude float64        `json:"ecliptic_longitude"`
	ZodiacSign        string         `json:"zodiac_sign"`
	RiseTime          string         `json:"rise_time"`
	SetTime           string         `json:"set_time"`
	Influence         Influence      `json:"influence"`
	Location          lunar.Location `json:"-"`
}

// MoonPhaseAt computes the full moon-phase sample for a date. The location
// is recorded for the caller but does not change the approximation.
func MoonPhaseAt(d lunar.Date, loc lunar.Location) MoonPhase {
	age := MoonAge(d)
	illum := Illumination(age)
	name := PhaseName(illum, age)
	longitude := EclipticLongitude(d)
	rise, set := riseSetTimes(age)
	return MoonPhase{
		Date:              d,
		PhaseName:         name,
		Illumination:      round3(illum),
		MoonAge:           round2(age),
		LunarDay:          LunarDay(d),
		EclipticLongitude: round2(longitude),
		ZodiacSign:        MoonZodiacSign(longitude),
		RiseTime:          rise,
		SetTime:           set,
		Influence:         InfluenceOf(name),
		Location:          loc,
	}
}

// riseSetTimes estimates moonrise and moonset by the traditional rule that
// the moon rises about 50 minutes later each lunar day, anchored at 06:00
// rise / 18:00 set on the new moon.
func riseSetTimes(age float64) (rise, set string) {
	shift := age * 24 * 60 / SynodicPeriod // minutes later than new moon
	riseMin := int(flooredMod(6*60+shift, 24*60))
	setMin := int(flooredMod(18*60+shift, 24*60))
	return fmt.Sprintf("%02d:%02d", riseMin/60, riseMin%60),
		fmt.Sprintf("%02d:%02d", setMin/60, setMin%60)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
