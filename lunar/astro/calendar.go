package astro

import (
	"fmt"
	"time"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
)

// maxScanDays bounds every range-scanning operation.
const maxScanDays = 366

// MoonCalendar computes a per-day moon-phase sample for every day of the
// given month.
func MoonCalendar(month, year int, loc lunar.Location) ([]MoonPhase, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", lunar.ErrInvalidDate, month)
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d", lunar.ErrInvalidDate, year)
	}
	first := lunar.Date{Year: year, Month: time.Month(month), Day: 1}
	out := make([]MoonPhase, 0, 31)
	for d := first; int(d.Month) == month; d = d.AddDays(1) {
		out = append(out, MoonPhaseAt(d, loc))
	}
	return out, nil
}

// PhaseEvent marks a major phase (New, quarters, Full) falling on a date.
type PhaseEvent struct {
	Date     string `json:"date"`
	Phase    string `json:"phase"`
	LunarDay int    `json:"lunar_day"`
}

// quarter boundaries as moon ages, in cycle order.
var majorPhaseAges = []struct {
	age  float64
	name string
}{
	{0, PhaseNewMoon},
	{SynodicPeriod / 4, PhaseFirstQuarter},
	{SynodicPeriod / 2, PhaseFullMoon},
	{3 * SynodicPeriod / 4, PhaseLastQuarter},
}

// PredictPhases scans [start, end] and reports each day on which the moon
// age crosses a major phase boundary. The range is bounded like every other
// scanning operation.
func PredictPhases(start, end lunar.Date) ([]PhaseEvent, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}
	var events []PhaseEvent
	for d := start; !d.After(end); d = d.AddDays(1) {
		prev := MoonAge(d.AddDays(-1))
		cur := MoonAge(d)
		for _, mp := range majorPhaseAges {
			if crossed(prev, cur, mp.age) {
				events = append(events, PhaseEvent{
					Date:     d.String(),
					Phase:    mp.name,
					LunarDay: LunarDay(d),
				})
				break
			}
		}
	}
	return events, nil
}

// crossed reports whether the age moved past the boundary between yesterday
// and today, handling the wrap at the end of the cycle.
func crossed(prev, cur, boundary float64) bool {
	if cur < prev { // wrapped past zero
		return boundary > prev || boundary <= cur
	}
	return prev < boundary && boundary <= cur
}

// ValidateRange enforces the ordering and sanity bound shared by the
// range-scanning operations.
func ValidateRange(start, end lunar.Date) error {
	if end.Before(start) {
		return fmt.Errorf("%w: end %s before start %s", lunar.ErrRangeTooLarge, end, start)
	}
	if days := start.DaysUntil(end); days > maxScanDays {
		return fmt.Errorf("%w: %d days exceeds %d-day bound", lunar.ErrRangeTooLarge, days, maxScanDays)
	}
	return nil
}
