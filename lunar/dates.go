// Package lunar holds the value types shared by every engine: civil dates,
// calendar cultures, observer locations, and the error kinds recovered at
// the tool boundary. All types are immutable values; nothing here keeps
// state between calls.
package lunar

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all date arguments and results.
const DateLayout = "2006-01-02"

// Date is a proleptic Gregorian calendar date. It is the canonical exchange
// format at every engine boundary; lunar representations are derived from it
// on demand.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string into a Date. Anything time.Parse
// rejects, or a year outside 1..9999, yields ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if t.Year() < 1 || t.Year() > 9999 {
		return Date{}, fmt.Errorf("%w: year out of range in %q", ErrInvalidDate, s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// MustDate is a test/demo helper; it panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf converts a time.Time to its civil date in UTC.
func DateOf(t time.Time) Date {
	u := t.UTC()
	return Date{Year: u.Year(), Month: u.Month(), Day: u.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return other.Before(d) }

// DaysUntil returns the signed day count from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}
