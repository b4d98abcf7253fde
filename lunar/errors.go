package lunar

import "errors"

// ErrInvalidDate is returned when a date string cannot be parsed or does not
// name a real Gregorian calendar date.
var ErrInvalidDate = errors.New("invalid date")

// ErrUnsupportedCulture is returned when an operation does not support the
// requested calendar culture.
var ErrUnsupportedCulture = errors.New("unsupported culture")

// ErrRangeTooLarge is returned by range-scanning operations when the date
// range is inverted or exceeds the sanity bound.
var ErrRangeTooLarge = errors.New("date range too large")

// ErrConversion is returned when the bounded inverse calendar search fails
// to converge on a matching solar date.
var ErrConversion = errors.New("calendar conversion failed")

// IsInvalidDate reports whether err is a date validation error.
func IsInvalidDate(err error) bool { return errors.Is(err, ErrInvalidDate) }
