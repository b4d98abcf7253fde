package lunar

import (
	"testing"
	"time"
)

func TestParseDate_OK(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year != 2024 || d.Month != time.February || d.Day != 29 {
		t.Fatalf("parsed wrong date: %+v", d)
	}
	if got := d.String(); got != "2024-02-29" {
		t.Fatalf("String() = %q, want %q", got, "2024-02-29")
	}
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"not-a-date",
		"2024-13-01",
		"2024-02-30",
		"2023-02-29", // not a leap year
		"15/01/2024",
		"2024-1-5", // layout requires zero padding
	}
	for _, in := range cases {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q): expected error", in)
		} else if !IsInvalidDate(err) {
			t.Errorf("ParseDate(%q): error %v is not ErrInvalidDate", in, err)
		}
	}
}

func TestDate_AddDays(t *testing.T) {
	cases := []struct {
		start string
		n     int
		want  string
	}{
		{"2024-01-31", 1, "2024-02-01"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2023-12-31", 1, "2024-01-01"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-01-15", 0, "2024-01-15"},
	}
	for _, c := range cases {
		if got := MustDate(c.start).AddDays(c.n); got.String() != c.want {
			t.Errorf("%s + %d days = %s, want %s", c.start, c.n, got, c.want)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	a := MustDate("2024-01-15")
	b := MustDate("2024-01-16")
	if !a.Before(b) || b.Before(a) {
		t.Fatalf("Before broken for %s vs %s", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Fatalf("After broken for %s vs %s", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Fatalf("a date must not be before or after itself")
	}
}

func TestDate_DaysUntil(t *testing.T) {
	a := MustDate("2024-01-01")
	b := MustDate("2024-12-31")
	if got := a.DaysUntil(b); got != 365 { // 2024 is a leap year
		t.Fatalf("DaysUntil = %d, want 365", got)
	}
	if got := b.DaysUntil(a); got != -365 {
		t.Fatalf("reverse DaysUntil = %d, want -365", got)
	}
	if got := a.DaysUntil(a); got != 0 {
		t.Fatalf("DaysUntil self = %d, want 0", got)
	}
}
