// Package domain contains the core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date at day granularity, with no time-of-day or
// timezone component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the current date from the local wall clock. Year, month and
// day are taken directly from local time so the date never drifts across a
// midnight boundary the way a UTC conversion would.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{Year: y, Month: m, Day: d}
}

// DateOf returns the calendar date of t in local time.
func DateOf(t time.Time) Date {
	y, m, d := t.In(time.Local).Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// Shift returns the date n days after d (or before, for negative n), with
// exact calendar arithmetic across month, year and leap boundaries. Noon is
// used as the anchor so daylight-saving transitions cannot skip a day.
func (d Date) Shift(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC)
	y, m, dd := t.Date()
	return Date{Year: y, Month: m, Day: dd}
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is chronologically before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is chronologically after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// IsFuture reports whether d is strictly after today, at day granularity.
func (d Date) IsFuture() bool { return d.After(Today()) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Label formats d as MM.DD.YY for display, always zero-padded.
func (d Date) Label() string {
	return fmt.Sprintf("%02d.%02d.%02d", d.Month, d.Day, d.Year%100)
}

// MarshalText implements encoding.TextMarshaler using the YYYY-MM-DD form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
