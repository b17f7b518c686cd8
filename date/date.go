// Package date provides a day-granularity date used for schedule
// timelines.
package date

import (
	"fmt"
	"time"
)

// Format is the ISO-8601 representation used for parsing and printing.
const Format = "2006-01-02"

// Date represents a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
// Out-of-range components roll over, as in time.Date.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Parse reads an ISO-8601 date ("2026-01-31").
func Parse(s string) (Date, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return New(t.Date()), nil
}

// time returns a time.Time that is a canonical representation of that
// day (at midnight UTC).
func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// AddMonths returns the date n months later, normalized.
func (d Date) AddMonths(n int) Date { return New(d.y, d.m+time.Month(n), d.d) }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// String returns the ISO-8601 representation of the date.
func (d Date) String() string { return d.time().Format(Format) }
