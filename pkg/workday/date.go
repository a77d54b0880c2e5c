package workday

import (
	"time"

	"leavebot/pkg/serrors"
)

// Layout is the ISO-8601 calendar date layout accepted by ParseDate.
const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar date with day resolution. It has no time-of-day and no
// location; two Dates are equal when year, month and day are equal, so Date
// can be used as a map key. The zero Date is not a valid calendar date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the Date for the given year, month and day. Out-of-range
// values are normalized the same way time.Date normalizes them, so
// NewDate(2025, 1, 32) is 2025-02-01.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()

	return Date{year: y, month: m, day: d}
}

// ParseDate parses a YYYY-MM-DD string. Strings that are not a real calendar
// date (2025-02-30, 2025-13-01, "not-a-date") are rejected with ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, serrors.Wrap(ErrInvalidDate, err, "invalid date %q", s)
	}

	return DateOf(t), nil
}

// MustParseDate is like ParseDate but panics on error. It is meant for
// constants in tests and static tables.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Year returns the year of d.
func (d Date) Year() int { return d.year }

// Month returns the month of d.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month of d.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return d.AddDays(1)
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.ordinal() < o.ordinal()
}

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool {
	return d.ordinal() > o.ordinal()
}

// Equal reports whether d and o are the same calendar date.
func (d Date) Equal(o Date) bool {
	return d == o
}

// IsWeekend reports whether d is a Saturday or a Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()

	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Time().Format(Layout)
}

// ordinal is the number of days since 1970-01-01. Midnight UTC is always a
// multiple of a day, so the division is exact for dates before 1970 as well.
func (d Date) ordinal() int64 {
	return d.Time().Unix() / secondsPerDay
}

// daysBetween returns the number of calendar days from a to b (b - a).
func daysBetween(a, b Date) int64 {
	return b.ordinal() - a.ordinal()
}
