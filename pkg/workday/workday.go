// Package workday counts business days: calendar days that are neither a
// Saturday, a Sunday nor a configured holiday.
//
// Count is the strict form and reports malformed or inverted input as an
// error. Between and Calendar.BusinessDays are lenient and report every
// invalid input as zero days.
package workday

import (
	"time"

	"leavebot/pkg/serrors"
)

var (
	// ErrInvalidDate is returned for strings that are not YYYY-MM-DD calendar
	// dates and for zero Dates.
	ErrInvalidDate = serrors.NewKind("INVALID_DATE")
	// ErrInvalidRange is returned when the end of a range is before its start.
	ErrInvalidRange = serrors.NewKind("INVALID_RANGE")
)

// Count returns the number of business days in the inclusive range
// [start, end].
func Count(start, end Date, holidays HolidaySet) (int, error) {
	if start.IsZero() || end.IsZero() {
		return 0, serrors.With(ErrInvalidDate, "zero date in range %q..%q", start, end)
	}
	if end.Before(start) {
		return 0, serrors.With(ErrInvalidRange, "end %s is before start %s", end, start)
	}

	total := daysBetween(start, end) + 1
	count := weekdaysIn(start, total)

	// Iterate whichever is smaller: the holiday set or the range itself.
	if int64(holidays.Len()) < total {
		for d := range holidays.dates {
			if !d.Before(start) && !d.After(end) && !d.IsWeekend() {
				count--
			}
		}
	} else {
		for d := start; !d.After(end); d = d.Next() {
			if !d.IsWeekend() && holidays.Contains(d) {
				count--
			}
		}
	}

	return int(count), nil
}

// CountStrings parses start and end as YYYY-MM-DD and counts the business days
// between them.
func CountStrings(start, end string, holidays HolidaySet) (int, error) {
	s, err := ParseDate(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return 0, err
	}

	return Count(s, e, holidays)
}

// Between is the lenient form of CountStrings: unparsable dates and inverted
// ranges yield 0.
func Between(start, end string, holidays HolidaySet) int {
	n, err := CountStrings(start, end, holidays)
	if err != nil {
		return 0
	}

	return n
}

// weekdaysIn returns the number of Monday..Friday days among total
// consecutive days beginning at start.
func weekdaysIn(start Date, total int64) int64 {
	count := (total / 7) * 5

	wd := start.Weekday()
	for i := int64(0); i < total%7; i++ {
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
		wd = (wd + 1) % 7
	}

	return count
}

// Calendar counts business days against a fixed holiday set. It is built once
// at startup and shared between goroutines.
type Calendar struct {
	holidays HolidaySet
}

// NewCalendar returns a Calendar excluding holidays.
func NewCalendar(holidays HolidaySet) *Calendar {
	return &Calendar{holidays: holidays}
}

// Holidays returns the calendar's holiday set.
func (c *Calendar) Holidays() HolidaySet {
	return c.holidays
}

// Count is Count with the calendar's holidays.
func (c *Calendar) Count(start, end Date) (int, error) {
	return Count(start, end, c.holidays)
}

// BusinessDays is Between with the calendar's holidays.
func (c *Calendar) BusinessDays(start, end string) int {
	return Between(start, end, c.holidays)
}

// IsBusinessDay reports whether d is counted as a business day.
func (c *Calendar) IsBusinessDay(d Date) bool {
	return !d.IsZero() && !d.IsWeekend() && !c.holidays.Contains(d)
}
