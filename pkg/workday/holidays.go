package workday

import (
	"bufio"
	"io"
	"os"
	"slices"
	"strings"

	"leavebot/pkg/serrors"
)

// Holiday is a named non-working date.
type Holiday struct {
	Date Date
	Name string
}

// HolidaySet is an immutable set of dates excluded from the business-day
// count. The zero value is an empty set and is safe for concurrent use.
type HolidaySet struct {
	dates map[Date]struct{}
}

// NewHolidaySet builds a set from dates. The input slice is not retained.
// Zero Dates are ignored.
func NewHolidaySet(dates ...Date) HolidaySet {
	set := HolidaySet{dates: make(map[Date]struct{}, len(dates))}
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		set.dates[d] = struct{}{}
	}

	return set
}

// ParseHolidaySet parses YYYY-MM-DD strings into a set. Blank entries are
// skipped; the first malformed entry is returned as an error.
func ParseHolidaySet(values []string) (HolidaySet, error) {
	dates := make([]Date, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		d, err := ParseDate(v)
		if err != nil {
			return HolidaySet{}, err
		}
		dates = append(dates, d)
	}

	return NewHolidaySet(dates...), nil
}

// HolidayDates returns the dates of holidays, in input order.
func HolidayDates(holidays []Holiday) []Date {
	dates := make([]Date, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}

	return dates
}

// Contains reports whether d is a holiday.
func (s HolidaySet) Contains(d Date) bool {
	_, ok := s.dates[d]

	return ok
}

// Len returns the number of holidays in the set.
func (s HolidaySet) Len() int {
	return len(s.dates)
}

// Dates returns the holidays in ascending order. The returned slice is a copy.
func (s HolidaySet) Dates() []Date {
	dates := make([]Date, 0, len(s.dates))
	for d := range s.dates {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})

	return dates
}

// Union returns a new set holding the holidays of s and other.
func (s HolidaySet) Union(other HolidaySet) HolidaySet {
	out := HolidaySet{dates: make(map[Date]struct{}, len(s.dates)+len(other.dates))}
	for d := range s.dates {
		out.dates[d] = struct{}{}
	}
	for d := range other.dates {
		out.dates[d] = struct{}{}
	}

	return out
}

// ReadHolidays reads holidays in the text format
//
//	# comment
//	2025-01-01 New Year's Day
//	2025-04-13
//
// one date per line, optionally followed by a name. Blank lines and lines
// starting with '#' are ignored.
func ReadHolidays(r io.Reader) ([]Holiday, error) {
	var holidays []Holiday

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		dateStr, name, _ := strings.Cut(line, " ")
		d, err := ParseDate(dateStr)
		if err != nil {
			return nil, serrors.Wrap(ErrInvalidDate, err, "line %d", lineNo)
		}
		holidays = append(holidays, Holiday{Date: d, Name: strings.TrimSpace(name)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return holidays, nil
}

// LoadHolidayFile reads holidays from the file at path. See ReadHolidays for
// the format.
func LoadHolidayFile(path string) ([]Holiday, error) {
	f, err := os.Open(path) //nolint: gosec
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	defer func() { _ = f.Close() }()

	return ReadHolidays(f)
}
