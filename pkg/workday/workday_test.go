package workday_test

import (
	"leavebot/pkg/serrors"
	"leavebot/pkg/workday"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, values ...string) workday.HolidaySet {
	t.Helper()
	set, err := workday.ParseHolidaySet(values)
	require.NoError(t, err)

	return set
}

func TestBetweenScenarios(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		holidays []string
		want     int
	}{
		{name: "monday to friday", start: "2025-01-06", end: "2025-01-10", want: 5},
		{name: "weekend only", start: "2025-01-04", end: "2025-01-05", want: 0},
		{name: "single holiday", start: "2025-01-01", end: "2025-01-01", holidays: []string{"2025-01-01"}, want: 0},
		{name: "inverted range", start: "2025-01-10", end: "2025-01-06", want: 0},
		{name: "unparsable start", start: "not-a-date", end: "2025-01-10", want: 0},
		{name: "unparsable end", start: "2025-01-06", end: "", want: 0},
		{name: "impossible calendar date", start: "2025-02-30", end: "2025-03-03", want: 0},
		{name: "single weekday", start: "2025-01-08", end: "2025-01-08", want: 1},
		{name: "single saturday", start: "2025-01-11", end: "2025-01-11", want: 0},
		{name: "two full weeks", start: "2025-01-06", end: "2025-01-19", want: 10},
		{name: "friday to monday", start: "2025-01-10", end: "2025-01-13", want: 2},
		{name: "holiday on weekend ignored", start: "2025-01-06", end: "2025-01-12", holidays: []string{"2025-01-11"}, want: 5},
		{name: "holiday outside range ignored", start: "2025-01-06", end: "2025-01-10", holidays: []string{"2025-01-13"}, want: 5},
		{name: "two holidays in range", start: "2025-04-07", end: "2025-04-18", holidays: []string{"2025-04-14", "2025-04-15"}, want: 8},
		{name: "leap day", start: "2024-02-28", end: "2024-03-01", want: 3},
		{name: "across year end", start: "2024-12-30", end: "2025-01-03", holidays: []string{"2025-01-01"}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := workday.Between(tt.start, tt.end, mustSet(t, tt.holidays...))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCountErrors(t *testing.T) {
	_, err := workday.CountStrings("2025-01-10", "2025-01-06", workday.HolidaySet{})
	require.ErrorIs(t, err, workday.ErrInvalidRange)

	_, err = workday.CountStrings("not-a-date", "2025-01-10", workday.HolidaySet{})
	require.ErrorIs(t, err, workday.ErrInvalidDate)
	require.Equal(t, workday.ErrInvalidDate, serrors.KindOf(err))

	_, err = workday.Count(workday.Date{}, workday.MustParseDate("2025-01-10"), workday.HolidaySet{})
	require.ErrorIs(t, err, workday.ErrInvalidDate)
}

// naiveCount walks the range one day at a time.
func naiveCount(start, end workday.Date, holidays workday.HolidaySet) int {
	n := 0
	for d := start; !d.After(end); d = d.Next() {
		if !d.IsWeekend() && !holidays.Contains(d) {
			n++
		}
	}

	return n
}

func TestCountMatchesDayByDay(t *testing.T) {
	holidays := mustSet(t, "2025-01-01", "2025-01-29", "2025-02-12", "2025-04-06", "2025-04-14", "2025-05-01")
	base := workday.MustParseDate("2024-12-25")

	for offset := 0; offset < 21; offset++ {
		start := base.AddDays(offset)
		for length := 0; length < 140; length += 3 {
			end := start.AddDays(length)

			for _, set := range []workday.HolidaySet{{}, holidays} {
				got, err := workday.Count(start, end, set)
				require.NoError(t, err)
				require.Equal(t, naiveCount(start, end, set), got, "range %s..%s", start, end)
			}
		}
	}
}

func TestCountWithoutHolidaysIsDaysMinusWeekends(t *testing.T) {
	start := workday.MustParseDate("2025-03-05")
	for length := 0; length < 60; length++ {
		end := start.AddDays(length)

		weekends := 0
		for d := start; !d.After(end); d = d.Next() {
			if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
				weekends++
			}
		}

		got, err := workday.Count(start, end, workday.HolidaySet{})
		require.NoError(t, err)
		require.Equal(t, length+1-weekends, got)
	}
}

func TestAddingHolidayDecreasesCountByOne(t *testing.T) {
	start := workday.MustParseDate("2025-01-06")
	end := workday.MustParseDate("2025-01-26")
	before, err := workday.Count(start, end, workday.HolidaySet{})
	require.NoError(t, err)

	for d := start; !d.After(end); d = d.Next() {
		after, err := workday.Count(start, end, workday.NewHolidaySet(d))
		require.NoError(t, err)

		if d.IsWeekend() {
			require.Equal(t, before, after, "weekend holiday %s changed count", d)
		} else {
			require.Equal(t, before-1, after, "weekday holiday %s", d)
		}
	}
}

func TestCountLargeRangeSmallHolidaySet(t *testing.T) {
	start := workday.MustParseDate("2000-01-01")
	end := workday.MustParseDate("2099-12-31")
	holidays := mustSet(t, "2025-01-01", "2025-01-04")

	got, err := workday.Count(start, end, holidays)
	require.NoError(t, err)
	require.Equal(t, naiveCount(start, end, holidays), got)
}

func TestCountIsPureAndConcurrent(t *testing.T) {
	holidays := mustSet(t, "2025-01-01")
	before := holidays.Dates()

	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = workday.Between("2024-12-30", "2025-01-10", holidays)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		require.Equal(t, 9, r)
	}
	require.Equal(t, before, holidays.Dates())
}

func TestCalendar(t *testing.T) {
	cal := workday.NewCalendar(mustSet(t, "2025-01-08"))

	require.Equal(t, 4, cal.BusinessDays("2025-01-06", "2025-01-10"))
	require.Equal(t, 0, cal.BusinessDays("2025-01-10", "2025-01-06"))
	require.Equal(t, 1, cal.Holidays().Len())

	n, err := cal.Count(workday.MustParseDate("2025-01-06"), workday.MustParseDate("2025-01-07"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.True(t, cal.IsBusinessDay(workday.MustParseDate("2025-01-07")))
	require.False(t, cal.IsBusinessDay(workday.MustParseDate("2025-01-08")))
	require.False(t, cal.IsBusinessDay(workday.MustParseDate("2025-01-11")))
	require.False(t, cal.IsBusinessDay(workday.Date{}))
}
