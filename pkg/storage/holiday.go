package storage

import (
	"context"

	"leavebot/pkg/workday"
)

// HolidayStorage persists the organisation's holiday calendar.
type HolidayStorage interface {
	// UpsertHolidays inserts holidays, replacing the name of dates that already
	// exist. It returns the number of affected rows.
	UpsertHolidays(ctx context.Context, holidays ...workday.Holiday) (int64, error)
	// Holidays returns all stored holidays ordered by date.
	Holidays(ctx context.Context) ([]workday.Holiday, error)
}
