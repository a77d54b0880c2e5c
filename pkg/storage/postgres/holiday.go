package postgres

import (
	"context"
	"fmt"
	"leavebot/pkg/workday"

	"github.com/doug-martin/goqu/v9"
)

const (
	holidaysTable = "holidays"
)

// UpsertHolidays inserts holidays and overwrites the name of dates already
// present.
func (p *PgSQL) UpsertHolidays(ctx context.Context, holidays ...workday.Holiday) (int64, error) {
	if len(holidays) == 0 {
		return 0, nil
	}

	// a single INSERT .. ON CONFLICT cannot touch the same row twice
	seen := make(map[workday.Date]int, len(holidays))
	rows := make([]PgHoliday, 0, len(holidays))
	for _, h := range holidays {
		if i, ok := seen[h.Date]; ok {
			rows[i].FromDomain(h)

			continue
		}
		seen[h.Date] = len(rows)
		var row PgHoliday
		row.FromDomain(h)
		rows = append(rows, row)
	}

	res, err := p.Builder.Insert(holidaysTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("date", goqu.Record{"name": goqu.L("EXCLUDED.name")})).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not upsert holidays into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}

// Holidays returns all holidays ordered by date.
func (p *PgSQL) Holidays(ctx context.Context) ([]workday.Holiday, error) {
	var rows []PgHoliday
	if err := p.Builder.From(holidaysTable).
		Order(goqu.I("date").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch holidays from pg: %w", err)
	}

	out := make([]workday.Holiday, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, nil
}
