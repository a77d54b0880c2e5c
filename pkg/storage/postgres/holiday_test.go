package postgres_test

import (
	"context"
	"leavebot/pkg/workday"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Holidays(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("empty calendar", func(t *testing.T) {
		holidays, err := pgSQL.Holidays(ctx)
		require.NoError(t, err)
		require.Empty(t, holidays)

		n, err := pgSQL.UpsertHolidays(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("upsert and list ordered", func(t *testing.T) {
		n, err := pgSQL.UpsertHolidays(ctx,
			workday.Holiday{Date: workday.MustParseDate("2025-04-14"), Name: "Songkran"},
			workday.Holiday{Date: workday.MustParseDate("2025-01-01"), Name: "New Year"},
		)
		require.NoError(t, err)
		require.EqualValues(t, 2, n)

		holidays, err := pgSQL.Holidays(ctx)
		require.NoError(t, err)
		require.Equal(t, []workday.Holiday{
			{Date: workday.MustParseDate("2025-01-01"), Name: "New Year"},
			{Date: workday.MustParseDate("2025-04-14"), Name: "Songkran"},
		}, holidays)
	})

	t.Run("upsert replaces name and tolerates duplicates", func(t *testing.T) {
		_, err := pgSQL.UpsertHolidays(ctx,
			workday.Holiday{Date: workday.MustParseDate("2025-01-01"), Name: "x"},
			workday.Holiday{Date: workday.MustParseDate("2025-01-01"), Name: "New Year's Day"},
		)
		require.NoError(t, err)

		holidays, err := pgSQL.Holidays(ctx)
		require.NoError(t, err)
		require.Len(t, holidays, 2)
		require.Equal(t, "New Year's Day", holidays[0].Name)
	})
}
