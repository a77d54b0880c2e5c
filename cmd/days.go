package main

import (
	"fmt"
	"leavebot/internal/config"
	"leavebot/pkg/workday"

	"github.com/spf13/cobra"
)

// daysCommand constructs the 'days' subcommand printing the business days
// between two dates using the configured holidays.
func daysCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "days START END",
		Short: "Counts business days between two YYYY-MM-DD dates, inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, _ := cmd.Flags().GetStringSlice("holiday")

			holidays, err := cfg.LoadHolidays()
			if err != nil {
				return err //nolint: wrapcheck
			}
			set, err := workday.ParseHolidaySet(extra)
			if err != nil {
				return err //nolint: wrapcheck
			}
			set = set.Union(workday.NewHolidaySet(workday.HolidayDates(holidays)...))

			n, err := workday.CountStrings(args[0], args[1], set)
			if err != nil {
				return err //nolint: wrapcheck
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)

			return err //nolint: wrapcheck
		},
	}
	cmd.Flags().StringSlice("holiday", nil, "Additional holiday (YYYY-MM-DD), may be repeated")

	return cmd
}
