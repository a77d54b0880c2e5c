package main

import (
	"fmt"
	"leavebot/internal/config"
	"leavebot/pkg/logger"
	"leavebot/pkg/workday"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// holidaysCommand groups the holiday calendar subcommands.
func holidaysCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Manages the holiday calendar",
	}
	cmd.AddCommand(holidaysListCommand(cfg), holidaysImportCommand(cfg))

	return cmd
}

func holidaysListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Prints the configured and stored holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			holidays, err := cfg.LoadHolidays()
			if err != nil {
				return err //nolint: wrapcheck
			}
			if cfg.Database.Enabled {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				stored, err := strg.Holidays(ctx)
				if err != nil {
					return fmt.Errorf("could not read stored holidays: %w", err)
				}
				holidays = append(holidays, stored...)
			}

			names := make(map[workday.Date]string, len(holidays))
			for _, h := range holidays {
				if names[h.Date] == "" {
					names[h.Date] = h.Name
				}
			}
			set := workday.NewHolidaySet(workday.HolidayDates(holidays)...)
			for _, d := range set.Dates() {
				line := d.String()
				if names[d] != "" {
					line += " " + names[d]
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err //nolint: wrapcheck
				}
			}

			return nil
		},
	}
}

func holidaysImportCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Stores the holidays of FILE in the database",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			holidays, err := workday.LoadHolidayFile(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not read holidays file", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			n, err := strg.UpsertHolidays(ctx, holidays...)
			if err != nil {
				logger.Fatal(ctx, "could not store holidays", zap.Error(err))
			}
			logger.Info(ctx, "holidays imported", zap.Int64("rows", n), zap.Int("parsed", len(holidays)))
		},
	}
}
