package main

import (
	"context"
	"errors"
	"leavebot/internal/api"
	"leavebot/internal/api/handler/v1handler"
	"leavebot/internal/bot"
	"leavebot/internal/classifier"
	"leavebot/internal/config"
	"leavebot/internal/leave"
	"leavebot/internal/worker"
	"leavebot/pkg/logger"
	"leavebot/pkg/messenger/line"
	"leavebot/pkg/metrics"
	"leavebot/pkg/workday"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupMetrics(ctx context.Context) *metrics.Instruments {
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(mp)

	instruments, err := metrics.NewInstruments(mp)
	if err != nil {
		logger.Fatal(ctx, "could not create metric instruments", zap.Error(err))
	}

	return instruments
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the webhook server and, with a database, the delivery worker",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := cfg.Validate(); err != nil {
				logger.Fatal(ctx, "invalid configuration", zap.Error(err))
			}

			instruments := setupMetrics(ctx)

			client, err := line.New(&http.Client{Timeout: cfg.HTTP.RequestTimeout},
				cfg.LINE.ChannelAccessToken, cfg.LINE.APIEndpoint)
			if err != nil {
				logger.Fatal(ctx, "could not create messaging client", zap.Error(err))
			}

			holidays, err := cfg.LoadHolidays()
			if err != nil {
				logger.Fatal(ctx, "could not load holidays", zap.Error(err))
			}

			notifierOptions := leave.NewNotifierOptions(cfg)
			var notifier leave.Notifier = leave.NewDirectNotifier(client, notifierOptions, instruments)
			stopWorker := func(context.Context) {}

			if cfg.Database.Enabled {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				stored, err := strg.Holidays(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not read stored holidays", zap.Error(err))
				}
				holidays = append(holidays, stored...)

				riverClient, err := worker.Start(ctx, strg.Pool, worker.Deps{
					Client:      client,
					Storage:     strg,
					Instruments: instruments,
				}, worker.NewOptions(cfg))
				if err != nil {
					logger.Fatal(ctx, "could not start worker", zap.Error(err))
				}
				stopWorker = func(ctx context.Context) {
					logger.Info(ctx, "stopping worker...")
					if err := riverClient.Stop(ctx); err != nil {
						logger.Error(ctx, "could not stop worker", zap.Error(err))
					}
				}

				notifier = leave.NewQueueNotifier(strg, notifierOptions)
			}

			calendar := workday.NewCalendar(workday.NewHolidaySet(workday.HolidayDates(holidays)...))
			logger.Info(ctx, "holiday calendar loaded", zap.Int("holidays", calendar.Holidays().Len()))

			dispatcher, err := bot.New(client, bot.Options{
				BaseURL: cfg.BaseURL,
				Keywords: classifier.Keywords{
					Balance:      cfg.Keywords.Balance,
					Leave:        cfg.Keywords.Leave,
					RequestLeave: cfg.Keywords.RequestLeave,
				},
			}, instruments)
			if err != nil {
				logger.Fatal(ctx, "could not create bot", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Dispatcher: dispatcher,
					Leave:      leave.New(calendar, notifier, instruments),
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
		},
	}

	return cmd
}
