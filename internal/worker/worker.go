// Package worker runs the river queue client that delivers queued leave
// confirmations.
package worker

import (
	"context"
	"fmt"
	"leavebot/internal/config"
	"leavebot/pkg/logger"
	"leavebot/pkg/messenger"
	"leavebot/pkg/metrics"
	"leavebot/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the queue client.
type Options struct {
	// MaxWorkers is the number of jobs worked concurrently.
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxWorkers: cfg.Worker.MaxWorkers}
}

// Deps are the collaborators of the push worker.
type Deps struct {
	Client      messenger.Client
	Storage     storage.LeaveRequestStorage
	Instruments *metrics.Instruments
}

// Start creates and starts a river client working push jobs from dbPool.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewPushWorker(deps.Client, deps.Storage, deps.Instruments))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
