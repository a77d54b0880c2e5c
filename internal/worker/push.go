package worker

import (
	"context"
	"errors"
	"fmt"
	"leavebot/internal/leave"
	"leavebot/pkg/domain"
	"leavebot/pkg/logger"
	"leavebot/pkg/messenger"
	"leavebot/pkg/metrics"
	"leavebot/pkg/serrors"
	"leavebot/pkg/storage"
	"time"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	// RateLimitSnooze is how long a throttled push waits before trying again.
	RateLimitSnooze = time.Minute

	retryBase = 2 * time.Second
	retryMax  = 5 * time.Minute
	timeout   = 30 * time.Second
)

// PushWorker is a River worker delivering leave confirmations.
//
// Outcomes are mapped to River actions:
//   - success marks the request Sent
//   - a rejected push (serrors.ErrBadRequest) marks the request Failed and cancels the job
//   - a throttled push (serrors.ErrRateLimited) snoozes the job
//   - other errors are retried; the request becomes Failed on the last attempt
type PushWorker struct {
	river.WorkerDefaults[leave.PushJobArgs]

	client      messenger.Client
	storage     storage.LeaveRequestStorage
	instruments *metrics.Instruments
}

// NewPushWorker constructs a PushWorker. A nil instruments records nothing.
func NewPushWorker(client messenger.Client,
	storage storage.LeaveRequestStorage,
	instruments *metrics.Instruments) *PushWorker {
	if instruments == nil {
		instruments = metrics.Noop()
	}

	return &PushWorker{client: client, storage: storage, instruments: instruments}
}

// Work pushes the job's confirmation and records the outcome on the leave request.
func (w *PushWorker) Work(ctx context.Context, job *river.Job[leave.PushJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("leaveRequestID", job.Args.LeaveRequestID.String()))
	id := domain.LeaveRequestID(job.Args.LeaveRequestID)

	start := time.Now()
	err := w.client.PushMessage(ctx, job.Args.To, job.Args.RetryKey.String(),
		&messaging_api.TextMessage{Text: job.Args.Text})
	w.instruments.PushLatency.Record(ctx, time.Since(start).Seconds())

	if err == nil {
		w.record(ctx, "sent")
		cleared := ""
		w.update(ctx, id, storage.LeaveRequestUpdates{
			Status:    domain.NotificationStatusSent,
			LastError: &cleared,
		})
		logger.Info(ctx, "leave confirmation pushed")

		return nil
	}

	lastErr := err.Error()
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		w.record(ctx, "failed")
		w.update(ctx, id, storage.LeaveRequestUpdates{
			Status:    domain.NotificationStatusFailed,
			LastError: &lastErr,
		})
		logger.Error(ctx, "leave confirmation rejected", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	case errors.Is(err, serrors.ErrRateLimited):
		w.record(ctx, "snoozed")
		w.update(ctx, id, storage.LeaveRequestUpdates{LastError: &lastErr})
		logger.Warn(ctx, "leave confirmation rate limited", zap.Error(err))

		return river.JobSnooze(RateLimitSnooze) //nolint: wrapcheck
	default:
		w.record(ctx, "retry")
		w.update(ctx, id, storage.LeaveRequestUpdates{
			Status:      domain.NotificationStatusFailed,
			LastError:   &lastErr,
			MaxAttempts: job.MaxAttempts,
		})
		logger.Error(ctx, "could not push leave confirmation", zap.Error(err))

		return fmt.Errorf("could not push leave confirmation: %w", err)
	}
}

// NextRetry schedules retries with capped exponential backoff.
func (w *PushWorker) NextRetry(job *river.Job[leave.PushJobArgs]) time.Time {
	return time.Now().Add(RetryDelay(job.Attempt))
}

// Timeout bounds a single push attempt.
func (w *PushWorker) Timeout(*river.Job[leave.PushJobArgs]) time.Duration {
	return timeout
}

// RetryDelay returns the wait before retrying after the given attempt:
// 2s, 4s, 8s, ... capped at five minutes.
func RetryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := retryBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= retryMax {
			return retryMax
		}
	}

	return d
}

func (w *PushWorker) record(ctx context.Context, result string) {
	w.instruments.Pushes.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// update records the push outcome. A storage failure does not fail the job:
// the message was already handed to the platform.
func (w *PushWorker) update(ctx context.Context, id domain.LeaveRequestID, updates storage.LeaveRequestUpdates) {
	if _, err := w.storage.UpdateLeaveRequestByID(ctx, id, updates); err != nil {
		logger.Warn(ctx, "could not update leave request", zap.Error(err))
	}
}
