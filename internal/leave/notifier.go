package leave

import (
	"context"
	"errors"
	"fmt"
	"leavebot/internal/config"
	"leavebot/pkg/domain"
	"leavebot/pkg/logger"
	"leavebot/pkg/messenger"
	"leavebot/pkg/metrics"
	"leavebot/pkg/serrors"
	"leavebot/pkg/storage"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// NotifierOptions configure confirmation delivery. These settings are
// typically derived from application configuration.
type NotifierOptions struct {
	// MaxAttempts is the maximum number of push attempts, including the first.
	MaxAttempts int
	// InitialInterval is the delay before the first retry.
	InitialInterval time.Duration
	// MaxInterval caps the delay between retries.
	MaxInterval time.Duration
}

// NewNotifierOptions constructs a NotifierOptions value from the provided application config.
func NewNotifierOptions(cfg *config.Config) NotifierOptions {
	return NotifierOptions{
		MaxAttempts:     cfg.Notifier.MaxAttempts,
		InitialInterval: cfg.Notifier.InitialInterval,
		MaxInterval:     cfg.Notifier.MaxInterval,
	}
}

func (o NotifierOptions) maxAttempts() int {
	if o.MaxAttempts < 1 {
		return 1
	}

	return o.MaxAttempts
}

// DirectNotifier pushes the confirmation inline, retrying transient failures
// with exponential backoff. It is used when no database is configured.
type DirectNotifier struct {
	client      messenger.Client
	options     NotifierOptions
	instruments *metrics.Instruments
}

// NewDirectNotifier creates a DirectNotifier pushing through client.
func NewDirectNotifier(client messenger.Client, options NotifierOptions, instruments *metrics.Instruments) *DirectNotifier {
	if instruments == nil {
		instruments = metrics.Noop()
	}

	return &DirectNotifier{client: client, options: options, instruments: instruments}
}

// Notify pushes the confirmation for req. Rejected requests are not retried.
// Every attempt carries the same retry key.
func (n *DirectNotifier) Notify(ctx context.Context, req domain.LeaveRequest) error {
	retryKey := uuid.NewString()
	msg := &messaging_api.TextMessage{Text: ConfirmationText(req)}

	eb := backoff.NewExponentialBackOff()
	if n.options.InitialInterval > 0 {
		eb.InitialInterval = n.options.InitialInterval
	}
	if n.options.MaxInterval > 0 {
		eb.MaxInterval = n.options.MaxInterval
	}
	eb.MaxElapsedTime = 0
	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(n.options.maxAttempts()-1)), ctx) //nolint: gosec

	attempt := 0
	op := func() error {
		attempt++
		start := time.Now()
		err := n.client.PushMessage(ctx, req.UserID.String(), retryKey, msg)
		n.instruments.PushLatency.Record(ctx, time.Since(start).Seconds())
		if err == nil {
			n.instruments.Pushes.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "sent")))

			return nil
		}
		if errors.Is(err, serrors.ErrBadRequest) {
			n.instruments.Pushes.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "failed")))

			return backoff.Permanent(err)
		}
		n.instruments.Pushes.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "retry")))

		return err
	}
	notify := func(err error, wait time.Duration) {
		logger.Warn(ctx, "push attempt failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return fmt.Errorf("could not push confirmation after %d attempts: %w", attempt, err)
	}

	return nil
}

// QueueNotifier stores the leave request and enqueues a push job in one
// transaction. The push worker delivers the message and records the outcome.
type QueueNotifier struct {
	storage storage.Storage
	options NotifierOptions
}

// NewQueueNotifier creates a QueueNotifier backed by storage.
func NewQueueNotifier(storage storage.Storage, options NotifierOptions) *QueueNotifier {
	return &QueueNotifier{storage: storage, options: options}
}

func (n *QueueNotifier) Notify(ctx context.Context, req domain.LeaveRequest) error {
	if err := n.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreLeaveRequest(ctx, req)
		if err != nil {
			return fmt.Errorf("could not store leave request: %w", err)
		}

		if _, err := tx.AddJob(ctx, PushJobArgs{
			LeaveRequestID: uuid.UUID(stored.ID),
			To:             stored.UserID.String(),
			Text:           ConfirmationText(*stored),
			RetryKey:       uuid.New(),
			maxAttempts:    n.options.maxAttempts(),
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not enqueue confirmation: %w", err)
	}

	return nil
}

// Ensure notifiers conform to the Notifier interface at compile time.
var (
	_ Notifier = (*DirectNotifier)(nil)
	_ Notifier = (*QueueNotifier)(nil)
)
