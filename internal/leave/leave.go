package leave

import (
	"context"
	"leavebot/pkg/domain"
	"leavebot/pkg/logger"
	"leavebot/pkg/metrics"
	"leavebot/pkg/workday"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const tracerName = "leavebot/internal/leave"

// service is the concrete implementation of the Service interface.
type service struct {
	// calendar counts business days against the configured holidays.
	calendar *workday.Calendar
	// notifier delivers the confirmation message.
	notifier Notifier
	// instruments records submission counters.
	instruments *metrics.Instruments
	// now is replaced in tests.
	now func() time.Time
}

// Submit validates the submission, computes its business days and notifies
// the requester. Once validation passes Submit always succeeds: invalid or
// inverted date ranges count as zero days, and notification failures are only
// logged.
func (s *service) Submit(ctx context.Context, sub Submission) (*domain.LeaveRequest, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "leave.Submit")
	defer span.End()

	if err := sub.Validate(); err != nil {
		s.instruments.LeaveSubmissions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "rejected")))
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	now := s.now().UTC()
	req := domain.LeaveRequest{
		ID:                 domain.LeaveRequestID(uuid.New()),
		UserID:             domain.UserID(strings.TrimSpace(sub.UserID)),
		Type:               strings.TrimSpace(sub.Type),
		StartDate:          strings.TrimSpace(sub.StartDate),
		EndDate:            strings.TrimSpace(sub.EndDate),
		Reason:             strings.TrimSpace(sub.Reason),
		NotificationStatus: domain.NotificationStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	req.Days = s.calendar.BusinessDays(req.StartDate, req.EndDate)

	ctx = logger.WithFields(ctx,
		zap.String("leaveRequestID", req.ID.String()),
		zap.String("userID", req.UserID.String()))
	span.SetAttributes(attribute.Int("leave.days", req.Days))

	if err := s.notifier.Notify(ctx, req); err != nil {
		logger.Error(ctx, "could not notify leave request", zap.Error(err))
		span.RecordError(err)
	}

	s.instruments.LeaveSubmissions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "accepted")))
	logger.Info(ctx, "leave request accepted",
		zap.String("type", req.Type),
		zap.String("startDate", req.StartDate),
		zap.String("endDate", req.EndDate),
		zap.Int("days", req.Days))

	return &req, nil
}

// New creates a Service counting days on calendar and confirming through
// notifier. A nil instruments records nothing.
func New(calendar *workday.Calendar, notifier Notifier, instruments *metrics.Instruments) Service {
	if instruments == nil {
		instruments = metrics.Noop()
	}

	return &service{
		calendar:    calendar,
		notifier:    notifier,
		instruments: instruments,
		now:         time.Now,
	}
}
