package storage

import (
	"context"

	"leavebot/pkg/domain"
)

// LeaveRequestUpdates describes the changes applied to a leave request after
// a push attempt.
type LeaveRequestUpdates struct {
	// Status is the new notification status.
	Status domain.NotificationStatus
	// LastError, when provided, sets the last error text. An empty string value
	// clears it.
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed once the attempts after increment reach this
	// threshold; before that the request stays Pending. A value <= 0 disables
	// this guard.
	MaxAttempts int
}

// LeaveRequestStorage stores submitted leave requests and their notification
// state.
type LeaveRequestStorage interface {
	// StoreLeaveRequest inserts req and returns the stored row including
	// generated fields.
	StoreLeaveRequest(ctx context.Context, req domain.LeaveRequest) (*domain.LeaveRequest, error)
	// UpdateLeaveRequestByID applies updates to the request identified by id,
	// incrementing attempts. It returns nil when the request does not exist.
	UpdateLeaveRequestByID(ctx context.Context,
		id domain.LeaveRequestID,
		updates LeaveRequestUpdates) (*domain.LeaveRequest, error)
	// LeaveRequestByID returns the request identified by id, or nil.
	LeaveRequestByID(ctx context.Context, id domain.LeaveRequestID) (*domain.LeaveRequest, error)
}
