package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeaveRequestID uniquely identifies a leave request.
// It wraps uuid.UUID to provide type safety at the domain layer.
type LeaveRequestID uuid.UUID

func (id LeaveRequestID) String() string { return uuid.UUID(id).String() }

// NotificationStatus represents the delivery state of the confirmation
// message sent for a leave request.
type NotificationStatus string

const (
	// NotificationStatusPending indicates the confirmation has been enqueued but not delivered yet.
	NotificationStatusPending NotificationStatus = "PENDING"
	// NotificationStatusSent indicates the platform accepted the confirmation.
	NotificationStatusSent NotificationStatus = "SENT"
	// NotificationStatusFailed indicates delivery was given up; see LastError and Attempts for details.
	NotificationStatusFailed NotificationStatus = "FAILED"
)

// LeaveRequest is a submitted leave request together with its computed
// business-day count.
type LeaveRequest struct {
	// ID is the unique identifier of the request.
	ID LeaveRequestID `json:"id"`
	// UserID is the chat user who submitted the request and receives the confirmation.
	UserID UserID `json:"userId"`

	// Type is the free-form leave type chosen in the form (sick, vacation, ...).
	Type string `json:"type"`
	// StartDate and EndDate are the inclusive range as submitted, YYYY-MM-DD.
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	// Reason is optional.
	Reason string `json:"reason,omitempty"`
	// Days is the number of business days in the range.
	Days int `json:"days"`

	NotificationStatus NotificationStatus `json:"notificationStatus"`
	// Attempts is the number of push attempts made so far.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent delivery error, if any.
	LastError string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
