// Package leave accepts leave submissions from the LIFF form, counts their
// business days and confirms them to the requester through a Notifier.
package leave

import (
	"context"
	"leavebot/pkg/domain"
)

//go:generate mockgen -package mockleave -source=interface.go -destination=mock/mockleave.go *
type Service interface {
	// Submit validates sub, counts its business days and notifies the
	// requester. Notification failures are logged and do not fail the call.
	Submit(ctx context.Context, sub Submission) (*domain.LeaveRequest, error)
}

// Notifier delivers the confirmation for an accepted leave request.
type Notifier interface {
	Notify(ctx context.Context, req domain.LeaveRequest) error
}
