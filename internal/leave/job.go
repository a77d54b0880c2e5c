package leave

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// PushJobArgs contains the arguments of the job delivering a leave
// confirmation. The job is inserted together with the leave request it
// belongs to.
type PushJobArgs struct {
	// LeaveRequestID identifies the stored request whose status the job updates.
	LeaveRequestID uuid.UUID `json:"leaveRequestId"`
	// To is the recipient user.
	To string `json:"to"`
	// Text is the rendered confirmation.
	Text string `json:"text"`
	// RetryKey is sent with every attempt so the platform delivers the message
	// at most once.
	RetryKey uuid.UUID `json:"retryKey"`

	// maxAttempts configures the maximum number of times River should try the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the push worker.
func (args PushJobArgs) Kind() string { return "PushLeaveConfirmation" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args PushJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
