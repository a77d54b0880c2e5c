package leave

import (
	"fmt"
	"leavebot/pkg/domain"
	"leavebot/pkg/serrors"
	"strings"
)

// Submission is a leave request as posted by the form.
type Submission struct {
	UserID    string
	Type      string
	StartDate string
	EndDate   string
	// Reason is optional.
	Reason string
}

// MissingFieldsMessage is the client-facing message for an incomplete submission.
const MissingFieldsMessage = "missing fields"

// Validate reports serrors.ErrBadRequest when any required field is blank.
func (s Submission) Validate() error {
	for _, v := range []string{s.UserID, s.Type, s.StartDate, s.EndDate} {
		if strings.TrimSpace(v) == "" {
			return serrors.With(serrors.ErrBadRequest, MissingFieldsMessage)
		}
	}

	return nil
}

// ReasonPlaceholder replaces an empty reason in confirmations.
const ReasonPlaceholder = "-"

// ConfirmationText renders the push message confirming req.
func ConfirmationText(req domain.LeaveRequest) string {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = ReasonPlaceholder
	}

	return fmt.Sprintf("คำขอลาได้รับแล้ว\nประเภท: %s\nช่วง: %s → %s (%d วันทำงาน)\nเหตุผล: %s",
		req.Type, req.StartDate, req.EndDate, req.Days, reason)
}
