package postgres

import (
	"database/sql"
	"leavebot/pkg/domain"
	"leavebot/pkg/workday"
	"time"

	"github.com/google/uuid"
)

type PgHoliday struct {
	Date time.Time `db:"date"`
	Name string    `db:"name"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgHoliday) ToDomain() workday.Holiday {
	return workday.Holiday{Date: workday.DateOf(p.Date.UTC()), Name: p.Name}
}

func (p *PgHoliday) FromDomain(h workday.Holiday) {
	*p = PgHoliday{Date: h.Date.Time(), Name: h.Name}
}

type PgLeaveRequest struct {
	ID     uuid.UUID `db:"id"`
	UserID string    `db:"user_id"`

	Type      string `db:"type"`
	StartDate string `db:"start_date"`
	EndDate   string `db:"end_date"`
	Reason    string `db:"reason"`
	Days      int    `db:"days"`

	NotificationStatus string         `db:"notification_status"`
	Attempts           uint           `db:"attempts"   goqu:"skipinsert"`
	LastError          sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgLeaveRequest) ToDomain() *domain.LeaveRequest {
	return &domain.LeaveRequest{
		ID:                 domain.LeaveRequestID(p.ID),
		UserID:             domain.UserID(p.UserID),
		Type:               p.Type,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		Reason:             p.Reason,
		Days:               p.Days,
		NotificationStatus: domain.NotificationStatus(p.NotificationStatus),
		Attempts:           p.Attempts,
		LastError:          p.LastError.String,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt.Time,
	}
}

func (p *PgLeaveRequest) FromDomain(req domain.LeaveRequest) {
	status := req.NotificationStatus
	if status == "" {
		status = domain.NotificationStatusPending
	}

	*p = PgLeaveRequest{
		ID:                 uuid.UUID(req.ID),
		UserID:             string(req.UserID),
		Type:               req.Type,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Reason:             req.Reason,
		Days:               req.Days,
		NotificationStatus: string(status),
		Attempts:           req.Attempts,
		LastError: sql.NullString{
			String: req.LastError,
			Valid:  req.LastError != "",
		},
		CreatedAt: req.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  req.UpdatedAt,
			Valid: !req.UpdatedAt.IsZero(),
		},
	}
}
