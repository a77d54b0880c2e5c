package postgres

import (
	"context"
	"fmt"
	"leavebot/pkg/domain"
	"leavebot/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	leaveRequestsTable = "leave_requests"
)

// StoreLeaveRequest inserts req. A zero ID is replaced with a random one.
func (p *PgSQL) StoreLeaveRequest(ctx context.Context, req domain.LeaveRequest) (*domain.LeaveRequest, error) {
	if uuid.UUID(req.ID) == uuid.Nil {
		req.ID = domain.LeaveRequestID(uuid.New())
	}

	var row PgLeaveRequest
	row.FromDomain(req)

	var stored PgLeaveRequest
	if _, err := p.Builder.Insert(leaveRequestsTable).
		Rows(row).
		Returning(&PgLeaveRequest{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store leave request into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

// UpdateLeaveRequestByID applies updates to a single leave request.
// Attempts is incremented by 1 and updated_at is set. With a Failed status and
// MaxAttempts > 0 the status only becomes Failed once attempts reach
// MaxAttempts.
func (p *PgSQL) UpdateLeaveRequestByID(ctx context.Context,
	id domain.LeaveRequestID,
	updates storage.LeaveRequestUpdates) (*domain.LeaveRequest, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}
	switch {
	case updates.Status == domain.NotificationStatusFailed && updates.MaxAttempts > 0:
		rec["notification_status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE notification_status END",
			updates.MaxAttempts, string(domain.NotificationStatusFailed))
	case updates.Status != "":
		rec["notification_status"] = string(updates.Status)
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgLeaveRequest
	found, err := p.Builder.Update(leaveRequestsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgLeaveRequest{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update leave request in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LeaveRequestByID(ctx context.Context, id domain.LeaveRequestID) (*domain.LeaveRequest, error) {
	var row PgLeaveRequest
	found, err := p.Builder.From(leaveRequestsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch leave request by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
