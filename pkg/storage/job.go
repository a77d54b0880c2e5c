package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs next to the data they refer to.
//
//	_, err := tx.AddJob(ctx, leave.PushJobArgs{LeaveRequestID: id}, nil)
type JobStorage interface {
	// AddJob enqueues args. On a transactional handle the job commits or rolls
	// back with the transaction. It reports false when a unique job already
	// existed and nothing was inserted.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
