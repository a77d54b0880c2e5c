// Package storage declares the persistence used when the bot runs with a
// database: the holiday calendar, submitted leave requests and the job queue
// delivering their confirmations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every capability; both plain and transactional handles
// provide it.
type AllStorage interface {
	HolidayStorage
	LeaveRequestStorage
	JobStorage
}

// TxStorage is a handle bound to one transaction. It must not be used after
// Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle owning the connection pool.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction that is committed when cb returns nil
	// and rolled back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
