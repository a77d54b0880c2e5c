package storage

import "errors"

// Transaction misuse errors.
var (
	// ErrAlreadyInTx is returned by Begin on a transactional handle; nested
	// transactions are not supported.
	ErrAlreadyInTx = errors.New("storage: already in a transaction")
	// ErrNotInTx is returned by Commit and Rollback on a non-transactional handle.
	ErrNotInTx = errors.New("storage: not in a transaction")
)
