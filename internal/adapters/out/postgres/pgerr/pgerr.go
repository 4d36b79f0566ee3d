// Package pgerr maps PostgreSQL driver failures onto the error kinds of
// internal/pkg/errs.
package pgerr

import (
	"errors"

	"wholesale/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes reported when a transaction lost a race and may be replayed.
const (
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
	LockNotAvailable     = "55P03"
)

// Translate wraps contention failures in an errs.ConflictError naming operation.
// Other errors, and nil, are returned unchanged.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case SerializationFailure, DeadlockDetected, LockNotAvailable:
			return errs.NewConflictError(operation, err)
		}
	}
	return err
}
