package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"taproom/internal/core/apperror"
)

// SQLSTATE codes the service reacts to.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeQueryCanceled        = "57014"
)

// classifyError maps a failed transaction onto an AppError. Errors that
// already carry an AppError and errors that never reached the server pass
// through unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.AsAppError(err); ok {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return apperror.NewConflict("Concurrent modification, retry the request").WithCause(err)
		case codeQueryCanceled:
			return apperror.NewTimeout(err)
		default:
			return apperror.NewDatabase(err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.NewTimeout(err)
	}
	return err
}
