package adapters

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// mapTxError joins ErrSerializationFailure onto errors that signal a lost race between transactions,
// independent of which driver produced them.
func mapTxError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && isRetryableState(pgErr.Code) {
		return errors.Join(ErrSerializationFailure, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && isRetryableState(string(pqErr.Code)) {
		return errors.Join(ErrSerializationFailure, err)
	}

	return err
}

func isRetryableState(code string) bool {
	return code == sqlStateSerializationFailure || code == sqlStateDeadlockDetected
}
