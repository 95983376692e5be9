package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/logger"
	"go.uber.org/zap"
)

// mapError translates driver-level failures into the shared taxonomy.
// Unique violations and serialization failures both surface as
// ErrConflict; callers retry the whole unit of work where that makes
// sense. Anything unrecognized is treated as a transient store failure.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.Code)
		case "23514", "23503": // check_violation, foreign_key_violation
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, pgErr.ConstraintName)
		}
	}

	return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
}

func rollbackTx(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Log.Error("rollback error")
	}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Log.Error("failed to close rows", zap.Error(err))
	}
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
