package service

import (
	"errors"

	"github.com/wastebank/ledger/internal/apperrors"
)

// maxConflictRetries bounds transparent retries of a balance-mutating
// unit of work that lost an optimistic-concurrency race. After the
// last attempt the conflict surfaces to the caller.
const maxConflictRetries = 3

func withConflictRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = fn()
		if !errors.Is(err, apperrors.ErrConflict) {
			return err
		}
	}
	return err
}
