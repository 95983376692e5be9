package apperrors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("invalid input")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidState      = errors.New("invalid state")
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrConflict          = errors.New("conflict")
)
