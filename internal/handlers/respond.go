package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response json", zap.Error(err))
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Every kind
// the services return reaches the caller as a distinct status.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrValidation):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
	case errors.Is(err, apperrors.ErrInvalidState):
		http.Error(w, "invalid state", http.StatusConflict)
	case errors.Is(err, apperrors.ErrConflict):
		http.Error(w, "conflict, retry the operation", http.StatusConflict)
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		logger.Log.Error("store unavailable", zap.Error(err))
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("unhandled error", zap.Error(err))
	}
}
