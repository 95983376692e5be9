package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/wastebank/ledger/internal/middleware"
	"github.com/wastebank/ledger/internal/models"
)

type withdrawalRequest struct {
	CustomerID int64           `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
}

func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	officerID, ok := middleware.GetOfficerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req withdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.svc.Withdrawals.Create(r.Context(), req.CustomerID, officerID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, withdrawal)
}

func (h *Handler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Withdrawals.Approve(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Withdrawals.Reject(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	var (
		withdrawals []models.Withdrawal
		err         error
	)

	switch {
	case r.URL.Query().Get("status") == "pending":
		withdrawals, err = h.svc.Withdrawals.GetPendingWithdrawals(r.Context())
	case r.URL.Query().Get("customer_id") != "":
		var customerID int64
		customerID, err = strconv.ParseInt(r.URL.Query().Get("customer_id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid customer_id", http.StatusBadRequest)
			return
		}
		withdrawals, err = h.svc.Withdrawals.GetCustomerWithdrawals(r.Context(), customerID)
	default:
		withdrawals, err = h.svc.Withdrawals.GetWithdrawals(r.Context())
	}

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, withdrawals)
}
