package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/wastebank/ledger/internal/middleware"
)

type depositRequest struct {
	CustomerID  int64           `json:"customer_id"`
	WasteTypeID int64           `json:"waste_type_id"`
	Weight      decimal.Decimal `json:"weight"`
}

func (h *Handler) RecordDeposit(w http.ResponseWriter, r *http.Request) {
	officerID, ok := middleware.GetOfficerID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	deposit, err := h.svc.Deposits.RecordDeposit(r.Context(), req.CustomerID, officerID, req.WasteTypeID, req.Weight)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, deposit)
}

func (h *Handler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("customer_id"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid customer_id", http.StatusBadRequest)
			return
		}
		deposits, err := h.svc.Deposits.GetCustomerDeposits(r.Context(), customerID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deposits)
		return
	}

	deposits, err := h.svc.Deposits.GetDeposits(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deposits)
}
