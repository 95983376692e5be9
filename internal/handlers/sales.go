package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

type saleRequest struct {
	CollectorID int64           `json:"collector_id"`
	WasteTypeID int64           `json:"waste_type_id"`
	Weight      decimal.Decimal `json:"weight"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

func (h *Handler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	sale, err := h.svc.Sales.RecordSale(r.Context(), req.CollectorID, req.WasteTypeID, req.Weight, req.SalePrice)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sale)
}

func (h *Handler) GetSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.Sales.GetSales(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}
