package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wastebank/ledger/internal/models"
	"github.com/wastebank/ledger/internal/utils"
)

func (h *Handler) TransactionReport(w http.ResponseWriter, r *http.Request) {
	start, end, err := utils.ParseDateRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.svc.Reports.TransactionReport(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []models.TransactionEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) CustomerSummary(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	summary, err := h.svc.Reports.CustomerSummary(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) AllCustomerSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.Reports.AllCustomerSummaries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Dashboard.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
