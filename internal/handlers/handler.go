package handlers

import (
	"github.com/wastebank/ledger/internal/service"
)

type Services struct {
	Deposits    service.DepositService
	Withdrawals service.WithdrawalService
	Sales       service.SaleService
	Reports     service.ReportService
	Dashboard   service.DashboardService
	Customers   service.CustomerService
	Officers    service.OfficerService
	WasteTypes  service.WasteTypeService
	Collectors  service.CollectorService
}

type Handler struct {
	svc Services
}

func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}
