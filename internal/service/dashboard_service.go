package service

import (
	"context"

	"github.com/wastebank/ledger/internal/models"
	"github.com/wastebank/ledger/internal/repository"
)

type DashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}

type dashboardService struct {
	customers   repository.CustomerRepository
	officers    repository.OfficerRepository
	wasteTypes  repository.WasteTypeRepository
	deposits    repository.DepositRepository
	withdrawals repository.WithdrawalRepository
	stock       StockService
	profit      ProfitService
}

func NewDashboardService(
	customers repository.CustomerRepository,
	officers repository.OfficerRepository,
	wasteTypes repository.WasteTypeRepository,
	deposits repository.DepositRepository,
	withdrawals repository.WithdrawalRepository,
	stock StockService,
	profit ProfitService,
) DashboardService {
	return &dashboardService{
		customers:   customers,
		officers:    officers,
		wasteTypes:  wasteTypes,
		deposits:    deposits,
		withdrawals: withdrawals,
		stock:       stock,
		profit:      profit,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}
	var err error

	if summary.TotalCustomers, err = s.customers.Count(ctx); err != nil {
		return nil, err
	}
	if summary.TotalOfficers, err = s.officers.Count(ctx); err != nil {
		return nil, err
	}
	if summary.TotalWasteTypes, err = s.wasteTypes.Count(ctx); err != nil {
		return nil, err
	}
	if summary.TotalDeposits, err = s.deposits.Count(ctx); err != nil {
		return nil, err
	}
	if summary.TotalBalance, err = s.customers.TotalBalance(ctx); err != nil {
		return nil, err
	}
	if summary.PendingWithdrawals, err = s.withdrawals.CountPending(ctx); err != nil {
		return nil, err
	}
	if summary.StockOnHand, err = s.stock.StockOnHand(ctx); err != nil {
		return nil, err
	}
	if summary.TotalWasteSold, err = s.stock.TotalWasteSold(ctx); err != nil {
		return nil, err
	}
	if summary.TotalProfit, err = s.profit.TotalProfit(ctx); err != nil {
		return nil, err
	}

	return summary, nil
}
