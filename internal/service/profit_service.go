package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wastebank/ledger/internal/repository"
)

type ProfitService interface {
	TotalProfit(ctx context.Context) (decimal.Decimal, error)
}

type profitService struct {
	deposits repository.DepositRepository
	sales    repository.SaleRepository
}

func NewProfitService(deposits repository.DepositRepository, sales repository.SaleRepository) ProfitService {
	return &profitService{deposits: deposits, sales: sales}
}

// TotalProfit is collector-sale revenue minus deposit cost over all
// history. Negative while deposits outpace resales.
func (s *profitService) TotalProfit(ctx context.Context) (decimal.Decimal, error) {
	revenue, err := s.sales.TotalRevenue(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	cost, err := s.deposits.TotalValue(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return revenue.Sub(cost), nil
}
