package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wastebank/ledger/internal/repository"
)

type StockService interface {
	StockOnHand(ctx context.Context) (decimal.Decimal, error)
	TotalWasteSold(ctx context.Context) (decimal.Decimal, error)
}

type stockService struct {
	deposits repository.DepositRepository
	sales    repository.SaleRepository
}

func NewStockService(deposits repository.DepositRepository, sales repository.SaleRepository) StockService {
	return &stockService{deposits: deposits, sales: sales}
}

// StockOnHand sums per-type net weight (deposited minus sold), flooring
// each type at zero first. An over-sold type contributes nothing and
// never offsets another type's positive stock.
func (s *stockService) StockOnHand(ctx context.Context) (decimal.Decimal, error) {
	deposited, err := s.deposits.WeightByType(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	sold, err := s.sales.WeightByType(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for typeID, weight := range deposited {
		net := weight.Sub(sold[typeID])
		if net.IsPositive() {
			total = total.Add(net)
		}
	}
	return total, nil
}

func (s *stockService) TotalWasteSold(ctx context.Context) (decimal.Decimal, error) {
	return s.sales.TotalWeight(ctx)
}
