package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/models"
	"github.com/wastebank/ledger/internal/repository"
)

type SaleService interface {
	RecordSale(ctx context.Context, collectorID, wasteTypeID int64, weight, salePrice decimal.Decimal) (*models.CollectorSale, error)
	GetSales(ctx context.Context) ([]models.CollectorSale, error)
}

type saleService struct {
	sales      repository.SaleRepository
	collectors repository.CollectorRepository
	wasteTypes repository.WasteTypeRepository
}

func NewSaleService(
	sales repository.SaleRepository,
	collectors repository.CollectorRepository,
	wasteTypes repository.WasteTypeRepository,
) SaleService {
	return &saleService{
		sales:      sales,
		collectors: collectors,
		wasteTypes: wasteTypes,
	}
}

// RecordSale appends one immutable resale record. The sale price is
// the agreed price for this transaction and may differ from the waste
// type's default sell price. No balance or stock is mutated here; the
// sale becomes visible to stock and profit reads on their next call.
func (s *saleService) RecordSale(ctx context.Context, collectorID, wasteTypeID int64, weight, salePrice decimal.Decimal) (*models.CollectorSale, error) {
	if !weight.IsPositive() {
		return nil, fmt.Errorf("weight must be positive: %w", apperrors.ErrValidation)
	}
	if !salePrice.IsPositive() {
		return nil, fmt.Errorf("sale price must be positive: %w", apperrors.ErrValidation)
	}

	if _, err := s.collectors.GetByID(ctx, collectorID); err != nil {
		return nil, fmt.Errorf("collector %d: %w", collectorID, err)
	}
	if _, err := s.wasteTypes.GetByID(ctx, wasteTypeID); err != nil {
		return nil, fmt.Errorf("waste type %d: %w", wasteTypeID, err)
	}

	sale := &models.CollectorSale{
		CollectorID: collectorID,
		WasteTypeID: wasteTypeID,
		Weight:      weight,
		SalePrice:   salePrice,
		Total:       weight.Mul(salePrice).Round(2),
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *saleService) GetSales(ctx context.Context) ([]models.CollectorSale, error) {
	return s.sales.List(ctx)
}
