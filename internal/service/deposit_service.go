package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/models"
	"github.com/wastebank/ledger/internal/repository"
)

type DepositService interface {
	RecordDeposit(ctx context.Context, customerID, officerID, wasteTypeID int64, weight decimal.Decimal) (*models.Deposit, error)
	GetDeposits(ctx context.Context) ([]models.Deposit, error)
	GetCustomerDeposits(ctx context.Context, customerID int64) ([]models.Deposit, error)
}

type depositService struct {
	deposits   repository.DepositRepository
	customers  repository.CustomerRepository
	officers   repository.OfficerRepository
	wasteTypes repository.WasteTypeRepository
}

func NewDepositService(
	deposits repository.DepositRepository,
	customers repository.CustomerRepository,
	officers repository.OfficerRepository,
	wasteTypes repository.WasteTypeRepository,
) DepositService {
	return &depositService{
		deposits:   deposits,
		customers:  customers,
		officers:   officers,
		wasteTypes: wasteTypes,
	}
}

// RecordDeposit credits the customer with weight × buy price, rounded
// to 2 digits. The record append and the balance credit commit in one
// unit of work.
func (s *depositService) RecordDeposit(ctx context.Context, customerID, officerID, wasteTypeID int64, weight decimal.Decimal) (*models.Deposit, error) {
	if !weight.IsPositive() {
		return nil, fmt.Errorf("weight must be positive: %w", apperrors.ErrValidation)
	}

	wasteType, err := s.wasteTypes.GetByID(ctx, wasteTypeID)
	if err != nil {
		return nil, fmt.Errorf("waste type %d: %w", wasteTypeID, err)
	}

	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("customer %d: %w", customerID, err)
	}

	if _, err := s.officers.GetByID(ctx, officerID); err != nil {
		return nil, fmt.Errorf("officer %d: %w", officerID, err)
	}

	deposit := &models.Deposit{
		CustomerID:  customerID,
		OfficerID:   officerID,
		WasteTypeID: wasteTypeID,
		Weight:      weight,
		Value:       weight.Mul(wasteType.BuyPrice).Round(2),
	}

	err = withConflictRetry(func() error {
		return s.deposits.Create(ctx, deposit)
	})
	if err != nil {
		return nil, err
	}
	return deposit, nil
}

func (s *depositService) GetDeposits(ctx context.Context) ([]models.Deposit, error) {
	return s.deposits.List(ctx)
}

func (s *depositService) GetCustomerDeposits(ctx context.Context, customerID int64) ([]models.Deposit, error) {
	return s.deposits.ListByCustomer(ctx, customerID)
}
