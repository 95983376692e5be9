package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/models"
	"github.com/wastebank/ledger/internal/repository"
)

type WithdrawalService interface {
	Create(ctx context.Context, customerID, officerID int64, amount decimal.Decimal) (*models.Withdrawal, error)
	Approve(ctx context.Context, requestID int64) error
	Reject(ctx context.Context, requestID int64) error
	GetWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	GetPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	GetCustomerWithdrawals(ctx context.Context, customerID int64) ([]models.Withdrawal, error)
}

type withdrawalService struct {
	withdrawals repository.WithdrawalRepository
	customers   repository.CustomerRepository
	officers    repository.OfficerRepository
}

func NewWithdrawalService(
	withdrawals repository.WithdrawalRepository,
	customers repository.CustomerRepository,
	officers repository.OfficerRepository,
) WithdrawalService {
	return &withdrawalService{
		withdrawals: withdrawals,
		customers:   customers,
		officers:    officers,
	}
}

// Create records a pending request. The balance is checked but not
// reserved: nothing is locked against pending requests, so the sum of
// a customer's pending amounts may exceed their balance. Each approval
// re-checks on its own.
func (s *withdrawalService) Create(ctx context.Context, customerID, officerID int64, amount decimal.Decimal) (*models.Withdrawal, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer %d: %w", customerID, err)
	}

	if _, err := s.officers.GetByID(ctx, officerID); err != nil {
		return nil, fmt.Errorf("officer %d: %w", officerID, err)
	}

	if customer.Balance.LessThan(amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	withdrawal := &models.Withdrawal{
		CustomerID: customerID,
		OfficerID:  officerID,
		Amount:     amount,
		Status:     models.WithdrawalPending,
	}
	if err := s.withdrawals.Create(ctx, withdrawal); err != nil {
		return nil, err
	}
	return withdrawal, nil
}

// Approve transitions pending → completed, debiting the balance. The
// debit re-validates the balance at approval time; intervening deposits
// or approvals may have changed it since the request was created.
func (s *withdrawalService) Approve(ctx context.Context, requestID int64) error {
	withdrawal, err := s.withdrawals.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("withdrawal %d: %w", requestID, err)
	}
	if withdrawal.Status != models.WithdrawalPending {
		return fmt.Errorf("withdrawal %d is %s: %w", requestID, withdrawal.Status, apperrors.ErrInvalidState)
	}

	return withConflictRetry(func() error {
		return s.withdrawals.Complete(ctx, withdrawal.ID, withdrawal.CustomerID, withdrawal.Amount)
	})
}

// Reject transitions pending → rejected. The balance is never touched.
func (s *withdrawalService) Reject(ctx context.Context, requestID int64) error {
	withdrawal, err := s.withdrawals.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("withdrawal %d: %w", requestID, err)
	}
	if withdrawal.Status != models.WithdrawalPending {
		return fmt.Errorf("withdrawal %d is %s: %w", requestID, withdrawal.Status, apperrors.ErrInvalidState)
	}

	return s.withdrawals.Reject(ctx, withdrawal.ID)
}

func (s *withdrawalService) GetWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return s.withdrawals.List(ctx)
}

func (s *withdrawalService) GetPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return s.withdrawals.ListPending(ctx)
}

func (s *withdrawalService) GetCustomerWithdrawals(ctx context.Context, customerID int64) ([]models.Withdrawal, error) {
	return s.withdrawals.ListByCustomer(ctx, customerID)
}
