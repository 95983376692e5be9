package service

import (
	"context"
	"fmt"

	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/models"
	"github.com/wastebank/ledger/internal/repository"
)

// Reference-catalog services. The ledger core never mutates catalog
// attributes; it only resolves them. These services own catalog CRUD,
// and the Customer variant is the only one whose records the ledger
// also mutates (the balance field, via deposits and withdrawals).

type CustomerService interface {
	Create(ctx context.Context, customer *models.Customer) error
	Get(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, id int64, patch models.CustomerPatch) error
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, customer *models.Customer) error {
	if customer.Code == "" || customer.Name == "" {
		return fmt.Errorf("code and name are required: %w", apperrors.ErrValidation)
	}
	return s.repo.Create(ctx, customer)
}

func (s *customerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.repo.List(ctx)
}

func (s *customerService) Update(ctx context.Context, id int64, patch models.CustomerPatch) error {
	return s.repo.Update(ctx, id, patch)
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

type OfficerService interface {
	Create(ctx context.Context, officer *models.Officer) error
	Get(ctx context.Context, id int64) (*models.Officer, error)
	List(ctx context.Context) ([]models.Officer, error)
	Update(ctx context.Context, id int64, patch models.OfficerPatch) error
	Delete(ctx context.Context, id int64) error
}

type officerService struct {
	repo repository.OfficerRepository
}

func NewOfficerService(repo repository.OfficerRepository) OfficerService {
	return &officerService{repo: repo}
}

func (s *officerService) Create(ctx context.Context, officer *models.Officer) error {
	if officer.Code == "" || officer.Name == "" {
		return fmt.Errorf("code and name are required: %w", apperrors.ErrValidation)
	}
	return s.repo.Create(ctx, officer)
}

func (s *officerService) Get(ctx context.Context, id int64) (*models.Officer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *officerService) List(ctx context.Context) ([]models.Officer, error) {
	return s.repo.List(ctx)
}

func (s *officerService) Update(ctx context.Context, id int64, patch models.OfficerPatch) error {
	return s.repo.Update(ctx, id, patch)
}

func (s *officerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

type WasteTypeService interface {
	Create(ctx context.Context, wasteType *models.WasteType) error
	Get(ctx context.Context, id int64) (*models.WasteType, error)
	List(ctx context.Context) ([]models.WasteType, error)
	Update(ctx context.Context, id int64, patch models.WasteTypePatch) error
	Delete(ctx context.Context, id int64) error
}

type wasteTypeService struct {
	repo repository.WasteTypeRepository
}

func NewWasteTypeService(repo repository.WasteTypeRepository) WasteTypeService {
	return &wasteTypeService{repo: repo}
}

func (s *wasteTypeService) Create(ctx context.Context, wasteType *models.WasteType) error {
	if wasteType.Code == "" || wasteType.Name == "" {
		return fmt.Errorf("code and name are required: %w", apperrors.ErrValidation)
	}
	if !wasteType.BuyPrice.IsPositive() || !wasteType.SellPrice.IsPositive() {
		return fmt.Errorf("prices must be positive: %w", apperrors.ErrValidation)
	}
	return s.repo.Create(ctx, wasteType)
}

func (s *wasteTypeService) Get(ctx context.Context, id int64) (*models.WasteType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *wasteTypeService) List(ctx context.Context) ([]models.WasteType, error) {
	return s.repo.List(ctx)
}

func (s *wasteTypeService) Update(ctx context.Context, id int64, patch models.WasteTypePatch) error {
	if patch.BuyPrice != nil && !patch.BuyPrice.IsPositive() {
		return fmt.Errorf("buy price must be positive: %w", apperrors.ErrValidation)
	}
	if patch.SellPrice != nil && !patch.SellPrice.IsPositive() {
		return fmt.Errorf("sell price must be positive: %w", apperrors.ErrValidation)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *wasteTypeService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

type CollectorService interface {
	Create(ctx context.Context, collector *models.Collector) error
	Get(ctx context.Context, id int64) (*models.Collector, error)
	List(ctx context.Context) ([]models.Collector, error)
	Update(ctx context.Context, id int64, patch models.CollectorPatch) error
	Delete(ctx context.Context, id int64) error
}

type collectorService struct {
	repo repository.CollectorRepository
}

func NewCollectorService(repo repository.CollectorRepository) CollectorService {
	return &collectorService{repo: repo}
}

func (s *collectorService) Create(ctx context.Context, collector *models.Collector) error {
	if collector.Code == "" || collector.Name == "" {
		return fmt.Errorf("code and name are required: %w", apperrors.ErrValidation)
	}
	return s.repo.Create(ctx, collector)
}

func (s *collectorService) Get(ctx context.Context, id int64) (*models.Collector, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *collectorService) List(ctx context.Context) ([]models.Collector, error) {
	return s.repo.List(ctx)
}

func (s *collectorService) Update(ctx context.Context, id int64, patch models.CollectorPatch) error {
	return s.repo.Update(ctx, id, patch)
}

func (s *collectorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
