package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/logger"
	"github.com/wastebank/ledger/internal/models"
	"github.com/wastebank/ledger/internal/repository"
	"go.uber.org/zap"
)

type ReportService interface {
	TransactionReport(ctx context.Context, start, end time.Time) ([]models.TransactionEntry, error)
	CustomerSummary(ctx context.Context, customerID int64) (*models.CustomerSummary, error)
	AllCustomerSummaries(ctx context.Context) ([]models.CustomerSummary, error)
}

type reportService struct {
	deposits    repository.DepositRepository
	withdrawals repository.WithdrawalRepository
	sales       repository.SaleRepository
	customers   repository.CustomerRepository
	officers    repository.OfficerRepository
	collectors  repository.CollectorRepository
	wasteTypes  repository.WasteTypeRepository
}

func NewReportService(
	deposits repository.DepositRepository,
	withdrawals repository.WithdrawalRepository,
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
	officers repository.OfficerRepository,
	collectors repository.CollectorRepository,
	wasteTypes repository.WasteTypeRepository,
) ReportService {
	return &reportService{
		deposits:    deposits,
		withdrawals: withdrawals,
		sales:       sales,
		customers:   customers,
		officers:    officers,
		collectors:  collectors,
		wasteTypes:  wasteTypes,
	}
}

// TransactionReport lists deposits, completed withdrawals, and sales
// whose calendar date falls within [start, end], newest first. Pending
// and rejected withdrawals never appear. Display names are resolved
// best effort; an entry whose reference has since been deleted keeps
// an empty name rather than failing the whole report.
func (s *reportService) TransactionReport(ctx context.Context, start, end time.Time) ([]models.TransactionEntry, error) {
	deposits, err := s.deposits.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	withdrawals, err := s.withdrawals.ListCompletedByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	names := newNameCache(s)
	entries := make([]models.TransactionEntry, 0, len(deposits)+len(withdrawals)+len(sales))

	for _, d := range deposits {
		weight := d.Weight
		entries = append(entries, models.TransactionEntry{
			ID:            d.ID,
			Kind:          models.KindDeposit,
			CustomerName:  names.customer(ctx, d.CustomerID),
			OfficerName:   names.officer(ctx, d.OfficerID),
			WasteTypeName: names.wasteType(ctx, d.WasteTypeID),
			Weight:        &weight,
			Value:         d.Value,
			CreatedAt:     d.CreatedAt,
		})
	}

	for _, w := range withdrawals {
		entries = append(entries, models.TransactionEntry{
			ID:           w.ID,
			Kind:         models.KindWithdrawal,
			CustomerName: names.customer(ctx, w.CustomerID),
			OfficerName:  names.officer(ctx, w.OfficerID),
			Value:        w.Amount,
			CreatedAt:    w.CreatedAt,
		})
	}

	for _, sale := range sales {
		weight := sale.Weight
		entries = append(entries, models.TransactionEntry{
			ID:            sale.ID,
			Kind:          models.KindSale,
			CollectorName: names.collector(ctx, sale.CollectorID),
			WasteTypeName: names.wasteType(ctx, sale.WasteTypeID),
			Weight:        &weight,
			Value:         sale.Total,
			CreatedAt:     sale.CreatedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// CustomerSummary reports lifetime deposit and completed-withdrawal
// totals for one customer. LastActivity stays the zero time when the
// customer has no activity yet.
func (s *reportService) CustomerSummary(ctx context.Context, customerID int64) (*models.CustomerSummary, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer %d: %w", customerID, err)
	}

	totalDeposits, err := s.deposits.TotalValueByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	totalWithdrawals, err := s.withdrawals.TotalCompletedByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	lastDeposit, err := s.deposits.LastByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	lastWithdrawal, err := s.withdrawals.LastCompletedByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	lastActivity := lastDeposit
	if lastWithdrawal.After(lastActivity) {
		lastActivity = lastWithdrawal
	}

	return &models.CustomerSummary{
		CustomerCode:     customer.Code,
		CustomerName:     customer.Name,
		TotalDeposits:    totalDeposits,
		TotalWithdrawals: totalWithdrawals,
		Balance:          customer.Balance,
		LastActivity:     lastActivity,
	}, nil
}

// AllCustomerSummaries returns a summary per customer, sorted by
// customer code. A customer deleted between listing and detail fetch
// is logged and skipped.
func (s *reportService) AllCustomerSummaries(ctx context.Context) ([]models.CustomerSummary, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.CustomerSummary, 0, len(customers))
	for _, c := range customers {
		summary, err := s.CustomerSummary(ctx, c.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Log.Warn("skipping vanished customer in summary report", zap.Int64("customer_id", c.ID))
				continue
			}
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

// nameCache memoizes reference lookups within a single report build so
// repeated entries for the same customer or type cost one query.
type nameCache struct {
	svc        *reportService
	customers  map[int64]string
	officers   map[int64]string
	collectors map[int64]string
	wasteTypes map[int64]string
}

func newNameCache(svc *reportService) *nameCache {
	return &nameCache{
		svc:        svc,
		customers:  make(map[int64]string),
		officers:   make(map[int64]string),
		collectors: make(map[int64]string),
		wasteTypes: make(map[int64]string),
	}
}

func (c *nameCache) customer(ctx context.Context, id int64) string {
	return resolve(ctx, c.customers, id, func(ctx context.Context, id int64) (string, error) {
		cust, err := c.svc.customers.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return cust.Name, nil
	})
}

func (c *nameCache) officer(ctx context.Context, id int64) string {
	return resolve(ctx, c.officers, id, func(ctx context.Context, id int64) (string, error) {
		o, err := c.svc.officers.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return o.Name, nil
	})
}

func (c *nameCache) collector(ctx context.Context, id int64) string {
	return resolve(ctx, c.collectors, id, func(ctx context.Context, id int64) (string, error) {
		col, err := c.svc.collectors.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return col.Name, nil
	})
}

func (c *nameCache) wasteType(ctx context.Context, id int64) string {
	return resolve(ctx, c.wasteTypes, id, func(ctx context.Context, id int64) (string, error) {
		wt, err := c.svc.wasteTypes.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return wt.Name, nil
	})
}

func resolve(ctx context.Context, cache map[int64]string, id int64, fetch func(context.Context, int64) (string, error)) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name, err := fetch(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Log.Warn("failed to resolve display name", zap.Int64("id", id), zap.Error(err))
	}
	cache[id] = name
	return name
}
