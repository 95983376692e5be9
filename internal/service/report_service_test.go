package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/mocks/repository_mocks"
	"github.com/wastebank/ledger/internal/models"
)

type reportMocks struct {
	deposits    *repository_mocks.MockDepositRepository
	withdrawals *repository_mocks.MockWithdrawalRepository
	sales       *repository_mocks.MockSaleRepository
	customers   *repository_mocks.MockCustomerRepository
	officers    *repository_mocks.MockOfficerRepository
	collectors  *repository_mocks.MockCollectorRepository
	wasteTypes  *repository_mocks.MockWasteTypeRepository
}

func newReportMocks(ctrl *gomock.Controller) *reportMocks {
	return &reportMocks{
		deposits:    repository_mocks.NewMockDepositRepository(ctrl),
		withdrawals: repository_mocks.NewMockWithdrawalRepository(ctrl),
		sales:       repository_mocks.NewMockSaleRepository(ctrl),
		customers:   repository_mocks.NewMockCustomerRepository(ctrl),
		officers:    repository_mocks.NewMockOfficerRepository(ctrl),
		collectors:  repository_mocks.NewMockCollectorRepository(ctrl),
		wasteTypes:  repository_mocks.NewMockWasteTypeRepository(ctrl),
	}
}

func (m *reportMocks) service() ReportService {
	return NewReportService(m.deposits, m.withdrawals, m.sales, m.customers, m.officers, m.collectors, m.wasteTypes)
}

func TestReportService_TransactionReport(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	deposit := models.Deposit{
		ID: 1, CustomerID: 10, OfficerID: 20, WasteTypeID: 30,
		Weight: dec("5.0"), Value: dec("10000"),
		CreatedAt: day.Add(9 * time.Hour),
	}
	withdrawal := models.Withdrawal{
		ID: 2, CustomerID: 10, OfficerID: 20,
		Amount: dec("3000"), Status: models.WithdrawalCompleted,
		CreatedAt: day.Add(11 * time.Hour),
	}
	sale := models.CollectorSale{
		ID: 3, CollectorID: 40, WasteTypeID: 30,
		Weight: dec("3.0"), SalePrice: dec("2500"), Total: dec("7500"),
		CreatedAt: day.Add(14 * time.Hour),
	}

	t.Run("one of each kind on the same day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newReportMocks(ctrl)

		m.deposits.EXPECT().ListByDateRange(ctx, day, day).Return([]models.Deposit{deposit}, nil)
		m.withdrawals.EXPECT().ListCompletedByDateRange(ctx, day, day).Return([]models.Withdrawal{withdrawal}, nil)
		m.sales.EXPECT().ListByDateRange(ctx, day, day).Return([]models.CollectorSale{sale}, nil)
		m.customers.EXPECT().GetByID(ctx, int64(10)).Return(&models.Customer{ID: 10, Name: "Siti"}, nil)
		m.officers.EXPECT().GetByID(ctx, int64(20)).Return(&models.Officer{ID: 20, Name: "Budi"}, nil)
		m.collectors.EXPECT().GetByID(ctx, int64(40)).Return(&models.Collector{ID: 40, Name: "CV Maju"}, nil)
		// the cache resolves the waste type once even though two entries reference it
		m.wasteTypes.EXPECT().GetByID(ctx, int64(30)).Return(&models.WasteType{ID: 30, Name: "Plastic"}, nil).Times(1)

		entries, err := m.service().TransactionReport(ctx, day, day)

		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, models.KindSale, entries[0].Kind)
		assert.Equal(t, models.KindWithdrawal, entries[1].Kind)
		assert.Equal(t, models.KindDeposit, entries[2].Kind)

		assert.Equal(t, "CV Maju", entries[0].CollectorName)
		assert.Equal(t, "Plastic", entries[0].WasteTypeName)
		assert.True(t, entries[0].Value.Equal(dec("7500")))

		assert.Equal(t, "Siti", entries[1].CustomerName)
		assert.Equal(t, "Budi", entries[1].OfficerName)
		assert.Nil(t, entries[1].Weight)
		assert.True(t, entries[1].Value.Equal(dec("3000")))

		require.NotNil(t, entries[2].Weight)
		assert.True(t, entries[2].Weight.Equal(dec("5.0")))
		assert.True(t, entries[2].Value.Equal(dec("10000")))
	})

	t.Run("quiet day yields an empty report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newReportMocks(ctrl)

		next := day.AddDate(0, 0, 1)
		m.deposits.EXPECT().ListByDateRange(ctx, next, next).Return(nil, nil)
		m.withdrawals.EXPECT().ListCompletedByDateRange(ctx, next, next).Return(nil, nil)
		m.sales.EXPECT().ListByDateRange(ctx, next, next).Return(nil, nil)

		entries, err := m.service().TransactionReport(ctx, next, next)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("deleted reference keeps an empty name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newReportMocks(ctrl)

		m.deposits.EXPECT().ListByDateRange(ctx, day, day).Return([]models.Deposit{deposit}, nil)
		m.withdrawals.EXPECT().ListCompletedByDateRange(ctx, day, day).Return(nil, nil)
		m.sales.EXPECT().ListByDateRange(ctx, day, day).Return(nil, nil)
		m.customers.EXPECT().GetByID(ctx, int64(10)).Return(nil, apperrors.ErrNotFound)
		m.officers.EXPECT().GetByID(ctx, int64(20)).Return(&models.Officer{ID: 20, Name: "Budi"}, nil)
		m.wasteTypes.EXPECT().GetByID(ctx, int64(30)).Return(&models.WasteType{ID: 30, Name: "Plastic"}, nil)

		entries, err := m.service().TransactionReport(ctx, day, day)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Empty(t, entries[0].CustomerName)
		assert.Equal(t, "Budi", entries[0].OfficerName)
	})

	t.Run("ties on timestamp keep insertion order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newReportMocks(ctrl)

		at := day.Add(10 * time.Hour)
		first := deposit
		first.ID = 5
		first.CreatedAt = at
		second := deposit
		second.ID = 6
		second.CreatedAt = at

		m.deposits.EXPECT().ListByDateRange(ctx, day, day).Return([]models.Deposit{first, second}, nil)
		m.withdrawals.EXPECT().ListCompletedByDateRange(ctx, day, day).Return(nil, nil)
		m.sales.EXPECT().ListByDateRange(ctx, day, day).Return(nil, nil)
		m.customers.EXPECT().GetByID(ctx, int64(10)).Return(&models.Customer{ID: 10, Name: "Siti"}, nil).Times(1)
		m.officers.EXPECT().GetByID(ctx, int64(20)).Return(&models.Officer{ID: 20, Name: "Budi"}, nil).Times(1)
		m.wasteTypes.EXPECT().GetByID(ctx, int64(30)).Return(&models.WasteType{ID: 30, Name: "Plastic"}, nil).Times(1)

		entries, err := m.service().TransactionReport(ctx, day, day)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, int64(5), entries[0].ID)
		assert.Equal(t, int64(6), entries[1].ID)
	})
}

func TestReportService_CustomerSummary(t *testing.T) {
	ctx := context.Background()
	depositAt := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	withdrawalAt := time.Date(2024, 3, 12, 15, 0, 0, 0, time.UTC)

	t.Run("totals and balance for an active customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newReportMocks(ctrl)

		m.customers.EXPECT().GetByID(ctx, int64(10)).Return(&models.Customer{
			ID: 10, Code: "C001", Name: "Siti", Balance: dec("7000"),
		}, nil)
		m.deposits.EXPECT().TotalValueByCustomer(ctx, int64(10)).Return(dec("10000"), nil)
		m.withdrawals.EXPECT().TotalCompletedByCustomer(ctx, int64(10)).Return(dec("3000"), nil)
		m.deposits.EXPECT().LastByCustomer(ctx, int64(10)).Return(depositAt, nil)
		m.withdrawals.EXPECT().LastCompletedByCustomer(ctx, int64(10)).Return(withdrawalAt, nil)

		summary, err := m.service().CustomerSummary(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, "C001", summary.CustomerCode)
		assert.Equal(t, "Siti", summary.CustomerName)
		assert.True(t, summary.TotalDeposits.Equal(dec("10000")))
		assert.True(t, summary.TotalWithdrawals.Equal(dec("3000")))
		assert.True(t, summary.Balance.Equal(dec("7000")))
		assert.Equal(t, withdrawalAt, summary.LastActivity)
	})

	t.Run("customer with no activity has zero last activity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newReportMocks(ctrl)

		m.customers.EXPECT().GetByID(ctx, int64(11)).Return(&models.Customer{
			ID: 11, Code: "C002", Name: "Wati", Balance: dec("0"),
		}, nil)
		m.deposits.EXPECT().TotalValueByCustomer(ctx, int64(11)).Return(dec("0"), nil)
		m.withdrawals.EXPECT().TotalCompletedByCustomer(ctx, int64(11)).Return(dec("0"), nil)
		m.deposits.EXPECT().LastByCustomer(ctx, int64(11)).Return(time.Time{}, nil)
		m.withdrawals.EXPECT().LastCompletedByCustomer(ctx, int64(11)).Return(time.Time{}, nil)

		summary, err := m.service().CustomerSummary(ctx, 11)

		require.NoError(t, err)
		assert.True(t, summary.LastActivity.IsZero())
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newReportMocks(ctrl)

		m.customers.EXPECT().GetByID(ctx, int64(99)).Return(nil, apperrors.ErrNotFound)

		summary, err := m.service().CustomerSummary(ctx, 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, summary)
	})
}

func TestReportService_AllCustomerSummaries(t *testing.T) {
	ctx := context.Background()

	t.Run("skips a customer deleted mid-listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newReportMocks(ctrl)

		m.customers.EXPECT().List(ctx).Return([]models.Customer{
			{ID: 10, Code: "C001", Name: "Siti", Balance: dec("7000")},
			{ID: 11, Code: "C002", Name: "Wati", Balance: dec("500")},
		}, nil)

		m.customers.EXPECT().GetByID(ctx, int64(10)).Return(&models.Customer{
			ID: 10, Code: "C001", Name: "Siti", Balance: dec("7000"),
		}, nil)
		m.deposits.EXPECT().TotalValueByCustomer(ctx, int64(10)).Return(dec("10000"), nil)
		m.withdrawals.EXPECT().TotalCompletedByCustomer(ctx, int64(10)).Return(dec("3000"), nil)
		m.deposits.EXPECT().LastByCustomer(ctx, int64(10)).Return(time.Time{}, nil)
		m.withdrawals.EXPECT().LastCompletedByCustomer(ctx, int64(10)).Return(time.Time{}, nil)

		m.customers.EXPECT().GetByID(ctx, int64(11)).Return(nil, apperrors.ErrNotFound)

		summaries, err := m.service().AllCustomerSummaries(ctx)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "C001", summaries[0].CustomerCode)
	})
}
