package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wastebank/ledger/internal/mocks/repository_mocks"
)

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := repository_mocks.NewMockCustomerRepository(ctrl)
	officerRepo := repository_mocks.NewMockOfficerRepository(ctrl)
	wasteTypeRepo := repository_mocks.NewMockWasteTypeRepository(ctrl)
	depositRepo := repository_mocks.NewMockDepositRepository(ctrl)
	withdrawalRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	saleRepo := repository_mocks.NewMockSaleRepository(ctrl)

	customerRepo.EXPECT().Count(ctx).Return(int64(12), nil)
	officerRepo.EXPECT().Count(ctx).Return(int64(2), nil)
	wasteTypeRepo.EXPECT().Count(ctx).Return(int64(4), nil)
	depositRepo.EXPECT().Count(ctx).Return(int64(37), nil)
	customerRepo.EXPECT().TotalBalance(ctx).Return(dec("152300.50"), nil)
	withdrawalRepo.EXPECT().CountPending(ctx).Return(int64(3), nil)

	depositRepo.EXPECT().WeightByType(ctx).Return(map[int64]decimal.Decimal{
		1: dec("10"),
		2: dec("3"),
	}, nil)
	saleRepo.EXPECT().WeightByType(ctx).Return(map[int64]decimal.Decimal{
		1: dec("4"),
		2: dec("5"),
	}, nil)
	saleRepo.EXPECT().TotalWeight(ctx).Return(dec("9"), nil)
	saleRepo.EXPECT().TotalRevenue(ctx).Return(dec("7700"), nil)
	depositRepo.EXPECT().TotalValue(ctx).Return(dec("19500"), nil)

	stock := NewStockService(depositRepo, saleRepo)
	profit := NewProfitService(depositRepo, saleRepo)
	svc := NewDashboardService(customerRepo, officerRepo, wasteTypeRepo, depositRepo, withdrawalRepo, stock, profit)

	summary, err := svc.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.TotalCustomers)
	assert.Equal(t, int64(2), summary.TotalOfficers)
	assert.Equal(t, int64(4), summary.TotalWasteTypes)
	assert.Equal(t, int64(37), summary.TotalDeposits)
	assert.True(t, summary.TotalBalance.Equal(dec("152300.50")))
	assert.Equal(t, int64(3), summary.PendingWithdrawals)
	assert.True(t, summary.StockOnHand.Equal(dec("6")), "stock = %s", summary.StockOnHand)
	assert.True(t, summary.TotalWasteSold.Equal(dec("9")))
	assert.True(t, summary.TotalProfit.Equal(dec("-11800")), "profit = %s", summary.TotalProfit)
}
