package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wastebank/ledger/internal/models"
)

func TestSaleRepository(t *testing.T) {
	setupTestData(t, testDB)
	ctx := context.Background()
	repo := NewSaleRepository(testDB)

	seed := []models.CollectorSale{
		{CollectorID: 1, WasteTypeID: 1, Weight: mustDec("3"), SalePrice: mustDec("2500"), Total: mustDec("7500")},
		{CollectorID: 1, WasteTypeID: 2, Weight: mustDec("1"), SalePrice: mustDec("200"), Total: mustDec("200")},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
		assert.NotZero(t, seed[i].ID)
	}

	t.Run("member balances are untouched by sales", func(t *testing.T) {
		assert.True(t, mustDec(customerBalance(t, 1)).Equal(mustDec("10000")))
	})

	t.Run("TotalRevenue", func(t *testing.T) {
		revenue, err := repo.TotalRevenue(ctx)
		require.NoError(t, err)
		assert.True(t, revenue.Equal(mustDec("7700")), "revenue = %s", revenue)
	})

	t.Run("TotalWeight", func(t *testing.T) {
		weight, err := repo.TotalWeight(ctx)
		require.NoError(t, err)
		assert.True(t, weight.Equal(mustDec("4")))
	})

	t.Run("WeightByType", func(t *testing.T) {
		weights, err := repo.WeightByType(ctx)
		require.NoError(t, err)
		require.Len(t, weights, 2)
		assert.True(t, weights[1].Equal(mustDec("3")))
		assert.True(t, weights[2].Equal(mustDec("1")))
	})

	t.Run("List returns every sale", func(t *testing.T) {
		sales, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, sales, 2)
	})
}
