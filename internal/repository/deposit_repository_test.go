package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/models"
)

func mustDec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDepositRepository_Create(t *testing.T) {
	setupTestData(t, testDB)
	ctx := context.Background()
	repo := NewDepositRepository(testDB)

	t.Run("appends the record and credits the balance atomically", func(t *testing.T) {
		deposit := &models.Deposit{
			CustomerID:  1,
			OfficerID:   1,
			WasteTypeID: 1,
			Weight:      mustDec("5.000"),
			Value:       mustDec("10000"),
		}
		require.NoError(t, repo.Create(ctx, deposit))
		assert.NotZero(t, deposit.ID)
		assert.False(t, deposit.CreatedAt.IsZero())

		var balance string
		require.NoError(t, testDB.QueryRow(`SELECT balance FROM customers WHERE id = 1`).Scan(&balance))
		assert.True(t, mustDec(balance).Equal(mustDec("20000")))
	})

	t.Run("unknown customer credits nothing and stores nothing", func(t *testing.T) {
		deposit := &models.Deposit{
			CustomerID:  999,
			OfficerID:   1,
			WasteTypeID: 1,
			Weight:      mustDec("1"),
			Value:       mustDec("2000"),
		}
		err := repo.Create(ctx, deposit)
		assert.Error(t, err)

		var count int64
		require.NoError(t, testDB.QueryRow(`SELECT count(*) FROM deposits WHERE customer_id = 999`).Scan(&count))
		assert.Zero(t, count)
	})
}

func TestDepositRepository_Totals(t *testing.T) {
	setupTestData(t, testDB)
	ctx := context.Background()
	repo := NewDepositRepository(testDB)

	seed := []models.Deposit{
		{CustomerID: 1, OfficerID: 1, WasteTypeID: 1, Weight: mustDec("5"), Value: mustDec("10000")},
		{CustomerID: 1, OfficerID: 1, WasteTypeID: 2, Weight: mustDec("3"), Value: mustDec("4500")},
		{CustomerID: 2, OfficerID: 1, WasteTypeID: 1, Weight: mustDec("2.5"), Value: mustDec("5000")},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	t.Run("TotalValue", func(t *testing.T) {
		total, err := repo.TotalValue(ctx)
		require.NoError(t, err)
		assert.True(t, total.Equal(mustDec("19500")), "total = %s", total)
	})

	t.Run("TotalValueByCustomer", func(t *testing.T) {
		total, err := repo.TotalValueByCustomer(ctx, 1)
		require.NoError(t, err)
		assert.True(t, total.Equal(mustDec("14500")))
	})

	t.Run("TotalValueByCustomer with no deposits is zero", func(t *testing.T) {
		_, err := testDB.Exec(`INSERT INTO customers (code, name) VALUES ('C003', 'Tono')`)
		require.NoError(t, err)
		total, err := repo.TotalValueByCustomer(ctx, 3)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("WeightByType", func(t *testing.T) {
		weights, err := repo.WeightByType(ctx)
		require.NoError(t, err)
		require.Len(t, weights, 2)
		assert.True(t, weights[1].Equal(mustDec("7.5")))
		assert.True(t, weights[2].Equal(mustDec("3")))
	})

	t.Run("Count", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("LastByCustomer is zero for an inactive customer", func(t *testing.T) {
		last, err := repo.LastByCustomer(ctx, 3)
		require.NoError(t, err)
		assert.True(t, last.IsZero())
	})
}

func TestDepositRepository_ListByDateRange(t *testing.T) {
	setupTestData(t, testDB)
	ctx := context.Background()
	repo := NewDepositRepository(testDB)

	deposit := &models.Deposit{CustomerID: 1, OfficerID: 1, WasteTypeID: 1, Weight: mustDec("5"), Value: mustDec("10000")}
	require.NoError(t, repo.Create(ctx, deposit))

	today := time.Now().UTC().Truncate(24 * time.Hour)
	tomorrow := today.AddDate(0, 0, 1)

	t.Run("today's deposit is inside today's range", func(t *testing.T) {
		got, err := repo.ListByDateRange(ctx, today, today)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, deposit.ID, got[0].ID)
	})

	t.Run("and outside tomorrow's", func(t *testing.T) {
		got, err := repo.ListByDateRange(ctx, tomorrow, tomorrow)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDepositRepository_GetByID(t *testing.T) {
	setupTestData(t, testDB)
	ctx := context.Background()
	repo := NewDepositRepository(testDB)

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 12345)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
