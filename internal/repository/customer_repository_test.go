package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/models"
)

func TestCustomerRepository_CRUD(t *testing.T) {
	setupTestData(t, testDB)
	ctx := context.Background()
	repo := NewCustomerRepository(testDB)

	t.Run("Create assigns id and zero balance", func(t *testing.T) {
		customer := &models.Customer{Code: "C010", Name: "Tono", Address: "Jl. Kenanga 2"}
		require.NoError(t, repo.Create(ctx, customer))
		assert.NotZero(t, customer.ID)

		got, err := repo.GetByID(ctx, customer.ID)
		require.NoError(t, err)
		assert.True(t, got.Balance.IsZero())
		assert.Equal(t, "Tono", got.Name)
	})

	t.Run("duplicate code conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &models.Customer{Code: "C001", Name: "Imposter"})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("List is ordered by code", func(t *testing.T) {
		customers, err := repo.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(customers), 3)
		for i := 1; i < len(customers); i++ {
			assert.LessOrEqual(t, customers[i-1].Code, customers[i].Code)
		}
	})

	t.Run("Update patches only supplied fields", func(t *testing.T) {
		newName := "Siti Rahma"
		require.NoError(t, repo.Update(ctx, 1, models.CustomerPatch{Name: &newName}))

		got, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Siti Rahma", got.Name)
		assert.Equal(t, "C001", got.Code)
		assert.True(t, got.Balance.Equal(mustDec("10000")))
	})

	t.Run("Update of a missing customer", func(t *testing.T) {
		name := "Nobody"
		err := repo.Update(ctx, 9999, models.CustomerPatch{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Delete removes the row", func(t *testing.T) {
		customer := &models.Customer{Code: "C099", Name: "Temp"}
		require.NoError(t, repo.Create(ctx, customer))
		require.NoError(t, repo.Delete(ctx, customer.ID))

		_, err := repo.GetByID(ctx, customer.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("TotalBalance sums every member", func(t *testing.T) {
		total, err := repo.TotalBalance(ctx)
		require.NoError(t, err)
		assert.True(t, total.Equal(mustDec("10000")), "total = %s", total)
	})
}
