//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
)

func TestExpenseRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewExpenseRepository(db)

	t.Run("summary on empty collection", func(t *testing.T) {
		summary, err := repo.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0.0, summary.TotalIncome)
		assert.Equal(t, 0.0, summary.TotalExpense)
		assert.Equal(t, 0.0, summary.Profit)
	})

	t.Run("create and list", func(t *testing.T) {
		entries := []*model.Expense{
			{Title: "Tomato sale", Amount: 25000, Type: model.TransactionIncome, Date: "2026-08-20"},
			{Title: "Fertilizer", Amount: 4000, Type: model.TransactionExpense, Category: "Inputs", Date: "2026-08-10"},
			{Title: "Diesel", Amount: 1500, Type: model.TransactionExpense, Category: "Fuel", Date: "2026-08-12"},
		}
		for _, e := range entries {
			require.NoError(t, repo.Create(ctx, e))
			assert.False(t, e.ID.IsZero())
		}

		listed, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, listed, 3)
	})

	t.Run("summary aggregates by type", func(t *testing.T) {
		summary, err := repo.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 25000.0, summary.TotalIncome)
		assert.Equal(t, 5500.0, summary.TotalExpense)
		assert.Equal(t, 19500.0, summary.Profit)
	})

	t.Run("delete adjusts the summary", func(t *testing.T) {
		listed, err := repo.List(ctx)
		require.NoError(t, err)

		for _, e := range listed {
			if e.Title == "Diesel" {
				require.NoError(t, repo.Delete(ctx, e.ID))
			}
		}

		summary, err := repo.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4000.0, summary.TotalExpense)
	})
}
