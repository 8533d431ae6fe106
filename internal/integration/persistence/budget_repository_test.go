package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger/internal/testutil"
)

func TestBudgetRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewBudgetRepository(db)
	userID := uuid.New()

	budget, err := repo.FindByPeriod(ctx, userID, march2025)
	require.NoError(t, err)
	assert.Nil(t, budget)

	require.NoError(t, repo.Upsert(ctx, entity.NewBudget(userID, march2025, decimal.NewFromInt(5000), decimal.NewFromInt(3000))))
	require.NoError(t, repo.Upsert(ctx, entity.NewBudget(userID, march2025, decimal.NewFromInt(5200), decimal.Zero)))

	budget, err = repo.FindByPeriod(ctx, userID, march2025)
	require.NoError(t, err)
	require.NotNil(t, budget)
	assert.True(t, decimal.NewFromInt(5200).Equal(budget.Income))
	assert.True(t, budget.ExpenseGoal.IsZero())

	var count int64
	require.NoError(t, db.Model(&model.BudgetModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "one row per owner and period")

	other, err := repo.FindByPeriod(ctx, userID, march2025.AddMonths(1))
	require.NoError(t, err)
	assert.Nil(t, other)
}
