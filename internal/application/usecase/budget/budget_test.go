package budget

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/testutil"
)

func TestBudgetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewBudgetRepository(testutil.NewDB(t))
	get := NewGetBudgetUseCase(repo)
	upsert := NewUpsertBudgetUseCase(repo)
	session := entity.NewSession(uuid.New())

	empty, err := get.Execute(ctx, GetBudgetInput{Session: session, Month: 3, Year: 2025})
	require.NoError(t, err)
	assert.True(t, empty.Income.IsZero())
	assert.True(t, empty.ExpenseGoal.IsZero())

	_, err = upsert.Execute(ctx, UpsertBudgetInput{
		Session: session, Month: 3, Year: 2025,
		Income: decimal.RequireFromString("5000.00"), ExpenseGoal: decimal.RequireFromString("3500.50"),
	})
	require.NoError(t, err)

	_, err = upsert.Execute(ctx, UpsertBudgetInput{
		Session: session, Month: 3, Year: 2025,
		Income: decimal.RequireFromString("5200.00"), ExpenseGoal: decimal.Zero,
	})
	require.NoError(t, err)

	got, err := get.Execute(ctx, GetBudgetInput{Session: session, Month: 3, Year: 2025})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("5200").Equal(got.Income), "income %s", got.Income)
	assert.True(t, got.ExpenseGoal.IsZero())

	other, err := get.Execute(ctx, GetBudgetInput{Session: entity.NewSession(uuid.New()), Month: 3, Year: 2025})
	require.NoError(t, err)
	assert.True(t, other.Income.IsZero(), "budgets are per owner")
}

func TestUpsertBudgetValidation(t *testing.T) {
	ctx := context.Background()
	upsert := NewUpsertBudgetUseCase(persistence.NewBudgetRepository(testutil.NewDB(t)))
	session := entity.NewSession(uuid.New())

	tests := []struct {
		name     string
		input    UpsertBudgetInput
		expected error
	}{
		{
			name:     "negative income",
			input:    UpsertBudgetInput{Session: session, Month: 1, Year: 2025, Income: decimal.NewFromInt(-1), ExpenseGoal: decimal.Zero},
			expected: domainerror.ErrNegativeBudgetValue,
		},
		{
			name:     "negative goal",
			input:    UpsertBudgetInput{Session: session, Month: 1, Year: 2025, Income: decimal.Zero, ExpenseGoal: decimal.NewFromInt(-1)},
			expected: domainerror.ErrNegativeBudgetValue,
		},
		{
			name:     "month out of range",
			input:    UpsertBudgetInput{Session: session, Month: 0, Year: 2025, Income: decimal.Zero, ExpenseGoal: decimal.Zero},
			expected: domainerror.ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := upsert.Execute(ctx, tt.input)
			assert.ErrorIs(t, err, tt.expected)
			assert.True(t, domainerror.IsValidation(err))
		})
	}
}

func TestGetBudgetRejectsInvalidPeriod(t *testing.T) {
	get := NewGetBudgetUseCase(persistence.NewBudgetRepository(testutil.NewDB(t)))
	session := entity.NewSession(uuid.New())

	for _, month := range []int{0, 13} {
		out, err := get.Execute(context.Background(), GetBudgetInput{Session: session, Month: month, Year: 2025})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerror.ErrInvalidPeriod, "month %d", month)
		assert.True(t, domainerror.IsValidation(err))
	}
}
