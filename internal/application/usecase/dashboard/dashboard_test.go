package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/testutil"
)

func row(amount string, day int, paid bool, category *entity.Category) *entity.PaymentWithCategory {
	period := entity.NewPeriod(3, 2025)
	p := entity.NewPayment(uuid.New(), "x", decimal.RequireFromString(amount), period.Date(day), period, nil)
	p.Paid = paid
	return &entity.PaymentWithCategory{Payment: p, Category: category}
}

func TestSummarize(t *testing.T) {
	period := entity.NewPeriod(3, 2025)
	now := time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC)
	rows := []*entity.PaymentWithCategory{
		row("100.00", 5, true, nil),  // paid
		row("50.00", 10, false, nil), // overdue
		row("30.00", 15, false, nil), // due today, not overdue
		row("20.00", 25, false, nil), // open
	}

	t.Run("with goal", func(t *testing.T) {
		budget := entity.NewBudget(uuid.New(), period, decimal.NewFromInt(1000), decimal.NewFromInt(400))
		s := Summarize(period, rows, budget, now)

		assert.Equal(t, 4, s.PaymentCount)
		assert.Equal(t, "200", s.Total.String())
		assert.Equal(t, "100", s.Paid.String())
		assert.Equal(t, "100", s.Open.String())
		assert.Equal(t, "50", s.Overdue.String())
		assert.Equal(t, "800", s.Balance.String())
		assert.Equal(t, "200", s.GoalRemaining.String())
		assert.Equal(t, "50", s.GoalUsedPercent.String())
	})

	t.Run("without goal", func(t *testing.T) {
		s := Summarize(period, rows, entity.EmptyBudget(uuid.New(), period), now)

		assert.Equal(t, "-200", s.Balance.String())
		assert.True(t, s.GoalRemaining.IsZero())
		assert.True(t, s.GoalUsedPercent.IsZero())
	})

	t.Run("empty month", func(t *testing.T) {
		s := Summarize(period, nil, entity.EmptyBudget(uuid.New(), period), now)

		assert.Zero(t, s.PaymentCount)
		assert.True(t, s.Total.IsZero())
		assert.True(t, s.Open.IsZero())
	})
}

func TestGetMonthSummary(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	payments := persistence.NewPaymentRepository(db)
	budgets := persistence.NewBudgetRepository(db)
	session := entity.NewSession(uuid.New())
	period := entity.NewPeriod(3, 2025)

	require.NoError(t, payments.Create(ctx, entity.NewPayment(session.OwnerID, "a", decimal.NewFromInt(70), period.Date(1), period, nil)))
	require.NoError(t, payments.Create(ctx, entity.NewPayment(session.OwnerID, "b", decimal.NewFromInt(30), period.Date(28), period, nil)))
	require.NoError(t, budgets.Upsert(ctx, entity.NewBudget(session.OwnerID, period, decimal.NewFromInt(500), decimal.NewFromInt(200))))

	uc := NewGetMonthSummaryUseCase(payments, budgets, testutil.NewFixedClock(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	s, err := uc.Execute(ctx, GetMonthSummaryInput{Session: session, Month: 3, Year: 2025})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(100).Equal(s.Total))
	assert.True(t, decimal.NewFromInt(70).Equal(s.Overdue))
	assert.True(t, decimal.NewFromInt(400).Equal(s.Balance))
	assert.True(t, decimal.NewFromInt(50).Equal(s.GoalUsedPercent))

	_, err = uc.Execute(ctx, GetMonthSummaryInput{Session: session, Month: 13, Year: 2025})
	assert.Error(t, err)
}

func TestGetCategoryBreakdown(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	payments := persistence.NewPaymentRepository(db)
	categories := persistence.NewCategoryRepository(db)
	session := entity.NewSession(uuid.New())
	period := entity.NewPeriod(3, 2025)

	home := entity.NewCategory(session.OwnerID, "Moradia")
	require.NoError(t, categories.Create(ctx, home))

	for _, p := range []*entity.Payment{
		entity.NewPayment(session.OwnerID, "aluguel", decimal.NewFromInt(600), period.Date(5), period, &home.ID),
		entity.NewPayment(session.OwnerID, "luz", decimal.NewFromInt(150), period.Date(6), period, &home.ID),
		entity.NewPayment(session.OwnerID, "avulso", decimal.NewFromInt(250), period.Date(7), period, nil),
	} {
		require.NoError(t, payments.Create(ctx, p))
	}

	out, err := NewGetCategoryBreakdownUseCase(payments).Execute(ctx, GetCategoryBreakdownInput{Session: session, Month: 3, Year: 2025})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1000).Equal(out.Total))
	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Moradia", out.Categories[0].CategoryName)
	assert.Equal(t, 2, out.Categories[0].PaymentCount)
	assert.True(t, decimal.NewFromInt(75).Equal(out.Categories[0].Percentage))
	assert.Equal(t, UncategorizedName, out.Categories[1].CategoryName)
	assert.True(t, decimal.NewFromInt(25).Equal(out.Categories[1].Percentage))
}
