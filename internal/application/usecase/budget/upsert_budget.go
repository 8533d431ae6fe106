package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpsertBudgetInput represents a month's income and spending goal.
type UpsertBudgetInput struct {
	Session     entity.Session
	Month       int
	Year        int
	Income      decimal.Decimal
	ExpenseGoal decimal.Decimal
}

// UpsertBudgetUseCase saves a month's budget, replacing any previous values.
type UpsertBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute validates and stores the budget. Zero is allowed, negatives are not.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*BudgetOutput, error) {
	period := entity.NewPeriod(input.Month, input.Year)
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if input.Income.IsNegative() || input.ExpenseGoal.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudgetValue,
			"income and spending goal must not be negative",
			domainerror.ErrNegativeBudgetValue,
		)
	}

	budget := entity.NewBudget(input.Session.OwnerID, period, input.Income.Round(2), input.ExpenseGoal.Round(2))
	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	slog.Info("Budget saved", "user_id", input.Session.OwnerID, "period", period.String())

	return &BudgetOutput{
		Month:       budget.Month,
		Year:        budget.Year,
		Income:      budget.Income,
		ExpenseGoal: budget.ExpenseGoal,
	}, nil
}
