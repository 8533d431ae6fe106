// Package budget contains monthly budget use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// GetBudgetInput selects the month to read.
type GetBudgetInput struct {
	Session entity.Session
	Month   int
	Year    int
}

// BudgetOutput represents a month's income and spending goal.
type BudgetOutput struct {
	Month       int
	Year        int
	Income      decimal.Decimal
	ExpenseGoal decimal.Decimal
}

// GetBudgetUseCase reads a month's budget. Months never saved read as zeros.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the lookup.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*BudgetOutput, error) {
	period := entity.NewPeriod(input.Month, input.Year)
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.FindByPeriod(ctx, input.Session.OwnerID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if budget == nil {
		budget = entity.EmptyBudget(input.Session.OwnerID, period)
	}

	return &BudgetOutput{
		Month:       budget.Month,
		Year:        budget.Year,
		Income:      budget.Income,
		ExpenseGoal: budget.ExpenseGoal,
	}, nil
}

func validatePeriod(period entity.Period) error {
	if !period.Valid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"month must be between 1 and 12 and year between 1900 and 9999",
			domainerror.ErrInvalidPeriod,
		)
	}
	return nil
}
