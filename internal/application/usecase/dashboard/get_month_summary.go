// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

var hundred = decimal.NewFromInt(100)

// GetMonthSummaryInput selects the month to summarize.
type GetMonthSummaryInput struct {
	Session entity.Session
	Month   int
	Year    int
}

// GetMonthSummaryUseCase totals a month's payments and compares them with its budget.
type GetMonthSummaryUseCase struct {
	paymentRepo adapter.PaymentRepository
	budgetRepo  adapter.BudgetRepository
	clock       adapter.Clock
}

// NewGetMonthSummaryUseCase creates a new GetMonthSummaryUseCase instance.
func NewGetMonthSummaryUseCase(
	paymentRepo adapter.PaymentRepository,
	budgetRepo adapter.BudgetRepository,
	clock adapter.Clock,
) *GetMonthSummaryUseCase {
	return &GetMonthSummaryUseCase{
		paymentRepo: paymentRepo,
		budgetRepo:  budgetRepo,
		clock:       clock,
	}
}

// Execute loads payments and budget concurrently and summarizes them.
func (uc *GetMonthSummaryUseCase) Execute(ctx context.Context, input GetMonthSummaryInput) (*entity.MonthSummary, error) {
	period := entity.NewPeriod(input.Month, input.Year)
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	var (
		rows   []*entity.PaymentWithCategory
		budget *entity.Budget
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = uc.paymentRepo.ListByPeriod(gctx, input.Session.OwnerID, period)
		if err != nil {
			return fmt.Errorf("failed to list payments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budget, err = uc.budgetRepo.FindByPeriod(gctx, input.Session.OwnerID, period)
		if err != nil {
			return fmt.Errorf("failed to find budget: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if budget == nil {
		budget = entity.EmptyBudget(input.Session.OwnerID, period)
	}
	return Summarize(period, rows, budget, uc.clock.Now()), nil
}

// Summarize computes the month figures. A payment is overdue when unpaid and due before today's date.
func Summarize(period entity.Period, rows []*entity.PaymentWithCategory, budget *entity.Budget, now time.Time) *entity.MonthSummary {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	summary := &entity.MonthSummary{
		Period:          period,
		PaymentCount:    len(rows),
		Total:           decimal.Zero,
		Paid:            decimal.Zero,
		Overdue:         decimal.Zero,
		Income:          budget.Income,
		ExpenseGoal:     budget.ExpenseGoal,
		GoalRemaining:   decimal.Zero,
		GoalUsedPercent: decimal.Zero,
	}

	for _, row := range rows {
		p := row.Payment
		summary.Total = summary.Total.Add(p.Amount)
		if p.Paid {
			summary.Paid = summary.Paid.Add(p.Amount)
			continue
		}
		if p.DueDate.Before(today) {
			summary.Overdue = summary.Overdue.Add(p.Amount)
		}
	}

	summary.Open = summary.Total.Sub(summary.Paid)
	summary.Balance = summary.Income.Sub(summary.Total)
	if summary.ExpenseGoal.IsPositive() {
		summary.GoalRemaining = summary.ExpenseGoal.Sub(summary.Total)
		summary.GoalUsedPercent = summary.Total.Mul(hundred).Div(summary.ExpenseGoal).Round(1)
	}
	return summary
}

func validatePeriod(period entity.Period) error {
	if !period.Valid() {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be between 1 and 12 and year between 1900 and 9999",
			domainerror.ErrInvalidPeriod,
		)
	}
	return nil
}
