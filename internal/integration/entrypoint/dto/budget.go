package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
)

// UpsertBudgetRequest represents the request body for saving a month's budget.
type UpsertBudgetRequest struct {
	Month       int             `json:"month" binding:"required"`
	Year        int             `json:"year" binding:"required"`
	Income      decimal.Decimal `json:"income"`
	ExpenseGoal decimal.Decimal `json:"expense_goal"`
}

// BudgetResponse represents a month's budget.
type BudgetResponse struct {
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	Income      string `json:"income"`
	ExpenseGoal string `json:"expense_goal"`
}

// ToBudgetResponse converts a budget output to its DTO.
func ToBudgetResponse(b *budget.BudgetOutput) BudgetResponse {
	return BudgetResponse{
		Month:       b.Month,
		Year:        b.Year,
		Income:      b.Income.StringFixed(2),
		ExpenseGoal: b.ExpenseGoal.StringFixed(2),
	}
}
