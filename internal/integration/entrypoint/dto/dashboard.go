package dto

import (
	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ExportQuery binds the export query string.
type ExportQuery struct {
	PeriodQuery
	Format string `form:"format" binding:"required"`
}

// MonthSummaryResponse represents the month figures.
type MonthSummaryResponse struct {
	Month           int    `json:"month"`
	Year            int    `json:"year"`
	PaymentCount    int    `json:"payment_count"`
	Total           string `json:"total"`
	Paid            string `json:"paid"`
	Open            string `json:"open"`
	Overdue         string `json:"overdue"`
	Income          string `json:"income"`
	ExpenseGoal     string `json:"expense_goal"`
	Balance         string `json:"balance"`
	GoalRemaining   string `json:"goal_remaining"`
	GoalUsedPercent string `json:"goal_used_percent"`
}

// CategoryBreakdownItemResponse represents one category's share of the month.
type CategoryBreakdownItemResponse struct {
	CategoryName string  `json:"category_name"`
	Amount       string  `json:"amount"`
	Percentage   float64 `json:"percentage"`
	PaymentCount int     `json:"payment_count"`
}

// CategoryBreakdownResponse represents the month's spending per category.
type CategoryBreakdownResponse struct {
	Month      int                             `json:"month"`
	Year       int                             `json:"year"`
	Total      string                          `json:"total"`
	Categories []CategoryBreakdownItemResponse `json:"categories"`
}

// ToMonthSummaryResponse converts a month summary to its DTO.
func ToMonthSummaryResponse(s *entity.MonthSummary) MonthSummaryResponse {
	return MonthSummaryResponse{
		Month:           s.Period.Month,
		Year:            s.Period.Year,
		PaymentCount:    s.PaymentCount,
		Total:           s.Total.StringFixed(2),
		Paid:            s.Paid.StringFixed(2),
		Open:            s.Open.StringFixed(2),
		Overdue:         s.Overdue.StringFixed(2),
		Income:          s.Income.StringFixed(2),
		ExpenseGoal:     s.ExpenseGoal.StringFixed(2),
		Balance:         s.Balance.StringFixed(2),
		GoalRemaining:   s.GoalRemaining.StringFixed(2),
		GoalUsedPercent: s.GoalUsedPercent.StringFixed(1),
	}
}

// ToCategoryBreakdownResponse converts a breakdown output to its DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategoryBreakdownItemResponse, len(output.Categories))
	for i, item := range output.Categories {
		percentage, _ := item.Percentage.Float64()
		categories[i] = CategoryBreakdownItemResponse{
			CategoryName: item.CategoryName,
			Amount:       item.Amount.StringFixed(2),
			Percentage:   percentage,
			PaymentCount: item.PaymentCount,
		}
	}
	return CategoryBreakdownResponse{
		Month:      output.Period.Month,
		Year:       output.Period.Year,
		Total:      output.Total.StringFixed(2),
		Categories: categories,
	}
}
