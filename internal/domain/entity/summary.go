package entity

import "github.com/shopspring/decimal"

// MonthSummary aggregates a month's payments against its budget.
type MonthSummary struct {
	Period          Period
	PaymentCount    int
	Total           decimal.Decimal
	Paid            decimal.Decimal
	Open            decimal.Decimal
	Overdue         decimal.Decimal
	Income          decimal.Decimal
	ExpenseGoal     decimal.Decimal
	Balance         decimal.Decimal // Income minus total
	GoalRemaining   decimal.Decimal // Zero when no goal is set
	GoalUsedPercent decimal.Decimal // Zero when no goal is set
}
