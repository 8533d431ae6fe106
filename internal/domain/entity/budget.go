package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget holds the income and spending goal planned for one month.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Month       int
	Year        int
	Income      decimal.Decimal
	ExpenseGoal decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a new Budget entity for the given period.
func NewBudget(userID uuid.UUID, period Period, income, expenseGoal decimal.Decimal) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Month:       period.Month,
		Year:        period.Year,
		Income:      income,
		ExpenseGoal: expenseGoal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EmptyBudget returns the zero budget reported when nothing was planned for a period.
func EmptyBudget(userID uuid.UUID, period Period) *Budget {
	return &Budget{
		UserID:      userID,
		Month:       period.Month,
		Year:        period.Year,
		Income:      decimal.Zero,
		ExpenseGoal: decimal.Zero,
	}
}
