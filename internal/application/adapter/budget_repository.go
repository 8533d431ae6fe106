package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// BudgetRepository defines the interface for monthly budget persistence.
type BudgetRepository interface {
	// FindByPeriod returns the user's budget for the period, or nil when none was saved.
	FindByPeriod(ctx context.Context, userID uuid.UUID, period entity.Period) (*entity.Budget, error)

	// Upsert inserts the budget or replaces income and goal of the existing (user, month, year) row.
	Upsert(ctx context.Context, budget *entity.Budget) error
}
