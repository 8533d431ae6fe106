// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PaymentUpdate carries the editable fields of a payment.
type PaymentUpdate struct {
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	CategoryID  *uuid.UUID
}

// PaymentRepository defines the interface for ledger persistence operations.
// Every method is scoped by owner; rows of other owners are never read or written.
type PaymentRepository interface {
	// Create inserts a single payment.
	Create(ctx context.Context, payment *entity.Payment) error

	// CreateBatch inserts all payments in one transaction, or none of them.
	CreateBatch(ctx context.Context, payments []*entity.Payment) error

	// FindByIDAndUser retrieves a payment owned by userID.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Payment, error)

	// FindByGroup retrieves all installments of a group ordered by installment index.
	FindByGroup(ctx context.Context, groupID, userID uuid.UUID) ([]*entity.Payment, error)

	// ListByPeriod retrieves the owner's payments in a month/year bucket,
	// unpaid first, then by due date ascending, then by id descending.
	ListByPeriod(ctx context.Context, userID uuid.UUID, period entity.Period) ([]*entity.PaymentWithCategory, error)

	// Update changes the editable fields of an owned payment and returns the rows affected.
	Update(ctx context.Context, id, userID uuid.UUID, update PaymentUpdate) (int64, error)

	// Delete removes an owned payment and returns the rows affected.
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)

	// SetPaid moves an owned payment, and every sibling of its installment group,
	// to the given paid state. It returns the rows whose state changed.
	SetPaid(ctx context.Context, id, userID uuid.UUID, paid bool, at time.Time) (int64, error)

	// SetPaidByCategories moves every owned payment of the bucket that belongs to one
	// of the given categories to the given paid state, along with the other installments of
	// any group those payments belong to. It returns the rows whose state changed.
	SetPaidByCategories(ctx context.Context, userID uuid.UUID, period entity.Period, categoryIDs []uuid.UUID, paid bool, at time.Time) (int64, error)
}
