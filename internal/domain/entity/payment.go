// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents a single ledger row: a bill, a purchase or one installment of a purchase.
type Payment struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Description      string
	CategoryID       *uuid.UUID // Optional, nulled when the category is deleted
	Amount           decimal.Decimal
	DueDate          time.Time
	Month            int // Bucket month, not always equal to DueDate's month
	Year             int
	Paid             bool
	PaidAt           *time.Time
	IsInstallment    bool
	InstallmentCount int
	InstallmentIndex int
	GroupID          *uuid.UUID // Present only for installments of a multi-part purchase
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewPayment creates a new unpaid, single-installment Payment entity.
func NewPayment(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	dueDate time.Time,
	period Period,
	categoryID *uuid.UUID,
) *Payment {
	now := time.Now().UTC()

	return &Payment{
		ID:               newPaymentID(),
		UserID:           userID,
		Description:      description,
		CategoryID:       categoryID,
		Amount:           amount,
		DueDate:          dueDate,
		Month:            period.Month,
		Year:             period.Year,
		InstallmentCount: 1,
		InstallmentIndex: 1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// NewInstallment creates one installment row belonging to the given group.
func NewInstallment(
	userID uuid.UUID,
	groupID uuid.UUID,
	description string,
	amount decimal.Decimal,
	dueDate time.Time,
	period Period,
	categoryID *uuid.UUID,
	index, count int,
) *Payment {
	payment := NewPayment(userID, description, amount, dueDate, period, categoryID)
	payment.IsInstallment = true
	payment.InstallmentIndex = index
	payment.InstallmentCount = count
	payment.GroupID = &groupID
	return payment
}

// IsGrouped reports whether settling this payment must cascade to sibling installments.
func (p *Payment) IsGrouped() bool {
	return p.GroupID != nil
}

// newPaymentID returns a time-ordered identifier so that newer rows sort after older ones.
func newPaymentID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// PaymentWithCategory represents a payment with its associated category, if any.
type PaymentWithCategory struct {
	Payment  *Payment
	Category *Category
}

// CategoryName returns the category name or an empty string for uncategorized payments.
func (p *PaymentWithCategory) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}
