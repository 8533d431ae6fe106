package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// AddPaymentInput represents the input for a one-off payment.
type AddPaymentInput struct {
	Session     entity.Session
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	Month       int
	Year        int
	CategoryID  *uuid.UUID
}

// AddPaymentOutput represents the output of payment creation.
type AddPaymentOutput struct {
	ID uuid.UUID
}

// AddPaymentUseCase records a single unpaid payment in a month bucket.
type AddPaymentUseCase struct {
	paymentRepo  adapter.PaymentRepository
	categoryRepo adapter.CategoryRepository
}

// NewAddPaymentUseCase creates a new AddPaymentUseCase instance.
func NewAddPaymentUseCase(paymentRepo adapter.PaymentRepository, categoryRepo adapter.CategoryRepository) *AddPaymentUseCase {
	return &AddPaymentUseCase{
		paymentRepo:  paymentRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute validates the input and inserts the payment.
func (uc *AddPaymentUseCase) Execute(ctx context.Context, input AddPaymentInput) (*AddPaymentOutput, error) {
	description, err := normalizeDescription(input.Description, 0)
	if err != nil {
		return nil, err
	}
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	period := entity.NewPeriod(input.Month, input.Year)
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	dueDate, err := normalizeDueDate(input.DueDate)
	if err != nil {
		return nil, err
	}
	if err := ensureCategoryOwned(ctx, uc.categoryRepo, input.CategoryID, input.Session.OwnerID); err != nil {
		return nil, err
	}

	payment := entity.NewPayment(input.Session.OwnerID, description, amount, dueDate, period, input.CategoryID)
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	slog.Info("Payment added",
		"user_id", input.Session.OwnerID,
		"payment_id", payment.ID,
		"period", period.String(),
	)

	return &AddPaymentOutput{ID: payment.ID}, nil
}
