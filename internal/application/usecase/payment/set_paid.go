package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// SetPaidInput represents a paid state change request.
type SetPaidInput struct {
	Session   entity.Session
	PaymentID uuid.UUID
	Paid      bool
}

// SetPaidOutput reports how many payments changed state.
type SetPaidOutput struct {
	Changed int64
}

// SetPaidUseCase settles or reopens a payment. Installments settle with their whole group.
type SetPaidUseCase struct {
	paymentRepo adapter.PaymentRepository
	clock       adapter.Clock
}

// NewSetPaidUseCase creates a new SetPaidUseCase instance.
func NewSetPaidUseCase(paymentRepo adapter.PaymentRepository, clock adapter.Clock) *SetPaidUseCase {
	return &SetPaidUseCase{
		paymentRepo: paymentRepo,
		clock:       clock,
	}
}

// Execute applies the change in one transaction. Repeating it changes nothing.
func (uc *SetPaidUseCase) Execute(ctx context.Context, input SetPaidInput) (*SetPaidOutput, error) {
	changed, err := uc.paymentRepo.SetPaid(ctx, input.PaymentID, input.Session.OwnerID, input.Paid, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to set paid state: %w", err)
	}

	if changed > 0 {
		slog.Info("Payment paid state changed",
			"user_id", input.Session.OwnerID,
			"payment_id", input.PaymentID,
			"paid", input.Paid,
			"rows", changed,
		)
	}
	return &SetPaidOutput{Changed: changed}, nil
}
