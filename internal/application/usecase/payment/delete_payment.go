package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DeletePaymentInput represents the input for payment deletion.
type DeletePaymentInput struct {
	Session   entity.Session
	PaymentID uuid.UUID
}

// DeletePaymentUseCase removes a single payment. Installment siblings are kept.
type DeletePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(paymentRepo adapter.PaymentRepository) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the deletion. An unknown or foreign id is a no-op.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, input DeletePaymentInput) error {
	rows, err := uc.paymentRepo.Delete(ctx, input.PaymentID, input.Session.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if rows > 0 {
		slog.Info("Payment deleted", "user_id", input.Session.OwnerID, "payment_id", input.PaymentID)
	}
	return nil
}
