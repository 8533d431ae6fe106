package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpdatePaymentInput represents the editable fields of a payment.
type UpdatePaymentInput struct {
	Session     entity.Session
	PaymentID   uuid.UUID
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	CategoryID  *uuid.UUID
}

// UpdatePaymentOutput reports whether a row was changed.
type UpdatePaymentOutput struct {
	Updated bool
}

// UpdatePaymentUseCase edits description, amount, due date and category.
// Bucket, paid state and installment descriptors are left as they are. Installments keep
// their "(i/n)" suffix and their amount, so a group always sums to the purchase total.
type UpdatePaymentUseCase struct {
	paymentRepo  adapter.PaymentRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdatePaymentUseCase creates a new UpdatePaymentUseCase instance.
func NewUpdatePaymentUseCase(paymentRepo adapter.PaymentRepository, categoryRepo adapter.CategoryRepository) *UpdatePaymentUseCase {
	return &UpdatePaymentUseCase{
		paymentRepo:  paymentRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the update. An unknown or foreign id changes nothing and is not an error.
func (uc *UpdatePaymentUseCase) Execute(ctx context.Context, input UpdatePaymentInput) (*UpdatePaymentOutput, error) {
	description, err := normalizeDescription(input.Description, 0)
	if err != nil {
		return nil, err
	}
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	dueDate, err := normalizeDueDate(input.DueDate)
	if err != nil {
		return nil, err
	}

	current, err := uc.paymentRepo.FindByIDAndUser(ctx, input.PaymentID, input.Session.OwnerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			return &UpdatePaymentOutput{Updated: false}, nil
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	if current.IsGrouped() {
		if !amount.Equal(current.Amount) {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodeInstallmentAmountLocked,
				"the amount of an installment cannot be changed on its own",
				domainerror.ErrInstallmentAmountLocked,
			)
		}
		suffix := installmentSuffix(current.InstallmentIndex, current.InstallmentCount)
		description, err = normalizeDescription(strings.TrimSuffix(description, suffix), len(suffix))
		if err != nil {
			return nil, err
		}
		description += suffix
	}
	if err := ensureCategoryOwned(ctx, uc.categoryRepo, input.CategoryID, input.Session.OwnerID); err != nil {
		return nil, err
	}

	rows, err := uc.paymentRepo.Update(ctx, input.PaymentID, input.Session.OwnerID, adapter.PaymentUpdate{
		Description: description,
		Amount:      amount,
		DueDate:     dueDate,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	if rows > 0 {
		slog.Info("Payment updated", "user_id", input.Session.OwnerID, "payment_id", input.PaymentID)
	}
	return &UpdatePaymentOutput{Updated: rows > 0}, nil
}
