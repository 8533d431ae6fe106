package payment

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListPaymentsInput represents the input for listing a month bucket.
type ListPaymentsInput struct {
	Session entity.Session
	Month   int
	Year    int
}

// ListPaymentsOutput represents the payments of a month bucket.
type ListPaymentsOutput struct {
	Payments []*PaymentOutput
}

// ListPaymentsUseCase lists the owner's payments of a month: unpaid first, then by due date, newest first on ties.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the listing.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	period := entity.NewPeriod(input.Month, input.Year)
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	rows, err := uc.paymentRepo.ListByPeriod(ctx, input.Session.OwnerID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]*PaymentOutput, len(rows))
	for i, row := range rows {
		payments[i] = toPaymentOutput(row)
	}
	return &ListPaymentsOutput{Payments: payments}, nil
}
