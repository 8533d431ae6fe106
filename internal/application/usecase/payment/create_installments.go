package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateInstallmentsInput represents a purchase to split into monthly installments.
type CreateInstallmentsInput struct {
	Session     entity.Session
	Description string
	Total       decimal.Decimal
	Count       int
	StartMonth  int
	StartYear   int
	CategoryID  *uuid.UUID
	DueDay      *int // Nil uses the configured default
}

// CreateInstallmentsOutput represents the created group.
type CreateInstallmentsOutput struct {
	GroupID  uuid.UUID
	Payments []*PaymentOutput
}

// CreateInstallmentsUseCase plans and stores an installment group atomically.
type CreateInstallmentsUseCase struct {
	paymentRepo   adapter.PaymentRepository
	categoryRepo  adapter.CategoryRepository
	defaultDueDay int
}

// NewCreateInstallmentsUseCase creates a new CreateInstallmentsUseCase instance.
func NewCreateInstallmentsUseCase(
	paymentRepo adapter.PaymentRepository,
	categoryRepo adapter.CategoryRepository,
	defaultDueDay int,
) *CreateInstallmentsUseCase {
	if defaultDueDay < 1 {
		defaultDueDay = 10
	}
	return &CreateInstallmentsUseCase{
		paymentRepo:   paymentRepo,
		categoryRepo:  categoryRepo,
		defaultDueDay: defaultDueDay,
	}
}

// Execute validates the plan and inserts every part in one transaction.
func (uc *CreateInstallmentsUseCase) Execute(ctx context.Context, input CreateInstallmentsInput) (*CreateInstallmentsOutput, error) {
	dueDay := uc.defaultDueDay
	if input.DueDay != nil {
		dueDay = *input.DueDay
	}

	parts, err := PlanInstallments(
		input.Description,
		input.Total,
		input.Count,
		entity.NewPeriod(input.StartMonth, input.StartYear),
		dueDay,
	)
	if err != nil {
		return nil, err
	}
	if err := ensureCategoryOwned(ctx, uc.categoryRepo, input.CategoryID, input.Session.OwnerID); err != nil {
		return nil, err
	}

	groupID := uuid.New()
	payments := make([]*entity.Payment, len(parts))
	outputs := make([]*PaymentOutput, len(parts))
	for i, part := range parts {
		payments[i] = entity.NewInstallment(
			input.Session.OwnerID,
			groupID,
			part.Description,
			part.Amount,
			part.DueDate,
			part.Period,
			input.CategoryID,
			part.Index,
			part.Count,
		)
		outputs[i] = toPaymentOutput(&entity.PaymentWithCategory{Payment: payments[i]})
	}

	if err := uc.paymentRepo.CreateBatch(ctx, payments); err != nil {
		return nil, fmt.Errorf("failed to create installments: %w", err)
	}

	slog.Info("Installments created",
		"user_id", input.Session.OwnerID,
		"group_id", groupID,
		"count", len(parts),
		"start", parts[0].Period.String(),
	)

	return &CreateInstallmentsOutput{GroupID: groupID, Payments: outputs}, nil
}
