package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PaymentOutput represents a payment in use case responses.
type PaymentOutput struct {
	ID               uuid.UUID
	Description      string
	Amount           decimal.Decimal
	DueDate          time.Time
	Month            int
	Year             int
	Paid             bool
	PaidAt           *time.Time
	IsInstallment    bool
	InstallmentIndex int
	InstallmentCount int
	GroupID          *uuid.UUID
	Category         *CategoryOutput
}

// CategoryOutput represents the category attached to a payment.
type CategoryOutput struct {
	ID   uuid.UUID
	Name string
}

func toPaymentOutput(row *entity.PaymentWithCategory) *PaymentOutput {
	p := row.Payment
	output := &PaymentOutput{
		ID:               p.ID,
		Description:      p.Description,
		Amount:           p.Amount,
		DueDate:          p.DueDate,
		Month:            p.Month,
		Year:             p.Year,
		Paid:             p.Paid,
		PaidAt:           p.PaidAt,
		IsInstallment:    p.IsInstallment,
		InstallmentIndex: p.InstallmentIndex,
		InstallmentCount: p.InstallmentCount,
		GroupID:          p.GroupID,
	}
	if row.Category != nil {
		output.Category = &CategoryOutput{
			ID:   row.Category.ID,
			Name: row.Category.Name,
		}
	}
	return output
}
