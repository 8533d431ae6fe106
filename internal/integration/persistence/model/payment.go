// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index:idx_payments_user_period,priority:1"`
	Description      string          `gorm:"type:varchar(255);not null"`
	CategoryID       *uuid.UUID      `gorm:"type:uuid;index"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate          time.Time       `gorm:"type:date;not null"`
	Month            int             `gorm:"not null;index:idx_payments_user_period,priority:3"`
	Year             int             `gorm:"not null;index:idx_payments_user_period,priority:2"`
	Paid             bool            `gorm:"not null;default:false"`
	PaidDate         *time.Time      `gorm:"column:paid_date"`
	IsCredit         bool            `gorm:"not null;default:false"`
	Installments     int             `gorm:"not null;default:1"`
	InstallmentIndex int             `gorm:"not null;default:1"`
	CreditGroup      *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:               m.ID,
		UserID:           m.UserID,
		Description:      m.Description,
		CategoryID:       m.CategoryID,
		Amount:           m.Amount,
		DueDate:          m.DueDate,
		Month:            m.Month,
		Year:             m.Year,
		Paid:             m.Paid,
		PaidAt:           m.PaidDate,
		IsInstallment:    m.IsCredit,
		InstallmentCount: m.Installments,
		InstallmentIndex: m.InstallmentIndex,
		GroupID:          m.CreditGroup,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a PaymentModel with its Category to a PaymentWithCategory entity.
func (m *PaymentModel) ToEntityWithCategory() *entity.PaymentWithCategory {
	result := &entity.PaymentWithCategory{
		Payment: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:               payment.ID,
		UserID:           payment.UserID,
		Description:      payment.Description,
		CategoryID:       payment.CategoryID,
		Amount:           payment.Amount,
		DueDate:          payment.DueDate,
		Month:            payment.Month,
		Year:             payment.Year,
		Paid:             payment.Paid,
		PaidDate:         payment.PaidAt,
		IsCredit:         payment.IsInstallment,
		Installments:     payment.InstallmentCount,
		InstallmentIndex: payment.InstallmentIndex,
		CreditGroup:      payment.GroupID,
		CreatedAt:        payment.CreatedAt,
		UpdatedAt:        payment.UpdatedAt,
	}
}
