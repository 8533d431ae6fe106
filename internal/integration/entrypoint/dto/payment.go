package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/payment"
)

// DateLayout is the wire format of due and paid dates.
const DateLayout = "2006-01-02"

// PeriodQuery binds the month/year query string shared by period endpoints.
type PeriodQuery struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=1900,max=9999"`
}

// CreatePaymentRequest represents the request body for adding a payment.
type CreatePaymentRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date" binding:"required"`
	Month       int             `json:"month" binding:"required"`
	Year        int             `json:"year" binding:"required"`
	CategoryID  *string         `json:"category_id,omitempty"`
}

// UpdatePaymentRequest represents the request body for editing a payment.
type UpdatePaymentRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date" binding:"required"`
	CategoryID  *string         `json:"category_id,omitempty"`
}

// CreateInstallmentsRequest represents the request body for splitting a purchase.
type CreateInstallmentsRequest struct {
	Description string          `json:"description" binding:"required"`
	Total       decimal.Decimal `json:"total"`
	Count       int             `json:"count" binding:"required"`
	StartMonth  int             `json:"start_month" binding:"required"`
	StartYear   int             `json:"start_year" binding:"required"`
	DueDay      *int            `json:"due_day,omitempty"`
	CategoryID  *string         `json:"category_id,omitempty"`
}

// SetPaidRequest represents the request body for toggling the paid flag.
type SetPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// PaymentCategoryResponse represents category information in payment responses.
type PaymentCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentResponse represents a single payment in API responses.
type PaymentResponse struct {
	ID               string                   `json:"id"`
	Description      string                   `json:"description"`
	Amount           string                   `json:"amount"`
	DueDate          string                   `json:"due_date"`
	Month            int                      `json:"month"`
	Year             int                      `json:"year"`
	Paid             bool                     `json:"paid"`
	PaidDate         *string                  `json:"paid_date,omitempty"`
	IsInstallment    bool                     `json:"is_installment"`
	InstallmentIndex int                      `json:"installment_index"`
	InstallmentCount int                      `json:"installment_count"`
	GroupID          *string                  `json:"group_id,omitempty"`
	Category         *PaymentCategoryResponse `json:"category,omitempty"`
}

// PaymentListResponse represents a month's payments.
type PaymentListResponse struct {
	Data []PaymentResponse `json:"data"`
}

// CreatedResponse carries the identifier of a created row.
type CreatedResponse struct {
	ID string `json:"id"`
}

// InstallmentsResponse represents a created installment group.
type InstallmentsResponse struct {
	GroupID string            `json:"group_id"`
	Data    []PaymentResponse `json:"data"`
}

// ChangedResponse reports how many rows a bulk operation changed.
type ChangedResponse struct {
	Changed int64 `json:"changed"`
}

// ToPaymentResponse converts a payment output to its DTO.
func ToPaymentResponse(p *payment.PaymentOutput) PaymentResponse {
	resp := PaymentResponse{
		ID:               p.ID.String(),
		Description:      p.Description,
		Amount:           p.Amount.StringFixed(2),
		DueDate:          p.DueDate.Format(DateLayout),
		Month:            p.Month,
		Year:             p.Year,
		Paid:             p.Paid,
		IsInstallment:    p.IsInstallment,
		InstallmentIndex: p.InstallmentIndex,
		InstallmentCount: p.InstallmentCount,
	}
	if p.PaidAt != nil {
		paidDate := p.PaidAt.Format(DateLayout)
		resp.PaidDate = &paidDate
	}
	if p.GroupID != nil {
		groupID := p.GroupID.String()
		resp.GroupID = &groupID
	}
	if p.Category != nil {
		resp.Category = &PaymentCategoryResponse{
			ID:   p.Category.ID.String(),
			Name: p.Category.Name,
		}
	}
	return resp
}

// ToPaymentResponses converts a list of payment outputs.
func ToPaymentResponses(payments []*payment.PaymentOutput) []PaymentResponse {
	data := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		data[i] = ToPaymentResponse(p)
	}
	return data
}

// ParseDate parses a due date in DateLayout.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// ParseOptionalID parses an optional UUID sent in a request body.
func ParseOptionalID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
