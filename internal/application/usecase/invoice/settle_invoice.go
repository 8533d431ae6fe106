// Package invoice contains credit-card invoice settlement use cases.
package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// SettleInvoiceInput selects the owner's month bucket to settle.
type SettleInvoiceInput struct {
	Session entity.Session
	Month   int
	Year    int
}

// SettleInvoiceOutput reports how many payments changed state.
type SettleInvoiceOutput struct {
	Changed int64
}

// SettleInvoiceUseCase marks or unmarks every credit-card payment of a month as paid.
// A payment belongs to the invoice when its category name contains one of the markers.
type SettleInvoiceUseCase struct {
	paymentRepo  adapter.PaymentRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
	markers      []string
	paid         bool
}

// NewMarkInvoicePaidUseCase creates the use case that settles a month's invoice.
func NewMarkInvoicePaidUseCase(
	paymentRepo adapter.PaymentRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
	markers []string,
) *SettleInvoiceUseCase {
	return newSettleInvoiceUseCase(paymentRepo, categoryRepo, clock, markers, true)
}

// NewUnmarkInvoicePaidUseCase creates the use case that reopens a month's invoice.
func NewUnmarkInvoicePaidUseCase(
	paymentRepo adapter.PaymentRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
	markers []string,
) *SettleInvoiceUseCase {
	return newSettleInvoiceUseCase(paymentRepo, categoryRepo, clock, markers, false)
}

func newSettleInvoiceUseCase(
	paymentRepo adapter.PaymentRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
	markers []string,
	paid bool,
) *SettleInvoiceUseCase {
	lowered := make([]string, 0, len(markers))
	for _, marker := range markers {
		if marker = strings.ToLower(strings.TrimSpace(marker)); marker != "" {
			lowered = append(lowered, marker)
		}
	}
	return &SettleInvoiceUseCase{
		paymentRepo:  paymentRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
		markers:      lowered,
		paid:         paid,
	}
}

// Execute applies the paid state to the month's credit-card payments. Repeating it changes nothing.
func (uc *SettleInvoiceUseCase) Execute(ctx context.Context, input SettleInvoiceInput) (*SettleInvoiceOutput, error) {
	period := entity.NewPeriod(input.Month, input.Year)
	if !period.Valid() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be between 1 and 12 and year between 1900 and 9999",
			domainerror.ErrInvalidPeriod,
		)
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.Session.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categoryIDs := uc.creditCardCategories(categories)
	if len(categoryIDs) == 0 {
		return &SettleInvoiceOutput{}, nil
	}

	changed, err := uc.paymentRepo.SetPaidByCategories(ctx, input.Session.OwnerID, period, categoryIDs, uc.paid, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to settle invoice: %w", err)
	}

	slog.Info("Credit card invoice settled",
		"user_id", input.Session.OwnerID,
		"period", period.String(),
		"paid", uc.paid,
		"rows", changed,
	)
	return &SettleInvoiceOutput{Changed: changed}, nil
}

// creditCardCategories returns the ids of categories whose names contain a marker, ignoring case.
func (uc *SettleInvoiceUseCase) creditCardCategories(categories []*entity.Category) []uuid.UUID {
	var ids []uuid.UUID
	for _, category := range categories {
		if IsCreditCardCategory(category.Name, uc.markers) {
			ids = append(ids, category.ID)
		}
	}
	return ids
}

// IsCreditCardCategory reports whether name contains one of the lower-cased markers.
func IsCreditCardCategory(name string, markers []string) bool {
	name = strings.ToLower(name)
	for _, marker := range markers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
