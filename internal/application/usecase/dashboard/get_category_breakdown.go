package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UncategorizedName labels payments without a category.
const UncategorizedName = "Sem categoria"

// GetCategoryBreakdownInput selects the month to break down.
type GetCategoryBreakdownInput struct {
	Session entity.Session
	Month   int
	Year    int
}

// CategoryBreakdownItem represents the spending of one category.
type CategoryBreakdownItem struct {
	CategoryName string
	Amount       decimal.Decimal
	Percentage   decimal.Decimal
	PaymentCount int
}

// GetCategoryBreakdownOutput represents a month's spending per category, largest first.
type GetCategoryBreakdownOutput struct {
	Period     entity.Period
	Total      decimal.Decimal
	Categories []CategoryBreakdownItem
}

// GetCategoryBreakdownUseCase handles getting spending breakdown by category.
type GetCategoryBreakdownUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(paymentRepo adapter.PaymentRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute groups the month's payments by category name.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	period := entity.NewPeriod(input.Month, input.Year)
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	rows, err := uc.paymentRepo.ListByPeriod(ctx, input.Session.OwnerID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	total := decimal.Zero
	byName := make(map[string]*CategoryBreakdownItem)
	for _, row := range rows {
		name := row.CategoryName()
		if name == "" {
			name = UncategorizedName
		}
		item, ok := byName[name]
		if !ok {
			item = &CategoryBreakdownItem{CategoryName: name, Amount: decimal.Zero}
			byName[name] = item
		}
		item.Amount = item.Amount.Add(row.Payment.Amount)
		item.PaymentCount++
		total = total.Add(row.Payment.Amount)
	}

	categories := make([]CategoryBreakdownItem, 0, len(byName))
	for _, item := range byName {
		if !total.IsZero() {
			item.Percentage = item.Amount.Mul(hundred).Div(total).Round(2)
		}
		categories = append(categories, *item)
	}
	sort.Slice(categories, func(i, j int) bool {
		if cmp := categories[i].Amount.Cmp(categories[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return categories[i].CategoryName < categories[j].CategoryName
	})

	return &GetCategoryBreakdownOutput{
		Period:     period,
		Total:      total,
		Categories: categories,
	}, nil
}
