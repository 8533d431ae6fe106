package payment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// InstallmentPart is one planned monthly part of a purchase.
type InstallmentPart struct {
	Index       int
	Count       int
	Description string
	Amount      decimal.Decimal
	Period      entity.Period
	DueDate     time.Time
}

// PlanInstallments splits total into count monthly parts starting at start.
//
// Every part but the last gets total/count rounded to cents; the last absorbs the
// rounding remainder so the parts always add up to the rounded total. Part i lands
// in the bucket i-1 months after start and is due on min(dueDay, 28) of that month.
func PlanInstallments(description string, total decimal.Decimal, count int, start entity.Period, dueDay int) ([]InstallmentPart, error) {
	if count < 2 || count > MaxInstallmentCount {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidInstallmentCount,
			fmt.Sprintf("installment count must be between 2 and %d", MaxInstallmentCount),
			domainerror.ErrInvalidInstallmentCount,
		)
	}
	description, err := normalizeDescription(description, len(installmentSuffix(count, count)))
	if err != nil {
		return nil, err
	}
	total, err = normalizeAmount(total)
	if err != nil {
		return nil, err
	}
	if err := validatePeriod(start); err != nil {
		return nil, err
	}
	if dueDay < 1 {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be at least 1",
			domainerror.ErrInvalidDueDay,
		)
	}
	if dueDay > MaxDueDay {
		dueDay = MaxDueDay
	}

	base := total.Div(decimal.NewFromInt(int64(count))).Round(2)
	last := total.Sub(base.Mul(decimal.NewFromInt(int64(count - 1))))
	if !base.IsPositive() || !last.IsPositive() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInstallmentShareTooSmall,
			fmt.Sprintf("%s cannot be split into %d positive installments", total.StringFixed(2), count),
			domainerror.ErrInstallmentShareTooSmall,
		)
	}

	parts := make([]InstallmentPart, count)
	for i := 1; i <= count; i++ {
		amount := base
		if i == count {
			amount = last
		}
		period := start.AddMonths(i - 1)
		parts[i-1] = InstallmentPart{
			Index:       i,
			Count:       count,
			Description: description + installmentSuffix(i, count),
			Amount:      amount,
			Period:      period,
			DueDate:     period.Date(dueDay),
		}
	}
	return parts, nil
}

func installmentSuffix(index, count int) string {
	return fmt.Sprintf(" (%d/%d)", index, count)
}
