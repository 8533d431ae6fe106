package payment

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestPlanInstallments_SplitsExactly(t *testing.T) {
	tests := []struct {
		total string
		count int
		base  string
		last  string
	}{
		{total: "100.00", count: 3, base: "33.33", last: "33.34"},
		{total: "1000.00", count: 10, base: "100.00", last: "100.00"},
		{total: "10.00", count: 6, base: "1.67", last: "1.65"},
		{total: "99.999", count: 2, base: "50.00", last: "50.00"},
		{total: "0.05", count: 5, base: "0.01", last: "0.01"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.total, tt.count), func(t *testing.T) {
			parts, err := PlanInstallments("Compra", decimal.RequireFromString(tt.total), tt.count, entity.NewPeriod(1, 2025), 10)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(parts) != tt.count {
				t.Fatalf("expected %d parts, got %d", tt.count, len(parts))
			}

			sum := decimal.Zero
			for i, part := range parts {
				if part.Index != i+1 || part.Count != tt.count {
					t.Errorf("part %d: expected index %d/%d, got %d/%d", i, i+1, tt.count, part.Index, part.Count)
				}
				if i < tt.count-1 && !part.Amount.Equal(decimal.RequireFromString(tt.base)) {
					t.Errorf("part %d: expected %s, got %s", part.Index, tt.base, part.Amount)
				}
				sum = sum.Add(part.Amount)
			}
			if last := parts[tt.count-1].Amount; !last.Equal(decimal.RequireFromString(tt.last)) {
				t.Errorf("expected last %s, got %s", tt.last, last)
			}
			if want := decimal.RequireFromString(tt.total).Round(2); !sum.Equal(want) {
				t.Errorf("expected sum %s, got %s", want, sum)
			}
		})
	}
}

func TestPlanInstallments_YearRollover(t *testing.T) {
	parts, err := PlanInstallments("Notebook", decimal.NewFromInt(1400), 14, entity.NewPeriod(11, 2024), 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[int]entity.Period{
		1:  entity.NewPeriod(11, 2024),
		2:  entity.NewPeriod(12, 2024),
		3:  entity.NewPeriod(1, 2025),
		14: entity.NewPeriod(12, 2025),
	}
	for index, period := range expected {
		if got := parts[index-1].Period; got != period {
			t.Errorf("part %d: expected %s, got %s", index, period, got)
		}
	}

	for i := 1; i < len(parts); i++ {
		if parts[i].Period != parts[i-1].Period.AddMonths(1) {
			t.Errorf("part %d does not follow part %d by one month", i+1, i)
		}
	}

	if parts[13].Description != "Notebook (14/14)" {
		t.Errorf("unexpected description %q", parts[13].Description)
	}
	if parts[13].DueDate.Day() != 15 || parts[13].DueDate.Month() != 12 || parts[13].DueDate.Year() != 2025 {
		t.Errorf("unexpected due date %s", parts[13].DueDate)
	}
}

func TestPlanInstallments_DueDayClamp(t *testing.T) {
	parts, err := PlanInstallments("Sofá", decimal.NewFromInt(300), 3, entity.NewPeriod(1, 2025), 31)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, part := range parts {
		if part.DueDate.Day() != 28 {
			t.Errorf("part %d: expected day 28, got %d", part.Index, part.DueDate.Day())
		}
		if int(part.DueDate.Month()) != part.Period.Month {
			t.Errorf("part %d: due date month %d outside bucket %s", part.Index, part.DueDate.Month(), part.Period)
		}
	}
}

func TestPlanInstallments_Rejects(t *testing.T) {
	valid := entity.NewPeriod(5, 2025)

	tests := []struct {
		name        string
		description string
		total       string
		count       int
		start       entity.Period
		dueDay      int
		expected    error
	}{
		{name: "single part", description: "x", total: "10", count: 1, start: valid, dueDay: 10, expected: domainerror.ErrInvalidInstallmentCount},
		{name: "too many parts", description: "x", total: "10000", count: 361, start: valid, dueDay: 10, expected: domainerror.ErrInvalidInstallmentCount},
		{name: "blank description", description: "  ", total: "10", count: 2, start: valid, dueDay: 10, expected: domainerror.ErrEmptyDescription},
		{name: "description leaves no room for suffix", description: strings.Repeat("a", 250), total: "10", count: 12, start: valid, dueDay: 10, expected: domainerror.ErrDescriptionTooLong},
		{name: "zero total", description: "x", total: "0", count: 2, start: valid, dueDay: 10, expected: domainerror.ErrInvalidPaymentAmount},
		{name: "rounds to zero", description: "x", total: "0.004", count: 2, start: valid, dueDay: 10, expected: domainerror.ErrInvalidPaymentAmount},
		{name: "bad month", description: "x", total: "10", count: 2, start: entity.NewPeriod(13, 2025), dueDay: 10, expected: domainerror.ErrInvalidPeriod},
		{name: "bad due day", description: "x", total: "10", count: 2, start: valid, dueDay: 0, expected: domainerror.ErrInvalidDueDay},
		{name: "share below a cent", description: "x", total: "0.03", count: 4, start: valid, dueDay: 10, expected: domainerror.ErrInstallmentShareTooSmall},
		{name: "last share negative", description: "x", total: "1.00", count: 40, start: valid, dueDay: 10, expected: domainerror.ErrInstallmentShareTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanInstallments(tt.description, decimal.RequireFromString(tt.total), tt.count, tt.start, tt.dueDay)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}
			if !domainerror.IsValidation(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}
