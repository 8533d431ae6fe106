// Package payment contains payment ledger use cases.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for payment descriptions.
	MaxDescriptionLength = 255
	// MaxInstallmentCount caps a plan at thirty years of monthly parts.
	MaxInstallmentCount = 360
	// MaxDueDay keeps due dates valid in every month.
	MaxDueDay = 28
)

// normalizeDescription trims the description and checks it is present and short enough.
// reserved is the room kept for a suffix appended later.
func normalizeDescription(description string, reserved int) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", domainerror.NewPaymentError(
			domainerror.ErrCodeEmptyDescription,
			"description is required",
			domainerror.ErrEmptyDescription,
		)
	}
	if utf8.RuneCountInString(description)+reserved > MaxDescriptionLength {
		return "", domainerror.NewPaymentError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength-reserved),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return description, nil
}

// normalizeAmount rounds to cents and requires a positive result.
func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return decimal.Zero, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"amount must be at least 0.01",
			domainerror.ErrInvalidPaymentAmount,
		)
	}
	return amount, nil
}

func validatePeriod(period entity.Period) error {
	if !period.Valid() {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be between 1 and 12 and year between 1900 and 9999",
			domainerror.ErrInvalidPeriod,
		)
	}
	return nil
}

// normalizeDueDate drops the time of day so due dates compare as calendar dates.
func normalizeDueDate(dueDate time.Time) (time.Time, error) {
	if dueDate.IsZero() {
		return time.Time{}, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidDueDate,
			"due date is required",
			domainerror.ErrInvalidDueDate,
		)
	}
	return time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ensureCategoryOwned rejects a category id that does not belong to the owner.
func ensureCategoryOwned(ctx context.Context, categories adapter.CategoryRepository, categoryID *uuid.UUID, ownerID uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	if _, err := categories.FindByIDAndUser(ctx, *categoryID, ownerID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewPaymentError(
				domainerror.ErrCodePaymentCategoryNotOwned,
				"category does not belong to user",
				domainerror.ErrCategoryNotOwnedByUser,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}
	return nil
}
