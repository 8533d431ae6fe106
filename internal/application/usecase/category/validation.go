// Package category contains category-related use cases.
package category

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// MaxNameLength is the maximum allowed length for category names.
const MaxNameLength = 100

// CategoryOutput represents a category in use case responses.
type CategoryOutput struct {
	ID   uuid.UUID
	Name string
}

func toCategoryOutput(category *entity.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:   category.ID,
		Name: category.Name,
	}
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

func nameTaken(name string) error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		fmt.Sprintf("category %q already exists", name),
		domainerror.ErrCategoryNameExists,
	)
}
