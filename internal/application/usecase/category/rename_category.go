package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// RenameCategoryInput represents the input for renaming a category.
type RenameCategoryInput struct {
	Session    entity.Session
	CategoryID uuid.UUID
	Name       string
}

// RenameCategoryOutput reports whether the category was renamed.
type RenameCategoryOutput struct {
	Updated bool
}

// RenameCategoryUseCase handles category renaming logic.
type RenameCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewRenameCategoryUseCase creates a new RenameCategoryUseCase instance.
func NewRenameCategoryUseCase(categoryRepo adapter.CategoryRepository) *RenameCategoryUseCase {
	return &RenameCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute renames an owned category. Unknown or foreign ids are a no-op.
func (uc *RenameCategoryUseCase) Execute(ctx context.Context, input RenameCategoryInput) (*RenameCategoryOutput, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}

	current, err := uc.categoryRepo.FindByIDAndUser(ctx, input.CategoryID, input.Session.OwnerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return &RenameCategoryOutput{}, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if current.Name == name {
		return &RenameCategoryOutput{}, nil
	}

	exists, err := uc.categoryRepo.ExistsByNameAndUser(ctx, name, input.Session.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, nameTaken(name)
	}

	rows, err := uc.categoryRepo.Rename(ctx, input.CategoryID, input.Session.OwnerID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}
	return &RenameCategoryOutput{Updated: rows > 0}, nil
}
