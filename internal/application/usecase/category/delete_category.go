package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	Session    entity.Session
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase removes a category after detaching it from the owner's payments.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the deletion. Unknown or foreign ids are a no-op.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	rows, err := uc.categoryRepo.Delete(ctx, input.CategoryID, input.Session.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if rows > 0 {
		slog.Info("Category deleted", "user_id", input.Session.OwnerID, "category_id", input.CategoryID)
	}
	return nil
}
