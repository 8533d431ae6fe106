package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// SeedCategoriesInput represents the input for default category seeding.
type SeedCategoriesInput struct {
	Session entity.Session
}

// SeedCategoriesOutput reports how many defaults were missing and got created.
type SeedCategoriesOutput struct {
	Created int
}

// SeedCategoriesUseCase adds the default category names the owner does not have yet.
type SeedCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedCategoriesUseCase creates a new SeedCategoriesUseCase instance.
func NewSeedCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the seeding. Running it again creates nothing.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context, input SeedCategoriesInput) (*SeedCategoriesOutput, error) {
	created, err := uc.categoryRepo.CreateMissing(ctx, input.Session.OwnerID, entity.DefaultCategoryNames)
	if err != nil {
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}

	if created > 0 {
		slog.Info("Default categories seeded", "user_id", input.Session.OwnerID, "created", created)
	}
	return &SeedCategoriesOutput{Created: created}, nil
}
