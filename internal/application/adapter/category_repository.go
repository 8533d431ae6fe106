// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByIDAndUser retrieves a category owned by userID.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories of a user ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameAndUser checks if a category with the given name exists for the user.
	ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error)

	// Rename changes the name of an owned category and returns the rows affected.
	Rename(ctx context.Context, id, userID uuid.UUID, name string) (int64, error)

	// Delete detaches the category from the owner's payments and removes it,
	// in one transaction. It returns the number of categories removed.
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)

	// CreateMissing inserts the names the user does not have yet and returns how many were created.
	CreateMissing(ctx context.Context, userID uuid.UUID, names []string) (int, error)
}
