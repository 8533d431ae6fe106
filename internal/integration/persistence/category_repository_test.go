package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/testutil"
)

func TestCategoryRepository_DeleteDetachesPayments(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	categories := NewCategoryRepository(db)
	payments := NewPaymentRepository(db)
	userID := uuid.New()

	category := entity.NewCategory(userID, "Lazer")
	require.NoError(t, categories.Create(ctx, category))

	payment := newTestPayment(userID, "cinema", "30", 12, &category.ID)
	require.NoError(t, payments.Create(ctx, payment))

	rows, err := categories.Delete(ctx, category.ID, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = categories.Delete(ctx, category.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = categories.FindByIDAndUser(ctx, category.ID, userID)
	assert.ErrorIs(t, err, domainerror.ErrCategoryNotFound)

	found, err := payments.FindByIDAndUser(ctx, payment.ID, userID)
	require.NoError(t, err)
	assert.Nil(t, found.CategoryID)
}

func TestCategoryRepository_RenameAndExists(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(testutil.NewDB(t))
	userID := uuid.New()

	category := entity.NewCategory(userID, "Mercado")
	require.NoError(t, repo.Create(ctx, category))

	exists, err := repo.ExistsByNameAndUser(ctx, "Mercado", userID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByNameAndUser(ctx, "Mercado", uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)

	rows, err := repo.Rename(ctx, category.ID, userID, "Supermercado")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Rename(ctx, category.ID, uuid.New(), "Hack")
	require.NoError(t, err)
	assert.Zero(t, rows)

	found, err := repo.FindByIDAndUser(ctx, category.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "Supermercado", found.Name)
}

func TestCategoryRepository_CreateMissingIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(testutil.NewDB(t))
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, entity.NewCategory(userID, "Aluguel")))

	created, err := repo.CreateMissing(ctx, userID, entity.DefaultCategoryNames)
	require.NoError(t, err)
	assert.Equal(t, len(entity.DefaultCategoryNames)-1, created)

	created, err = repo.CreateMissing(ctx, userID, entity.DefaultCategoryNames)
	require.NoError(t, err)
	assert.Zero(t, created)

	list, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, len(entity.DefaultCategoryNames))

	other, err := repo.CreateMissing(ctx, uuid.New(), []string{"Aluguel"})
	require.NoError(t, err)
	assert.Equal(t, 1, other, "names are unique per owner only")
}
