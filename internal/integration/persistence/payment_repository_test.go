package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/testutil"
)

var march2025 = entity.NewPeriod(3, 2025)

func newTestPayment(userID uuid.UUID, description string, amount string, day int, categoryID *uuid.UUID) *entity.Payment {
	return entity.NewPayment(userID, description, decimal.RequireFromString(amount), march2025.Date(day), march2025, categoryID)
}

func newGroup(userID uuid.UUID, count int) []*entity.Payment {
	groupID := uuid.New()
	payments := make([]*entity.Payment, 0, count)
	for i := 1; i <= count; i++ {
		period := march2025.AddMonths(i - 1)
		payments = append(payments, entity.NewInstallment(
			userID, groupID, "TV", decimal.RequireFromString("100.00"), period.Date(10), period, nil, i, count,
		))
	}
	return payments
}

func TestPaymentRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(testutil.NewDB(t))
	userID := uuid.New()

	payment := newTestPayment(userID, "Luz", "120.55", 5, nil)
	require.NoError(t, repo.Create(ctx, payment))

	found, err := repo.FindByIDAndUser(ctx, payment.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "Luz", found.Description)
	assert.True(t, decimal.RequireFromString("120.55").Equal(found.Amount), "amount %s", found.Amount)
	assert.True(t, march2025.Date(5).Equal(found.DueDate.UTC()))
	assert.Equal(t, 3, found.Month)
	assert.Equal(t, 2025, found.Year)
	assert.False(t, found.Paid)
	assert.Nil(t, found.PaidAt)
	assert.Equal(t, 1, found.InstallmentCount)
	assert.Equal(t, 1, found.InstallmentIndex)
	assert.Nil(t, found.GroupID)

	t.Run("other owner cannot see it", func(t *testing.T) {
		_, err := repo.FindByIDAndUser(ctx, payment.ID, uuid.New())
		assert.ErrorIs(t, err, domainerror.ErrPaymentNotFound)
	})
}

func TestPaymentRepository_ListByPeriodOrder(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewPaymentRepository(db)
	categories := NewCategoryRepository(db)
	userID := uuid.New()

	category := entity.NewCategory(userID, "Moradia")
	require.NoError(t, categories.Create(ctx, category))

	paidEarly := newTestPayment(userID, "paid early", "10", 1, nil)
	lateA := newTestPayment(userID, "late A", "10", 20, &category.ID)
	lateB := newTestPayment(userID, "late B", "10", 20, nil)
	early := newTestPayment(userID, "early", "10", 2, nil)
	otherMonth := entity.NewPayment(userID, "april", decimal.NewFromInt(1), march2025.AddMonths(1).Date(1), march2025.AddMonths(1), nil)
	otherUser := newTestPayment(uuid.New(), "foreign", "10", 1, nil)

	for _, p := range []*entity.Payment{paidEarly, lateA, lateB, early, otherMonth, otherUser} {
		require.NoError(t, repo.Create(ctx, p))
	}
	_, err := repo.SetPaid(ctx, paidEarly.ID, userID, true, time.Now())
	require.NoError(t, err)

	rows, err := repo.ListByPeriod(ctx, userID, march2025)
	require.NoError(t, err)

	var descriptions []string
	for _, row := range rows {
		descriptions = append(descriptions, row.Payment.Description)
	}
	// Unpaid first, then due date ascending, then newest id first.
	assert.Equal(t, []string{"early", "late B", "late A", "paid early"}, descriptions)
	assert.Equal(t, "Moradia", rows[2].CategoryName())
	assert.Equal(t, "", rows[1].CategoryName())
}

func TestPaymentRepository_UpdateAndDeleteScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(testutil.NewDB(t))
	userID := uuid.New()

	payment := newTestPayment(userID, "Água", "50", 8, nil)
	require.NoError(t, repo.Create(ctx, payment))

	update := adapter.PaymentUpdate{
		Description: "Água e esgoto",
		Amount:      decimal.RequireFromString("61.20"),
		DueDate:     march2025.Date(9),
	}

	rows, err := repo.Update(ctx, payment.ID, uuid.New(), update)
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = repo.Update(ctx, payment.ID, userID, update)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	found, err := repo.FindByIDAndUser(ctx, payment.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "Água e esgoto", found.Description)
	assert.True(t, update.Amount.Equal(found.Amount))
	assert.Equal(t, 3, found.Month, "bucket must not move")

	rows, err = repo.Delete(ctx, payment.ID, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = repo.Delete(ctx, payment.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = repo.FindByIDAndUser(ctx, payment.ID, userID)
	assert.ErrorIs(t, err, domainerror.ErrPaymentNotFound)
}

func TestPaymentRepository_SetPaidCascadesToGroup(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(testutil.NewDB(t))
	userID := uuid.New()

	group := newGroup(userID, 3)
	require.NoError(t, repo.CreateBatch(ctx, group))
	single := newTestPayment(userID, "single", "10", 1, nil)
	require.NoError(t, repo.Create(ctx, single))

	paidAt := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	rows, err := repo.SetPaid(ctx, group[1].ID, userID, true, paidAt)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rows)

	siblings, err := repo.FindByGroup(ctx, *group[0].GroupID, userID)
	require.NoError(t, err)
	require.Len(t, siblings, 3)
	for i, sibling := range siblings {
		assert.Equal(t, i+1, sibling.InstallmentIndex)
		assert.True(t, sibling.Paid)
		require.NotNil(t, sibling.PaidAt)
		assert.True(t, paidAt.Equal(sibling.PaidAt.UTC()))
	}

	found, err := repo.FindByIDAndUser(ctx, single.ID, userID)
	require.NoError(t, err)
	assert.False(t, found.Paid, "payments outside the group are untouched")

	t.Run("repeated paid keeps the first paid-at", func(t *testing.T) {
		rows, err := repo.SetPaid(ctx, group[0].ID, userID, true, paidAt.Add(48*time.Hour))
		require.NoError(t, err)
		assert.Zero(t, rows)

		again, err := repo.FindByIDAndUser(ctx, group[2].ID, userID)
		require.NoError(t, err)
		assert.True(t, paidAt.Equal(again.PaidAt.UTC()))
	})

	t.Run("unpaid clears the whole group", func(t *testing.T) {
		rows, err := repo.SetPaid(ctx, group[2].ID, userID, false, time.Now())
		require.NoError(t, err)
		assert.Equal(t, int64(3), rows)

		siblings, err := repo.FindByGroup(ctx, *group[0].GroupID, userID)
		require.NoError(t, err)
		for _, sibling := range siblings {
			assert.False(t, sibling.Paid)
			assert.Nil(t, sibling.PaidAt)
		}
	})

	t.Run("not owned is a no-op", func(t *testing.T) {
		rows, err := repo.SetPaid(ctx, group[0].ID, uuid.New(), true, time.Now())
		require.NoError(t, err)
		assert.Zero(t, rows)
	})
}

func TestPaymentRepository_SetPaidByCategories(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewPaymentRepository(db)
	categories := NewCategoryRepository(db)
	userID := uuid.New()

	card := entity.NewCategory(userID, "Cartão de Crédito")
	food := entity.NewCategory(userID, "Mercado")
	require.NoError(t, categories.Create(ctx, card))
	require.NoError(t, categories.Create(ctx, food))

	payments := []*entity.Payment{
		newTestPayment(userID, "fatura 1", "10", 1, &card.ID),
		newTestPayment(userID, "fatura 2", "10", 2, &card.ID),
		newTestPayment(userID, "feira", "10", 3, &food.ID),
		newTestPayment(userID, "sem categoria", "10", 4, nil),
		entity.NewPayment(userID, "fatura abril", decimal.NewFromInt(10), march2025.AddMonths(1).Date(1), march2025.AddMonths(1), &card.ID),
	}
	for _, p := range payments {
		require.NoError(t, repo.Create(ctx, p))
	}

	rows, err := repo.SetPaidByCategories(ctx, userID, march2025, []uuid.UUID{card.ID}, true, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)

	list, err := repo.ListByPeriod(ctx, userID, march2025)
	require.NoError(t, err)
	paid := 0
	for _, row := range list {
		if row.Payment.Paid {
			paid++
			assert.Equal(t, "Cartão de Crédito", row.CategoryName())
		}
	}
	assert.Equal(t, 2, paid)

	rows, err = repo.SetPaidByCategories(ctx, userID, march2025, []uuid.UUID{card.ID}, true, time.Now())
	require.NoError(t, err)
	assert.Zero(t, rows, "already paid rows are not touched again")

	rows, err = repo.SetPaidByCategories(ctx, userID, march2025, nil, true, time.Now())
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestPaymentRepository_CreateBatchIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(testutil.NewDB(t))
	userID := uuid.New()

	group := newGroup(userID, 3)
	group[2].ID = group[0].ID // duplicate primary key fails the last insert

	require.Error(t, repo.CreateBatch(ctx, group))

	rows, err := repo.ListByPeriod(ctx, userID, march2025)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
