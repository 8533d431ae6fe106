package payment

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
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/testutil"
)

type fixture struct {
	payments   adapter.PaymentRepository
	categories adapter.CategoryRepository
	clock      *testutil.FixedClock
	session    entity.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	return &fixture{
		payments:   persistence.NewPaymentRepository(db),
		categories: persistence.NewCategoryRepository(db),
		clock:      testutil.NewFixedClock(time.Date(2025, 3, 20, 15, 0, 0, 0, time.UTC)),
		session:    entity.NewSession(uuid.New()),
	}
}

func (f *fixture) add(t *testing.T, description, amount string, day int) uuid.UUID {
	t.Helper()
	out, err := NewAddPaymentUseCase(f.payments, f.categories).Execute(context.Background(), AddPaymentInput{
		Session:     f.session,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		DueDate:     time.Date(2025, 3, day, 8, 30, 0, 0, time.UTC),
		Month:       3,
		Year:        2025,
	})
	require.NoError(t, err)
	return out.ID
}

func (f *fixture) list(t *testing.T, month, year int) []*PaymentOutput {
	t.Helper()
	out, err := NewListPaymentsUseCase(f.payments).Execute(context.Background(), ListPaymentsInput{
		Session: f.session, Month: month, Year: year,
	})
	require.NoError(t, err)
	return out.Payments
}

func TestAddPayment(t *testing.T) {
	f := newFixture(t)
	id := f.add(t, "  Internet ", "99.90", 12)

	payments := f.list(t, 3, 2025)
	require.Len(t, payments, 1)
	p := payments[0]
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Internet", p.Description)
	assert.False(t, p.Paid)
	assert.Nil(t, p.PaidAt)
	assert.False(t, p.IsInstallment)
	assert.Equal(t, 1, p.InstallmentIndex)
	assert.Equal(t, 1, p.InstallmentCount)
	assert.Nil(t, p.GroupID)
	assert.Equal(t, 0, p.DueDate.Hour(), "time of day is dropped")

	t.Run("validation", func(t *testing.T) {
		uc := NewAddPaymentUseCase(f.payments, f.categories)
		foreign := entity.NewCategory(uuid.New(), "Outro dono")
		require.NoError(t, f.categories.Create(context.Background(), foreign))

		inputs := map[string]AddPaymentInput{
			"empty description": {Session: f.session, Description: " ", Amount: decimal.NewFromInt(1), DueDate: time.Now(), Month: 3, Year: 2025},
			"zero amount":       {Session: f.session, Description: "x", Amount: decimal.Zero, DueDate: time.Now(), Month: 3, Year: 2025},
			"negative amount":   {Session: f.session, Description: "x", Amount: decimal.NewFromInt(-5), DueDate: time.Now(), Month: 3, Year: 2025},
			"rounds to zero":    {Session: f.session, Description: "x", Amount: decimal.RequireFromString("0.004"), DueDate: time.Now(), Month: 3, Year: 2025},
			"month 13":          {Session: f.session, Description: "x", Amount: decimal.NewFromInt(1), DueDate: time.Now(), Month: 13, Year: 2025},
			"missing due date":  {Session: f.session, Description: "x", Amount: decimal.NewFromInt(1), Month: 3, Year: 2025},
			"foreign category":  {Session: f.session, Description: "x", Amount: decimal.NewFromInt(1), DueDate: time.Now(), Month: 3, Year: 2025, CategoryID: &foreign.ID},
		}
		for name, input := range inputs {
			t.Run(name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), input)
				require.Error(t, err)
				assert.True(t, domainerror.IsValidation(err), "expected validation error, got %v", err)
			})
		}
		assert.Len(t, f.list(t, 3, 2025), 1, "rejected inputs insert nothing")
	})
}

func TestUpdatePayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.add(t, "Luz", "80", 5)
	uc := NewUpdatePaymentUseCase(f.payments, f.categories)

	category := entity.NewCategory(f.session.OwnerID, "Moradia")
	require.NoError(t, f.categories.Create(ctx, category))

	out, err := uc.Execute(ctx, UpdatePaymentInput{
		Session:     f.session,
		PaymentID:   id,
		Description: "Luz março",
		Amount:      decimal.RequireFromString("91.37"),
		DueDate:     time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		CategoryID:  &category.ID,
	})
	require.NoError(t, err)
	assert.True(t, out.Updated)

	payments := f.list(t, 3, 2025)
	require.Len(t, payments, 1, "due date moves but the bucket stays")
	assert.Equal(t, "Luz março", payments[0].Description)
	assert.True(t, decimal.RequireFromString("91.37").Equal(payments[0].Amount))
	require.NotNil(t, payments[0].Category)
	assert.Equal(t, "Moradia", payments[0].Category.Name)

	out, err = uc.Execute(ctx, UpdatePaymentInput{
		Session:     entity.NewSession(uuid.New()),
		PaymentID:   id,
		Description: "hijack",
		Amount:      decimal.NewFromInt(1),
		DueDate:     time.Now(),
	})
	require.NoError(t, err, "foreign ids are a silent no-op")
	assert.False(t, out.Updated)
	assert.Equal(t, "Luz março", f.list(t, 3, 2025)[0].Description)

	for _, amount := range []string{"0", "-1", "0.004"} {
		t.Run("amount "+amount, func(t *testing.T) {
			_, err := uc.Execute(ctx, UpdatePaymentInput{
				Session:     f.session,
				PaymentID:   id,
				Description: "Luz",
				Amount:      decimal.RequireFromString(amount),
				DueDate:     time.Now(),
			})
			assert.ErrorIs(t, err, domainerror.ErrInvalidPaymentAmount)
			assert.True(t, decimal.RequireFromString("91.37").Equal(f.list(t, 3, 2025)[0].Amount))
		})
	}
}

func TestDeletePayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.add(t, "Academia", "120", 10)
	uc := NewDeletePaymentUseCase(f.payments)

	require.NoError(t, uc.Execute(ctx, DeletePaymentInput{Session: entity.NewSession(uuid.New()), PaymentID: id}))
	assert.Len(t, f.list(t, 3, 2025), 1)

	require.NoError(t, uc.Execute(ctx, DeletePaymentInput{Session: f.session, PaymentID: id}))
	assert.Empty(t, f.list(t, 3, 2025))

	require.NoError(t, uc.Execute(ctx, DeletePaymentInput{Session: f.session, PaymentID: id}), "deleting twice is fine")
}

func TestCreateInstallmentsAndGroupSettlement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	dueDay := 31
	out, err := NewCreateInstallmentsUseCase(f.payments, f.categories, 10).Execute(ctx, CreateInstallmentsInput{
		Session:     f.session,
		Description: "Geladeira",
		Total:       decimal.RequireFromString("1000.00"),
		Count:       3,
		StartMonth:  12,
		StartYear:   2024,
		DueDay:      &dueDay,
	})
	require.NoError(t, err)
	require.Len(t, out.Payments, 3)

	periods := []entity.Period{entity.NewPeriod(12, 2024), entity.NewPeriod(1, 2025), entity.NewPeriod(2, 2025)}
	amounts := []string{"333.33", "333.33", "333.34"}
	for i, period := range periods {
		rows := f.list(t, period.Month, period.Year)
		require.Len(t, rows, 1, "bucket %s", period)
		row := rows[0]
		assert.Equal(t, out.GroupID, *row.GroupID)
		assert.True(t, row.IsInstallment)
		assert.Equal(t, i+1, row.InstallmentIndex)
		assert.Equal(t, 3, row.InstallmentCount)
		assert.True(t, decimal.RequireFromString(amounts[i]).Equal(row.Amount), "part %d amount %s", i+1, row.Amount)
		assert.Equal(t, 28, row.DueDate.Day())
		assert.Contains(t, row.Description, "Geladeira (")
	}

	setPaid := NewSetPaidUseCase(f.payments, f.clock)
	middle := f.list(t, 1, 2025)[0]

	changed, err := setPaid.Execute(ctx, SetPaidInput{Session: f.session, PaymentID: middle.ID, Paid: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), changed.Changed)

	for _, period := range periods {
		row := f.list(t, period.Month, period.Year)[0]
		assert.True(t, row.Paid, "bucket %s", period)
		require.NotNil(t, row.PaidAt)
		assert.True(t, f.clock.Now().Equal(row.PaidAt.UTC()))
	}

	f.clock.Current = f.clock.Current.Add(24 * time.Hour)
	changed, err = setPaid.Execute(ctx, SetPaidInput{Session: f.session, PaymentID: middle.ID, Paid: true})
	require.NoError(t, err)
	assert.Zero(t, changed.Changed, "settling twice changes nothing")

	first := f.list(t, 12, 2024)[0]
	changed, err = setPaid.Execute(ctx, SetPaidInput{Session: f.session, PaymentID: first.ID, Paid: false})
	require.NoError(t, err)
	assert.Equal(t, int64(3), changed.Changed)
	for _, period := range periods {
		row := f.list(t, period.Month, period.Year)[0]
		assert.False(t, row.Paid)
		assert.Nil(t, row.PaidAt)
	}
}

func TestUpdateInstallmentKeepsGroupConsistent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := NewCreateInstallmentsUseCase(f.payments, f.categories, 10).Execute(ctx, CreateInstallmentsInput{
		Session:     f.session,
		Description: "Sofá",
		Total:       decimal.RequireFromString("100.00"),
		Count:       3,
		StartMonth:  3,
		StartYear:   2025,
	})
	require.NoError(t, err)
	second := f.list(t, 4, 2025)[0]
	uc := NewUpdatePaymentUseCase(f.payments, f.categories)

	_, err = uc.Execute(ctx, UpdatePaymentInput{
		Session:     f.session,
		PaymentID:   second.ID,
		Description: "Sofá",
		Amount:      decimal.RequireFromString("50.00"),
		DueDate:     second.DueDate,
	})
	assert.ErrorIs(t, err, domainerror.ErrInstallmentAmountLocked)
	assert.True(t, domainerror.IsValidation(err))

	for _, description := range []string{"Sofá novo", "Sofá novo (2/3)"} {
		out, err := uc.Execute(ctx, UpdatePaymentInput{
			Session:     f.session,
			PaymentID:   second.ID,
			Description: description,
			Amount:      decimal.RequireFromString("33.33"),
			DueDate:     second.DueDate.AddDate(0, 0, 5),
		})
		require.NoError(t, err)
		assert.True(t, out.Updated)

		row := f.list(t, 4, 2025)[0]
		assert.Equal(t, "Sofá novo (2/3)", row.Description)
		assert.True(t, decimal.RequireFromString("33.33").Equal(row.Amount))
	}
}

func TestCreateInstallmentsUsesDefaultDueDay(t *testing.T) {
	f := newFixture(t)

	out, err := NewCreateInstallmentsUseCase(f.payments, f.categories, 10).Execute(context.Background(), CreateInstallmentsInput{
		Session:     f.session,
		Description: "Curso",
		Total:       decimal.NewFromInt(200),
		Count:       2,
		StartMonth:  3,
		StartYear:   2025,
	})
	require.NoError(t, err)
	for _, p := range out.Payments {
		assert.Equal(t, 10, p.DueDate.Day())
	}
}

func TestCreateInstallmentsRejectsWithoutWriting(t *testing.T) {
	f := newFixture(t)

	_, err := NewCreateInstallmentsUseCase(f.payments, f.categories, 10).Execute(context.Background(), CreateInstallmentsInput{
		Session:     f.session,
		Description: "Chiclete",
		Total:       decimal.RequireFromString("0.03"),
		Count:       4,
		StartMonth:  3,
		StartYear:   2025,
	})
	assert.ErrorIs(t, err, domainerror.ErrInstallmentShareTooSmall)
	assert.Empty(t, f.list(t, 3, 2025))
}

func TestSetPaidSinglePayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.add(t, "Água", "45", 7)
	other := f.add(t, "Gás", "60", 8)

	_, err := NewSetPaidUseCase(f.payments, f.clock).Execute(ctx, SetPaidInput{Session: f.session, PaymentID: id, Paid: true})
	require.NoError(t, err)

	for _, p := range f.list(t, 3, 2025) {
		assert.Equal(t, p.ID == id, p.Paid, "only %s is paid", id)
	}
	assert.NotEqual(t, id, other)

	out, err := NewSetPaidUseCase(f.payments, f.clock).Execute(ctx, SetPaidInput{Session: entity.NewSession(uuid.New()), PaymentID: other, Paid: true})
	require.NoError(t, err)
	assert.Zero(t, out.Changed)
}
