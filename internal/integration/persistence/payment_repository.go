// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create creates a new payment in the database.
func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates all payments in a single transaction.
func (r *paymentRepository) CreateBatch(ctx context.Context, payments []*entity.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, payment := range payments {
			if err := tx.Create(model.PaymentFromEntity(payment)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByIDAndUser retrieves a payment by its ID, scoped to its owner.
func (r *paymentRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Payment, error) {
	var paymentModel model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindByGroup retrieves all installments of a group ordered by installment index.
func (r *paymentRepository) FindByGroup(ctx context.Context, groupID, userID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("credit_group = ? AND user_id = ?", groupID, userID).
		Order("installment_index ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToEntity()
	}
	return payments, nil
}

// ListByPeriod retrieves the owner's payments of a bucket with their categories.
func (r *paymentRepository) ListByPeriod(ctx context.Context, userID uuid.UUID, period entity.Period) ([]*entity.PaymentWithCategory, error) {
	var paymentModels []model.PaymentModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND month = ? AND year = ?", userID, period.Month, period.Year).
		Order("paid ASC, due_date ASC, id DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.PaymentWithCategory, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToEntityWithCategory()
	}
	return payments, nil
}

// Update changes description, amount, due date and category of an owned payment.
func (r *paymentRepository) Update(ctx context.Context, id, userID uuid.UUID, update adapter.PaymentUpdate) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"description": update.Description,
			"amount":      update.Amount,
			"due_date":    update.DueDate,
			"category_id": update.CategoryID,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes an owned payment.
func (r *paymentRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PaymentModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SetPaid applies the paid transition to the payment and, for installments, to its whole group.
func (r *paymentRepository) SetPaid(ctx context.Context, id, userID uuid.UUID, paid bool, at time.Time) (int64, error) {
	var changed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target model.PaymentModel
		result := tx.Select("id", "credit_group").
			Where("id = ? AND user_id = ?", id, userID).
			First(&target)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil
			}
			return result.Error
		}

		scope := tx.Model(&model.PaymentModel{}).Where("user_id = ?", userID)
		if target.CreditGroup != nil {
			scope = scope.Where("credit_group = ?", *target.CreditGroup)
		} else {
			scope = scope.Where("id = ?", target.ID)
		}

		result = applyPaidTransition(scope, paid, at)
		if result.Error != nil {
			return result.Error
		}
		changed = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

// SetPaidByCategories applies the paid transition to every payment of the bucket in the given
// categories and to every installment sharing a group with one of them, in any bucket.
func (r *paymentRepository) SetPaidByCategories(
	ctx context.Context,
	userID uuid.UUID,
	period entity.Period,
	categoryIDs []uuid.UUID,
	paid bool,
	at time.Time,
) (int64, error) {
	if len(categoryIDs) == 0 {
		return 0, nil
	}

	var changed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var groups []uuid.UUID
		result := tx.Model(&model.PaymentModel{}).
			Where("user_id = ? AND month = ? AND year = ? AND category_id IN ?", userID, period.Month, period.Year, categoryIDs).
			Where("credit_group IS NOT NULL").
			Distinct().
			Pluck("credit_group", &groups)
		if result.Error != nil {
			return result.Error
		}

		bucket := tx.Session(&gorm.Session{NewDB: true}).
			Where("month = ? AND year = ? AND category_id IN ?", period.Month, period.Year, categoryIDs)
		if len(groups) > 0 {
			bucket = bucket.Or("credit_group IN ?", groups)
		}
		scope := tx.Model(&model.PaymentModel{}).Where("user_id = ?", userID).Where(bucket)

		result = applyPaidTransition(scope, paid, at)
		if result.Error != nil {
			return result.Error
		}
		changed = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

// applyPaidTransition updates only rows not yet in the target state, so paid_date is
// stamped exactly on Unpaid to Paid and cleared exactly on Paid to Unpaid.
func applyPaidTransition(scope *gorm.DB, paid bool, at time.Time) *gorm.DB {
	now := time.Now().UTC()
	if paid {
		return scope.Where("paid = ?", false).Updates(map[string]interface{}{
			"paid":       true,
			"paid_date":  at.UTC(),
			"updated_at": now,
		})
	}
	return scope.Where("paid = ?", true).Updates(map[string]interface{}{
		"paid":       false,
		"paid_date":  nil,
		"updated_at": now,
	})
}
