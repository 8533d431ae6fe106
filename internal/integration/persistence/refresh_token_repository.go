package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new refresh token repository instance.
func NewRefreshTokenRepository(db *gorm.DB) adapter.RefreshTokenRepository {
	return &refreshTokenRepository{
		db: db,
	}
}

func (r *refreshTokenRepository) Save(ctx context.Context, digest string, userID uuid.UUID, expiresAt, now time.Time) error {
	return r.db.WithContext(ctx).Create(&model.RefreshTokenModel{
		ID:          uuid.New(),
		TokenDigest: digest,
		UserID:      userID,
		ExpiresAt:   expiresAt.UTC(),
		CreatedAt:   now.UTC(),
	}).Error
}

// Spend flips the live row in a single UPDATE, so two concurrent refreshes of one token cannot both win.
func (r *refreshTokenRepository) Spend(ctx context.Context, digest string, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_digest = ? AND invalidated = ? AND expires_at > ?", digest, false, now.UTC()).
		Update("invalidated", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *refreshTokenRepository) Revoke(ctx context.Context, digest string) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_digest = ?", digest).
		Update("invalidated", true).Error
}

func (r *refreshTokenRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND invalidated = ?", userID, false).
		Update("invalidated", true).Error
}
