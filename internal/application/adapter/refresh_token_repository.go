package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenRepository stores refresh tokens by digest, never in clear text.
type RefreshTokenRepository interface {
	Save(ctx context.Context, digest string, userID uuid.UUID, expiresAt, now time.Time) error

	// Spend revokes the token if it is still live at now and reports whether it was.
	Spend(ctx context.Context, digest string, now time.Time) (bool, error)

	Revoke(ctx context.Context, digest string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}
