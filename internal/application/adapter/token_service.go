// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	UserID    uuid.UUID
	Username  string
	ExpiresAt time.Time
}

// TokenService issues and checks the JWT pair handed to clients.
type TokenService interface {
	// GenerateTokenPair signs a new pair and records the refresh token.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, username string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// RotateRefreshToken spends a refresh token and returns a fresh pair.
	// A token can be spent once; reuse, expiry or a bad signature yields domainerror.ErrInvalidToken.
	RotateRefreshToken(ctx context.Context, token string) (*TokenPair, error)

	// RevokeRefreshToken revokes a single refresh token. Unknown tokens are ignored.
	RevokeRefreshToken(ctx context.Context, token string) error

	// RevokeUserRefreshTokens revokes every refresh token of a user.
	RevokeUserRefreshTokens(ctx context.Context, userID uuid.UUID) error
}
