// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

const (
	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	tokenIssuer = "payments-ledger"
)

// TokenConfig holds the signing key and lifetimes of issued tokens.
// Non-positive durations fall back to 15 minutes (access) and 7 days (refresh).
type TokenConfig struct {
	Secret          string
	AccessDuration  time.Duration
	RefreshDuration time.Duration
}

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret          []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
	refreshTokens   adapter.RefreshTokenRepository
	clock           adapter.Clock
	parser          *jwt.Parser
}

// NewTokenService creates a token service signing HS256 tokens against clock.
func NewTokenService(cfg TokenConfig, refreshTokens adapter.RefreshTokenRepository, clock adapter.Clock) adapter.TokenService {
	if cfg.AccessDuration <= 0 {
		cfg.AccessDuration = defaultAccessTokenDuration
	}
	if cfg.RefreshDuration <= 0 {
		cfg.RefreshDuration = defaultRefreshTokenDuration
	}
	return &tokenService{
		secret:          []byte(cfg.Secret),
		accessDuration:  cfg.AccessDuration,
		refreshDuration: cfg.RefreshDuration,
		refreshTokens:   refreshTokens,
		clock:           clock,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(tokenIssuer),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(clock.Now),
		),
	}
}

func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, username string) (*adapter.TokenPair, error) {
	now := s.clock.Now().UTC()

	accessToken, err := s.sign(userID, username, tokenTypeAccess, now, s.accessDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.sign(userID, username, tokenTypeRefresh, now, s.refreshDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.refreshTokens.Save(ctx, digest(refreshToken), userID, now.Add(s.refreshDuration), now); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return s.verify(token, tokenTypeAccess)
}

func (s *tokenService) RotateRefreshToken(ctx context.Context, token string) (*adapter.TokenPair, error) {
	claims, err := s.verify(token, tokenTypeRefresh)
	if err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid or expired refresh token", domainerror.ErrInvalidToken)
	}

	spent, err := s.refreshTokens.Spend(ctx, digest(token), s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to spend refresh token: %w", err)
	}
	if !spent {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "refresh token has been revoked", domainerror.ErrInvalidToken)
	}

	return s.GenerateTokenPair(ctx, claims.UserID, claims.Username)
}

func (s *tokenService) RevokeRefreshToken(ctx context.Context, token string) error {
	return s.refreshTokens.Revoke(ctx, digest(token))
}

func (s *tokenService) RevokeUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	return s.refreshTokens.RevokeAllForUser(ctx, userID)
}

func (s *tokenService) sign(userID uuid.UUID, username, tokenType string, now time.Time, duration time.Duration) (string, error) {
	claims := CustomClaims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) verify(raw, expectedType string) (*adapter.TokenClaims, error) {
	claims := &CustomClaims{}
	if _, err := s.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", domainerror.ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("expected %s token, got %q", expectedType, claims.TokenType)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in token: %w", err)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
