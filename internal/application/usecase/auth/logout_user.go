package auth

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the user logout by invalidating the refresh token.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	// The token might already be invalid; logout succeeds either way.
	if err := uc.tokenService.RevokeRefreshToken(ctx, input.RefreshToken); err != nil {
		slog.Warn("Failed to revoke refresh token on logout", "error", err)
	}
	return nil
}
