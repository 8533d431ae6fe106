package auth

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ResetPasswordInput represents the input for password reset.
type ResetPasswordInput struct {
	Username       string
	SecurityAnswer string
	NewPassword    string
}

// ResetPasswordUseCase replaces a password after checking the security answer.
// Existing sessions are signed out on success.
type ResetPasswordUseCase struct {
	authProvider adapter.AuthProvider
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	authProvider adapter.AuthProvider,
	userRepo adapter.UserRepository,
	tokenService adapter.TokenService,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		authProvider: authProvider,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the password reset.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) error {
	ok, err := uc.authProvider.ResetPassword(ctx, input.Username, input.SecurityAnswer, input.NewPassword)
	if err != nil {
		return err
	}
	if !ok {
		// Unknown user and wrong answer look the same to the caller.
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidSecurityAnswer,
			"invalid username or security answer",
			domainerror.ErrInvalidSecurityAnswer,
		)
	}

	user, err := uc.userRepo.FindByUsername(ctx, entity.NormalizeUsername(input.Username))
	if err != nil {
		slog.Warn("Password reset but user lookup failed", "error", err)
		return nil
	}
	if err := uc.tokenService.RevokeUserRefreshTokens(ctx, user.ID); err != nil {
		slog.Warn("Failed to invalidate sessions after password reset", "user_id", user.ID, "error", err)
	}
	slog.Info("Password reset", "user_id", user.ID)
	return nil
}
