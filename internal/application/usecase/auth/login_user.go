package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Username string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	UserID       uuid.UUID
	Username     string
	AccessToken  string
	RefreshToken string
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	authProvider adapter.AuthProvider
	tokenService adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(authProvider adapter.AuthProvider, tokenService adapter.TokenService) *LoginUserUseCase {
	return &LoginUserUseCase{
		authProvider: authProvider,
		tokenService: tokenService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"username and password are required",
			domainerror.ErrMissingCredentials,
		)
	}

	userID, err := uc.authProvider.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if userID == nil {
		// Same answer for unknown users and wrong passwords.
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid username or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	username := entity.NormalizeUsername(input.Username)
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, *userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		UserID:       *userID,
		Username:     username,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}
