// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Username         string
	Password         string
	SecurityQuestion string
	SecurityAnswer   string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// RegisterUserUseCase creates an account, seeds its default categories and signs it in.
type RegisterUserUseCase struct {
	authProvider adapter.AuthProvider
	categoryRepo adapter.CategoryRepository
	tokenService adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	authProvider adapter.AuthProvider,
	categoryRepo adapter.CategoryRepository,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		authProvider: authProvider,
		categoryRepo: categoryRepo,
		tokenService: tokenService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	user, err := uc.authProvider.CreateUser(ctx, input.Username, input.Password, input.SecurityQuestion, input.SecurityAnswer)
	if err != nil {
		return nil, err
	}

	// A failed seed leaves the account usable; categories can be seeded again later.
	if created, err := uc.categoryRepo.CreateMissing(ctx, user.ID, entity.DefaultCategoryNames); err != nil {
		slog.Warn("Failed to seed default categories", "user_id", user.ID, "error", err)
	} else {
		slog.Info("User registered", "user_id", user.ID, "categories", created)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterUserOutput{
		User:         user,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}
