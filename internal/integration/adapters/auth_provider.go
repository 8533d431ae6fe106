package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// authProvider stores credentials through the user repository and verifies them with bcrypt.
type authProvider struct {
	userRepository  adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewAuthProvider creates the credential store used by the auth use cases.
func NewAuthProvider(userRepository adapter.UserRepository, passwordService adapter.PasswordService) adapter.AuthProvider {
	return &authProvider{
		userRepository:  userRepository,
		passwordService: passwordService,
	}
}

// normalizeAnswer makes security answers case and padding insensitive.
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func (p *authProvider) Authenticate(ctx context.Context, username, password string) (*uuid.UUID, error) {
	user, err := p.userRepository.FindByUsername(ctx, entity.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := p.passwordService.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, nil
	}
	return &user.ID, nil
}

func (p *authProvider) CreateUser(ctx context.Context, username, password, securityQuestion, securityAnswer string) (*entity.User, error) {
	username = entity.NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"username and password are required",
			domainerror.ErrMissingCredentials,
		)
	}

	if err := p.passwordService.ValidatePasswordStrength(password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password must be at least 4 characters long",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := p.userRepository.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUsernameExists,
			"username already taken",
			domainerror.ErrUsernameAlreadyExists,
		)
	}

	passwordHash, err := p.passwordService.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var answerHash string
	if answer := normalizeAnswer(securityAnswer); answer != "" {
		answerHash, err = p.passwordService.HashPassword(answer)
		if err != nil {
			return nil, fmt.Errorf("failed to hash security answer: %w", err)
		}
	}

	user := entity.NewUser(username, passwordHash, strings.TrimSpace(securityQuestion), answerHash)
	if err := p.userRepository.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (p *authProvider) GetSecurityQuestion(ctx context.Context, username string) (string, bool, error) {
	user, err := p.userRepository.FindByUsername(ctx, entity.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to find user: %w", err)
	}
	return user.SecurityQuestion, true, nil
}

func (p *authProvider) ResetPassword(ctx context.Context, username, securityAnswer, newPassword string) (bool, error) {
	if err := p.passwordService.ValidatePasswordStrength(newPassword); err != nil {
		return false, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password must be at least 4 characters long",
			domainerror.ErrWeakPassword,
		)
	}

	user, err := p.userRepository.FindByUsername(ctx, entity.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find user: %w", err)
	}

	if user.SecurityAnswerHash == "" {
		return false, nil
	}
	if err := p.passwordService.VerifyPassword(user.SecurityAnswerHash, normalizeAnswer(securityAnswer)); err != nil {
		return false, nil
	}

	passwordHash, err := p.passwordService.HashPassword(newPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := p.userRepository.UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
		return false, fmt.Errorf("failed to update password: %w", err)
	}
	return true, nil
}
