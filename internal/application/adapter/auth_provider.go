package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// AuthProvider owns credential storage and verification.
type AuthProvider interface {
	// Authenticate returns the owner id for valid credentials, or nil.
	Authenticate(ctx context.Context, username, password string) (*uuid.UUID, error)

	// CreateUser registers a new account. It fails on a taken username or invalid input.
	CreateUser(ctx context.Context, username, password, securityQuestion, securityAnswer string) (*entity.User, error)

	// GetSecurityQuestion returns the question registered for username, if the user exists.
	GetSecurityQuestion(ctx context.Context, username string) (string, bool, error)

	// ResetPassword replaces the password when the security answer matches.
	// It returns false for an unknown user or a wrong answer.
	ResetPassword(ctx context.Context, username, securityAnswer, newPassword string) (bool, error)
}
