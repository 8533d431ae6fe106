package auth

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// SecurityQuestionInput represents the account whose question is requested.
type SecurityQuestionInput struct {
	Username string
}

// SecurityQuestionOutput carries the question when the account exists.
type SecurityQuestionOutput struct {
	Found    bool
	Question string
}

// SecurityQuestionUseCase looks up the recovery question of an account.
type SecurityQuestionUseCase struct {
	authProvider adapter.AuthProvider
}

// NewSecurityQuestionUseCase creates a new SecurityQuestionUseCase instance.
func NewSecurityQuestionUseCase(authProvider adapter.AuthProvider) *SecurityQuestionUseCase {
	return &SecurityQuestionUseCase{
		authProvider: authProvider,
	}
}

// Execute performs the lookup.
func (uc *SecurityQuestionUseCase) Execute(ctx context.Context, input SecurityQuestionInput) (*SecurityQuestionOutput, error) {
	question, found, err := uc.authProvider.GetSecurityQuestion(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to get security question: %w", err)
	}
	return &SecurityQuestionOutput{Found: found, Question: question}, nil
}
