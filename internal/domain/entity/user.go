// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account able to own payments, categories and budgets.
type User struct {
	ID                 uuid.UUID
	Username           string
	PasswordHash       string
	SecurityQuestion   string
	SecurityAnswerHash string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User.
func NewUser(username, passwordHash, securityQuestion, securityAnswerHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 uuid.New(),
		Username:           username,
		PasswordHash:       passwordHash,
		SecurityQuestion:   securityQuestion,
		SecurityAnswerHash: securityAnswerHash,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// NormalizeUsername lower-cases and trims a username the way it is stored.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
