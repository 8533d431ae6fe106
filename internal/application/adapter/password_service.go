// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing and verification.
// It also hashes security answers, which are secrets of the same kind.
type PasswordService interface {
	// HashPassword hashes a plain text secret using bcrypt.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text secret with a hashed one.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength validates if a password meets minimum requirements.
	ValidatePasswordStrength(password string) error
}
