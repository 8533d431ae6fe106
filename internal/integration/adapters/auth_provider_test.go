package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/testutil"
)

func newTestAuthProvider(t *testing.T) adapter.AuthProvider {
	t.Helper()
	users := persistence.NewUserRepository(testutil.NewDB(t))
	return NewAuthProvider(users, NewPasswordServiceWithCost(bcrypt.MinCost))
}

func TestAuthProvider_CreateUser(t *testing.T) {
	ctx := context.Background()
	provider := newTestAuthProvider(t)

	user, err := provider.CreateUser(ctx, "  Maria ", "1234", "Nome do pet?", "Rex")
	require.NoError(t, err)
	assert.Equal(t, "maria", user.Username)
	assert.NotEqual(t, "1234", user.PasswordHash)
	assert.NotEqual(t, "rex", user.SecurityAnswerHash)

	tests := []struct {
		name     string
		username string
		password string
		code     domainerror.AuthErrorCode
	}{
		{name: "duplicate after normalization", username: "MARIA", password: "abcd", code: domainerror.ErrCodeUsernameExists},
		{name: "blank username", username: "   ", password: "abcd", code: domainerror.ErrCodeMissingFields},
		{name: "blank password", username: "joao", password: "", code: domainerror.ErrCodeMissingFields},
		{name: "short password", username: "joao", password: "123", code: domainerror.ErrCodeWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.CreateUser(ctx, tt.username, tt.password, "", "")
			var authErr *domainerror.AuthError
			require.True(t, errors.As(err, &authErr), "expected AuthError, got %v", err)
			assert.Equal(t, tt.code, authErr.Code)
		})
	}
}

func TestAuthProvider_Authenticate(t *testing.T) {
	ctx := context.Background()
	provider := newTestAuthProvider(t)

	user, err := provider.CreateUser(ctx, "maria", "segredo", "", "")
	require.NoError(t, err)

	id, err := provider.Authenticate(ctx, " MARIA", "segredo")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, user.ID, *id)

	id, err = provider.Authenticate(ctx, "maria", "errado")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = provider.Authenticate(ctx, "ninguem", "segredo")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestAuthProvider_ResetPassword(t *testing.T) {
	ctx := context.Background()
	provider := newTestAuthProvider(t)

	_, err := provider.CreateUser(ctx, "maria", "antiga", "Cidade natal?", "Recife")
	require.NoError(t, err)

	question, found, err := provider.GetSecurityQuestion(ctx, "Maria")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Cidade natal?", question)

	_, found, err = provider.GetSecurityQuestion(ctx, "ninguem")
	require.NoError(t, err)
	assert.False(t, found)

	ok, err := provider.ResetPassword(ctx, "maria", "Olinda", "nova1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = provider.ResetPassword(ctx, "ninguem", "Recife", "nova1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = provider.ResetPassword(ctx, "maria", "Recife", "abc")
	assert.ErrorIs(t, err, domainerror.ErrWeakPassword)

	ok, err = provider.ResetPassword(ctx, "maria", "  recife ", "nova1")
	require.NoError(t, err)
	assert.True(t, ok)

	id, err := provider.Authenticate(ctx, "maria", "nova1")
	require.NoError(t, err)
	assert.NotNil(t, id)

	id, err = provider.Authenticate(ctx, "maria", "antiga")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestAuthProvider_ResetWithoutSecurityAnswer(t *testing.T) {
	ctx := context.Background()
	provider := newTestAuthProvider(t)

	_, err := provider.CreateUser(ctx, "semresposta", "abcd", "", "")
	require.NoError(t, err)

	ok, err := provider.ResetPassword(ctx, "semresposta", "", "nova1")
	require.NoError(t, err)
	assert.False(t, ok)
}
