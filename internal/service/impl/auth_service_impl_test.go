package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"accounts/internal/domain"
	"accounts/internal/dto"
	"accounts/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, accounts *memAccounts, email, password string) *domain.Account {
	t.Helper()
	acc := &domain.Account{
		Email:         email,
		EmailOriginal: email,
		PasswordHash:  "hashed:" + password,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	require.NoError(t, accounts.Create(context.Background(), acc))
	return acc
}

func newAuthService(accounts *memAccounts) *AuthServiceImpl {
	return &AuthServiceImpl{
		Accounts:  accounts,
		Passwords: fakeHasher{},
		Tokens:    testTokenService(time.Hour),
	}
}

func TestAuthenticateIssuesToken(t *testing.T) {
	accounts := newMemAccounts()
	acc := seedAccount(t, accounts, "test@test.com", "test")
	svc := newAuthService(accounts)

	resp, err := svc.Authenticate(context.Background(), dto.AuthRequest{
		Email: "test@test.com", Password: "test",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	ident, err := svc.Tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, ident.ID)
	assert.Equal(t, "test@test.com", ident.Email)
}

func TestAuthenticateNormalizesEmail(t *testing.T) {
	accounts := newMemAccounts()
	seedAccount(t, accounts, "test@test.com", "test")
	svc := newAuthService(accounts)

	resp, err := svc.Authenticate(context.Background(), dto.AuthRequest{
		Email: "TEST@Test.com", Password: "test",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthenticateOpacity(t *testing.T) {
	accounts := newMemAccounts()
	seedAccount(t, accounts, "test@test.com", "test")
	svc := newAuthService(accounts)
	ctx := context.Background()

	// Wrong password on an existing account and an unknown email must be
	// indistinguishable to the caller.
	_, errWrongPassword := svc.Authenticate(ctx, dto.AuthRequest{
		Email: "test@test.com", Password: "wrong",
	})
	_, errUnknownEmail := svc.Authenticate(ctx, dto.AuthRequest{
		Email: "nobody@test.com", Password: "test",
	})

	require.ErrorIs(t, errWrongPassword, domain.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())

	var failure *validation.Failure
	assert.False(t, errors.As(errWrongPassword, &failure),
		"auth failure is not a field-validation error")
}

func TestAuthenticateValidatesInput(t *testing.T) {
	svc := newAuthService(newMemAccounts())

	_, err := svc.Authenticate(context.Background(), dto.AuthRequest{
		Email: "not-an-email", Password: "",
	})

	var failure *validation.Failure
	require.ErrorAs(t, err, &failure)

	fields := make(map[string]bool)
	for _, fe := range failure.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["password"])
}
