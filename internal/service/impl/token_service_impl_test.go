package impl

import (
	"testing"
	"time"

	"accounts/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService(ttl time.Duration) *TokenServiceImpl {
	return NewTokenServiceHS256(TokenConfig{
		Issuer:     "accounts-test",
		TTL:        ttl,
		SigningKey: []byte("test-signing-key"),
	})
}

func TestTokenIssueVerifyRoundTrip(t *testing.T) {
	svc := testTokenService(time.Hour)
	acc := &domain.Account{ID: uuid.New(), Email: "test@test.com"}

	token, err := svc.Issue(acc)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ident, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, ident.ID)
	assert.Equal(t, acc.Email, ident.Email)
}

func TestTokenVerifyRejectsWrongKey(t *testing.T) {
	acc := &domain.Account{ID: uuid.New(), Email: "test@test.com"}
	token, err := testTokenService(time.Hour).Issue(acc)
	require.NoError(t, err)

	other := NewTokenServiceHS256(TokenConfig{
		Issuer:     "accounts-test",
		TTL:        time.Hour,
		SigningKey: []byte("different-key"),
	})
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifyRejectsExpired(t *testing.T) {
	svc := testTokenService(-time.Minute)
	token, err := svc.Issue(&domain.Account{ID: uuid.New(), Email: "test@test.com"})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifyRejectsWrongIssuer(t *testing.T) {
	issued := NewTokenServiceHS256(TokenConfig{
		Issuer:     "someone-else",
		TTL:        time.Hour,
		SigningKey: []byte("test-signing-key"),
	})
	token, err := issued.Issue(&domain.Account{ID: uuid.New(), Email: "test@test.com"})
	require.NoError(t, err)

	_, err = testTokenService(time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifyRejectsGarbage(t *testing.T) {
	_, err := testTokenService(time.Hour).Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
