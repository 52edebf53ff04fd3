package impl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	svc := NewPasswordServiceBcrypt()

	hash, err := svc.Hash("test")
	require.NoError(t, err)

	assert.True(t, svc.Verify("test", hash))
	assert.False(t, svc.Verify("wrong", hash))
	assert.False(t, svc.Verify("Test", hash))
}

func TestPasswordHashNeverPlaintext(t *testing.T) {
	svc := NewPasswordServiceBcrypt()

	hash, err := svc.Hash("super-secret-password")
	require.NoError(t, err)

	assert.NotContains(t, hash, "super-secret-password")
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected bcrypt format, got %q", hash)
}

func TestPasswordHashSaltedPerCall(t *testing.T) {
	svc := NewPasswordServiceBcrypt()

	h1, err := svc.Hash("same-input")
	require.NoError(t, err)
	h2, err := svc.Hash("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, svc.Verify("same-input", h1))
	assert.True(t, svc.Verify("same-input", h2))
}
