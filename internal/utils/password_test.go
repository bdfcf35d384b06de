package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundtrip(t *testing.T) {
	hash, err := HashPassword("secret-password", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, VerifyPassword(hash, "secret-password"))
	assert.False(t, VerifyPassword(hash, "wrong-password"))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("same-input", 4)
	require.NoError(t, err)
	h2, err := HashPassword("same-input", 4)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	// Never panics or errors out on garbage, just verifies false.
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "anything"))
	assert.False(t, VerifyPassword("", "anything"))
}
