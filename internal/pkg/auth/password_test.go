package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "Secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %s", hash)

	assert.True(t, CheckPassword(hash, "Secret123"))
	assert.False(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-hash", "Secret123"))
}
