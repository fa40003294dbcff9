package classcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := Generate()
		require.NoError(t, err)

		assert.Len(t, code, Length)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected character %q in code %s", r, code)
		}
		seen[code] = true
	}
	// 100 draws from a 36^6 space colliding down to a handful would
	// mean the generator is broken
	assert.Greater(t, len(seen), 90)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "AB12CD", Normalize("ab12cd"))
	assert.Equal(t, "AB12CD", Normalize("  Ab12Cd\n"))
	assert.Equal(t, "", Normalize("   "))
}

func TestIsWellFormed(t *testing.T) {
	assert.True(t, IsWellFormed("AB12CD"))
	assert.True(t, IsWellFormed("000000"))

	assert.False(t, IsWellFormed(""))
	assert.False(t, IsWellFormed("AB12C"))
	assert.False(t, IsWellFormed("AB12CDE"))
	assert.False(t, IsWellFormed("ab12cd"), "lowercase must be normalized before the check")
	assert.False(t, IsWellFormed("AB-2CD"))
}
