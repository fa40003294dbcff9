// Package classcode issues and normalizes the short alphanumeric codes
// students use to join a class.
package classcode

import (
	"crypto/rand"
	"fmt"
	"strings"
)

const (
	// Length is the fixed length of a class join code.
	Length = 6
	// Alphabet is the set of characters a code is drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generate draws a code of Length characters uniformly from Alphabet.
func Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(buf), nil
}

// Normalize uppercases and trims a submitted code so lookups are
// case-insensitive.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsWellFormed reports whether a normalized code has the right length and
// only uses characters from Alphabet. It does not check existence.
func IsWellFormed(code string) bool {
	if len(code) != Length {
		return false
	}
	for _, r := range code {
		if !strings.ContainsRune(Alphabet, r) {
			return false
		}
	}
	return true
}
