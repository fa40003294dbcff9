package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsmart/learnsmart/internal/app/models"
)

func newTestJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "learnsmart.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Email:    "student@school.edu",
		RoleType: models.RoleStudent,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(1 * time.Hour)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, int((720 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "student@school.edu", claims.Email)
	assert.Equal(t, "STUDENT", claims.RoleType)
	assert.Equal(t, "learnsmart.test", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(-1 * time.Minute)

	accessToken, _, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(1 * time.Hour)
	accessToken, _, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(1 * time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	svc := newTestJWTService(1 * time.Hour)

	_, first, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	_, second, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic abc123")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("abc123")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
