package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
)

func TestValidateEmail(t *testing.T) {
	s := &AuthService{}

	assert.NoError(t, s.validateEmail("student@school.edu"))
	assert.NoError(t, s.validateEmail("ana.garcia+es@example.com"))

	assert.ErrorIs(t, s.validateEmail(""), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, s.validateEmail("not-an-email"), apperrors.ErrInvalidEmail)
	assert.ErrorIs(t, s.validateEmail("missing@domain"), apperrors.ErrInvalidEmail)
	assert.ErrorIs(t, s.validateEmail("@example.com"), apperrors.ErrInvalidEmail)
}

func TestValidatePassword(t *testing.T) {
	s := &AuthService{}

	assert.NoError(t, s.validatePassword("Secret123"))
	assert.NoError(t, s.validatePassword("abcdefg1"))

	assert.ErrorIs(t, s.validatePassword("short1"), apperrors.ErrInvalidPassword)
	assert.ErrorIs(t, s.validatePassword("onlyletters"), apperrors.ErrInvalidPassword)
	assert.ErrorIs(t, s.validatePassword("12345678"), apperrors.ErrInvalidPassword)
}

func TestValidateRole(t *testing.T) {
	s := &AuthService{}

	assert.NoError(t, s.validateRole(models.RoleStudent))
	assert.NoError(t, s.validateRole(models.RoleTeacher))

	// Admin accounts are never self-registered
	assert.Error(t, s.validateRole(models.RoleAdmin))
	assert.Error(t, s.validateRole(models.RoleType("MANAGER")))
}
