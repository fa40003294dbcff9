package dto

import "github.com/learnsmart/learnsmart/internal/app/models"

// RegisterRequest represents a signup request. Admin accounts are seeded,
// not self registered, so only student and teacher roles are accepted.
type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	FullName string          `json:"fullName" binding:"required"`
	RoleType models.RoleType `json:"roleType" binding:"required,oneof=STUDENT TEACHER"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes the given refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn"`
}

// UserProfile is the authenticated user's own view of their account
type UserProfile struct {
	ID               int64                   `json:"id"`
	Email            string                  `json:"email"`
	FullName         string                  `json:"fullName"`
	RoleType         string                  `json:"roleType"`
	SpanishLevel     string                  `json:"spanishLevel,omitempty"`
	Subscription     models.SubscriptionTier `json:"subscription"`
	LessonsThisMonth int                     `json:"lessonsThisMonth"`
	Class            *ClassSummary           `json:"class,omitempty"`
}
