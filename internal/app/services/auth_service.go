package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/repositories"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
	"github.com/learnsmart/learnsmart/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	classRepo  *repositories.ClassRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	classRepo *repositories.ClassRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		classRepo:  classRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// validateEmail validates an email address
func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if !emailRegex.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

// validatePassword checks if password meets requirements
func (s *AuthService) validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidPassword)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", apperrors.ErrInvalidPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", apperrors.ErrInvalidPassword)
	}

	return nil
}

// validateRole limits self registration to student and teacher accounts
func (s *AuthService) validateRole(role models.RoleType) error {
	if role != models.RoleStudent && role != models.RoleTeacher {
		return fmt.Errorf("%w: role must be STUDENT or TEACHER", apperrors.ErrValidationFailed)
	}
	return nil
}

// Register creates a new student or teacher account
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.validateRole(req.RoleType); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Password:     hashedPassword,
		FullName:     strings.TrimSpace(req.FullName),
		RoleType:     req.RoleType,
		Subscription: models.TierFree,
		IsActive:     true,
	}

	userID, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	s.logger.Info().Int64("userID", userID).Str("role", string(user.RoleType)).Msg("User registered")

	return s.generateTokenResponse(ctx, user)
}

// Login authenticates a user
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Could not record last login")
	}

	return s.generateTokenResponse(ctx, user)
}

// RefreshToken creates a new token pair from a valid refresh token. The
// used token is revoked so it cannot be replayed.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, expiryDate, isRevoked, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if expiryDate.Before(time.Now()) {
		_ = s.tokenRepo.RevokeToken(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}
	if isRevoked {
		return nil, apperrors.ErrTokenRevoked
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes the given refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return apperrors.ErrTokenInvalid
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return err
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// GetProfile retrieves the authenticated user's profile. Students also
// get a summary of the class they joined, when they joined one.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &dto.UserProfile{
		ID:               user.ID,
		Email:            user.Email,
		FullName:         user.FullName,
		RoleType:         string(user.RoleType),
		SpanishLevel:     string(user.SpanishLevel),
		Subscription:     user.Subscription,
		LessonsThisMonth: user.LessonsThisMonth,
	}

	if user.RoleType == models.RoleStudent {
		class, err := s.classRepo.GetMembershipByStudent(ctx, user.ID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Could not load class membership for profile")
		} else if class != nil {
			profile.Class = &dto.ClassSummary{
				ID:   class.ID,
				Name: class.Name,
				Code: class.Code,
			}
		}
	}

	return profile, nil
}

// generateTokenResponse creates token response
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}
