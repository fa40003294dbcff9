package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/repositories"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
	"github.com/learnsmart/learnsmart/internal/pkg/helpers"
)

// AdminService defines the interface for platform administration
type AdminService interface {
	GetStats(ctx context.Context) (*dto.AdminStats, error)
	ListUsers(ctx context.Context, page, size int) (*dto.PaginatedResponse, error)
	UpdateRole(ctx context.Context, adminID, userID int64, role models.RoleType) error
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	userRepo     *repositories.UserRepository
	classRepo    *repositories.ClassRepository
	progressRepo *repositories.ProgressRepository
	tokenRepo    *repositories.TokenRepository
	logger       zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	userRepo *repositories.UserRepository,
	classRepo *repositories.ClassRepository,
	progressRepo *repositories.ProgressRepository,
	tokenRepo *repositories.TokenRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminServiceImpl{
		userRepo:     userRepo,
		classRepo:    classRepo,
		progressRepo: progressRepo,
		tokenRepo:    tokenRepo,
		logger:       logger,
	}
}

// GetStats aggregates platform-wide counts for the dashboard
func (s *adminServiceImpl) GetStats(ctx context.Context) (*dto.AdminStats, error) {
	stats := &dto.AdminStats{}

	students, err := s.userRepo.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	teachers, err := s.userRepo.CountByRole(ctx, models.RoleTeacher)
	if err != nil {
		return nil, err
	}
	admins, err := s.userRepo.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	stats.Students = students
	stats.Teachers = teachers
	stats.TotalUsers = students + teachers + admins

	stats.PaidSubscribers, err = s.userRepo.CountPaidSubscribers(ctx)
	if err != nil {
		return nil, err
	}
	stats.Classes, err = s.classRepo.CountClasses(ctx)
	if err != nil {
		return nil, err
	}
	stats.LessonsCompleted, err = s.progressRepo.CountCompleted(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// ListUsers returns a page of registered users, newest first
func (s *adminServiceImpl) ListUsers(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	total, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	users, err := s.userRepo.ListUsers(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AdminUserRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, dto.AdminUserRow{
			ID:           user.ID,
			Email:        user.Email,
			FullName:     user.FullName,
			RoleType:     user.RoleType,
			Subscription: user.Subscription,
			CreatedAt:    user.CreatedAt,
		})
	}

	return &dto.PaginatedResponse{
		Items:      rows,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// UpdateRole changes a user's role. Admins cannot change their own role,
// so the platform always keeps at least one admin.
func (s *adminServiceImpl) UpdateRole(ctx context.Context, adminID, userID int64, role models.RoleType) error {
	if role != models.RoleStudent && role != models.RoleTeacher && role != models.RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, role)
	}
	if adminID == userID {
		return apperrors.NewForbiddenError("admins cannot change their own role")
	}

	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return err
	}

	// Access tokens carry the old role until they expire; revoking the
	// refresh tokens keeps it from being renewed.
	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to revoke tokens after role change")
	}

	s.logger.Info().Int64("userID", userID).Str("role", string(role)).Msg("User role updated")
	return nil
}
