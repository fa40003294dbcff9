package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/repositories"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
)

// MonthlyFreeQuota is the number of lessons a free account can start per
// calendar month. The counter resets on the first of each month.
const MonthlyFreeQuota = 5

// CanStartLesson reports whether a user on the given tier with the given
// usage may start another lesson this month.
func CanStartLesson(tier models.SubscriptionTier, lessonsThisMonth int) bool {
	if tier.IsPaid() {
		return true
	}
	return lessonsThisMonth < MonthlyFreeQuota
}

// SubscriptionService defines the interface for subscription operations
type SubscriptionService interface {
	GetStatus(ctx context.Context, userID int64) (*dto.SubscriptionStatus, error)
	Upgrade(ctx context.Context, userID int64, tier models.SubscriptionTier) (*dto.SubscriptionStatus, error)
}

// subscriptionServiceImpl implements the SubscriptionService interface
type subscriptionServiceImpl struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(userRepo *repositories.UserRepository, logger zerolog.Logger) SubscriptionService {
	return &subscriptionServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetStatus reports the user's plan and remaining monthly quota
func (s *subscriptionServiceImpl) GetStatus(ctx context.Context, userID int64) (*dto.SubscriptionStatus, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildStatus(user), nil
}

// Upgrade moves the user to a paid tier. Downgrades are not offered;
// lifetime stays lifetime even if pro is requested afterwards.
func (s *subscriptionServiceImpl) Upgrade(ctx context.Context, userID int64, tier models.SubscriptionTier) (*dto.SubscriptionStatus, error) {
	if !tier.IsPaid() {
		return nil, apperrors.ErrUnknownTier
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Subscription == models.TierLifetime {
		return buildStatus(user), nil
	}

	if err := s.userRepo.UpdateSubscription(ctx, userID, tier); err != nil {
		return nil, err
	}
	user.Subscription = tier

	s.logger.Info().Int64("userID", userID).Str("tier", string(tier)).Msg("Subscription upgraded")
	return buildStatus(user), nil
}

func buildStatus(user *models.User) *dto.SubscriptionStatus {
	status := &dto.SubscriptionStatus{
		Tier:             user.Subscription,
		LessonsThisMonth: user.LessonsThisMonth,
	}
	if !user.Subscription.IsPaid() {
		quota := MonthlyFreeQuota
		remaining := quota - user.LessonsThisMonth
		if remaining < 0 {
			remaining = 0
		}
		status.MonthlyQuota = &quota
		status.QuotaRemaining = &remaining
	}
	return status
}
