package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"

	"github.com/learnsmart/learnsmart/internal/app/repositories"
)

const jobTimeout = 5 * time.Minute

// Scheduler runs the recurring maintenance jobs: the monthly quota reset
// and the expired refresh token cleanup.
type Scheduler struct {
	scheduler *gocron.Scheduler
	userRepo  *repositories.UserRepository
	tokenRepo *repositories.TokenRepository
	logger    zerolog.Logger
}

func New(userRepo *repositories.UserRepository, tokenRepo *repositories.TokenRepository, lgr zerolog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logger:    lgr,
	}
}

// Start registers the jobs and runs the scheduler in the background.
func (s *Scheduler) Start() error {
	// Midnight UTC on the first of every month
	if _, err := s.scheduler.Cron("0 0 1 * *").Do(s.resetMonthlyUsage); err != nil {
		return err
	}

	if _, err := s.scheduler.Every(1).Day().At("03:00").Do(s.cleanupExpiredTokens); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info().Msg("Scheduler started")
	return nil
}

// Stop waits for running jobs to finish and shuts the scheduler down.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) resetMonthlyUsage() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	affected, err := s.userRepo.ResetMonthlyUsage(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Monthly usage reset failed")
		return
	}
	s.logger.Info().Int64("users", affected).Msg("Monthly lesson counters reset")
}

func (s *Scheduler) cleanupExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	removed, err := s.tokenRepo.CleanupExpiredTokens(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Expired token cleanup failed")
		return
	}
	if removed > 0 {
		s.logger.Info().Int64("tokens", removed).Msg("Expired refresh tokens removed")
	}
}
