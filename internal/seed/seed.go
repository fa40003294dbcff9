package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/learnsmart/learnsmart/internal/app/models"
	appRepos "github.com/learnsmart/learnsmart/internal/app/repositories"
	"github.com/learnsmart/learnsmart/internal/db"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
	"github.com/learnsmart/learnsmart/internal/pkg/auth"
)

// defaultSubject tags all seeded course content
const defaultSubject = "General Spanish"

// defaultAdminEmail is the seeded admin account. Its password must be
// changed after the first login.
const (
	defaultAdminEmail    = "admin@learnsmart.app"
	defaultAdminPassword = "ChangeMe123"
)

// CreateDefaultData seeds the placement bank, the default lesson catalog
// and the admin account. Every step is idempotent, so it is safe to run
// on each startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var finalErr error

	if err := seedAdmin(ctx, dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding admin account")
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedPlacementBank(ctx, dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding placement bank")
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedDefaultLessons(ctx, dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding default lessons")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = userRepo.CreateUser(ctx, &appModels.User{
		Email:        defaultAdminEmail,
		Password:     hashed,
		FullName:     "Platform Admin",
		RoleType:     appModels.RoleAdmin,
		Subscription: appModels.TierLifetime,
		IsActive:     true,
	})
	if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}

func seedPlacementBank(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM placement_questions`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count placement questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	err := db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		for i, q := range placementBank {
			_, err := tx.Exec(ctx, `
				INSERT INTO placement_questions (position, prompt, options, correct_option, level)
				VALUES ($1, $2, $3, $4, $5)`,
				i, q.Prompt, q.Options, q.CorrectOption, q.Level)
			if err != nil {
				return fmt.Errorf("failed to insert placement question %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Int("questions", len(placementBank)).Msg("Placement bank seeded")
	return nil
}

func seedDefaultLessons(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM lessons WHERE is_default = TRUE`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count default lessons: %w", err)
	}
	if count > 0 {
		return nil
	}

	lessonRepo := appRepos.NewLessonRepository(dbPool)

	err := db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		for _, seedLesson := range defaultLessons {
			lesson := &appModels.Lesson{
				Title:     seedLesson.Title,
				Level:     seedLesson.Level,
				Subject:   defaultSubject,
				IsDefault: true,
				Questions: seedLesson.Questions,
			}
			if err := lessonRepo.CreateLessonTx(ctx, tx, lesson); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Int("lessons", len(defaultLessons)).Msg("Default lesson catalog seeded")
	return nil
}
