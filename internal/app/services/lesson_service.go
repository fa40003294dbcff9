package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/repositories"
	"github.com/learnsmart/learnsmart/internal/db"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
)

// LessonService defines the interface for lesson content operations
type LessonService interface {
	CreateLesson(ctx context.Context, creatorID int64, req *dto.CreateLessonRequest) (*dto.LessonSummary, error)
	ListLessons(ctx context.Context, filter repositories.LessonFilter) ([]dto.LessonSummary, error)
	GetLesson(ctx context.Context, id int64) (*dto.LessonDetail, error)
	DeleteLesson(ctx context.Context, requesterID int64, requesterRole models.RoleType, id int64) error
}

// lessonServiceImpl implements the LessonService interface
type lessonServiceImpl struct {
	lessonRepo *repositories.LessonRepository
	dbPool     *pgxpool.Pool
	logger     zerolog.Logger
}

// NewLessonService creates a new lesson service instance
func NewLessonService(lessonRepo *repositories.LessonRepository, dbPool *pgxpool.Pool, logger zerolog.Logger) LessonService {
	return &lessonServiceImpl{
		lessonRepo: lessonRepo,
		dbPool:     dbPool,
		logger:     logger,
	}
}

// validateLesson validates lesson data before database operations
func (s *lessonServiceImpl) validateLesson(req *dto.CreateLessonRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if !req.Level.IsValid() {
		return fmt.Errorf("%w: unknown level %q", apperrors.ErrValidationFailed, req.Level)
	}
	if len(req.Questions) == 0 {
		return apperrors.ErrLessonNoQuestion
	}
	for i, q := range req.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return fmt.Errorf("%w: question %d has an empty prompt", apperrors.ErrValidationFailed, i)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %d needs at least two options", apperrors.ErrValidationFailed, i)
		}
		if q.Points <= 0 {
			return fmt.Errorf("%w: question %d must be worth at least one point", apperrors.ErrValidationFailed, i)
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: question %d correct answer is not one of its options", apperrors.ErrValidationFailed, i)
		}
	}
	return nil
}

// CreateLesson creates a lesson with its questions in one transaction
func (s *lessonServiceImpl) CreateLesson(ctx context.Context, creatorID int64, req *dto.CreateLessonRequest) (*dto.LessonSummary, error) {
	if err := s.validateLesson(req); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		Title:     strings.TrimSpace(req.Title),
		Level:     req.Level,
		Subject:   strings.TrimSpace(req.Subject),
		CreatedBy: &creatorID,
	}
	for _, q := range req.Questions {
		lesson.Questions = append(lesson.Questions, models.Question{
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
			Explanation:   q.Explanation,
		})
	}

	err := db.WithTransaction(ctx, s.dbPool, func(ctx context.Context, tx pgx.Tx) error {
		return s.lessonRepo.CreateLessonTx(ctx, tx, lesson)
	})
	if err != nil {
		return nil, err
	}

	return &dto.LessonSummary{
		ID:            lesson.ID,
		Title:         lesson.Title,
		Level:         lesson.Level,
		Subject:       lesson.Subject,
		IsDefault:     lesson.IsDefault,
		QuestionCount: len(lesson.Questions),
		MaxScore:      lesson.MaxScore(),
		CreatedAt:     lesson.CreatedAt,
	}, nil
}

// ListLessons lists lessons matching the filter
func (s *lessonServiceImpl) ListLessons(ctx context.Context, filter repositories.LessonFilter) ([]dto.LessonSummary, error) {
	lessons, questionCounts, maxScores, err := s.lessonRepo.ListLessons(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.LessonSummary, 0, len(lessons))
	for _, lesson := range lessons {
		summaries = append(summaries, dto.LessonSummary{
			ID:            lesson.ID,
			Title:         lesson.Title,
			Level:         lesson.Level,
			Subject:       lesson.Subject,
			IsDefault:     lesson.IsDefault,
			QuestionCount: questionCounts[lesson.ID],
			MaxScore:      maxScores[lesson.ID],
			CreatedAt:     lesson.CreatedAt,
		})
	}

	return summaries, nil
}

// GetLesson returns the taking view of a lesson. Correct answers and
// explanations are withheld until the student submits.
func (s *lessonServiceImpl) GetLesson(ctx context.Context, id int64) (*dto.LessonDetail, error) {
	lesson, err := s.lessonRepo.GetLessonByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.LessonDetail{
		ID:       lesson.ID,
		Title:    lesson.Title,
		Level:    lesson.Level,
		Subject:  lesson.Subject,
		MaxScore: lesson.MaxScore(),
	}
	for _, q := range lesson.Questions {
		detail.Questions = append(detail.Questions, dto.QuestionView{
			ID:       q.ID,
			Position: q.Position,
			Prompt:   q.Prompt,
			Options:  q.Options,
			Points:   q.Points,
		})
	}

	return detail, nil
}

// DeleteLesson removes a lesson. Teachers can only delete lessons they
// authored; admins can delete any lesson including seeded defaults.
func (s *lessonServiceImpl) DeleteLesson(ctx context.Context, requesterID int64, requesterRole models.RoleType, id int64) error {
	lesson, err := s.lessonRepo.GetLessonByID(ctx, id)
	if err != nil {
		return err
	}

	if requesterRole != models.RoleAdmin {
		if lesson.CreatedBy == nil || *lesson.CreatedBy != requesterID {
			return apperrors.NewForbiddenError("lesson belongs to another author")
		}
	}

	if err := s.lessonRepo.DeleteLesson(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("lessonID", id).Int64("requesterID", requesterID).Msg("Lesson deleted")
	return nil
}
