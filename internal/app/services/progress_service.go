package services

import (
	"context"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/repositories"
	"github.com/learnsmart/learnsmart/internal/db"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
)

// ProgressService defines the interface for lesson sessions, scoring and
// the leaderboard
type ProgressService interface {
	StartLesson(ctx context.Context, studentID, lessonID int64) (*dto.StartLessonResponse, error)
	CompleteLesson(ctx context.Context, studentID, lessonID int64, req *dto.CompleteLessonRequest) (*dto.LessonResult, error)
	GetOverview(ctx context.Context, studentID int64) (*dto.ProgressOverview, error)
	GetLeaderboard(ctx context.Context, limit int) ([]dto.LeaderboardRow, error)
	GetClassLeaderboard(ctx context.Context, requesterID, classID int64, limit int) ([]dto.LeaderboardRow, error)
}

// progressServiceImpl implements the ProgressService interface
type progressServiceImpl struct {
	progressRepo   *repositories.ProgressRepository
	lessonRepo     *repositories.LessonRepository
	userRepo       *repositories.UserRepository
	assignmentRepo *repositories.AssignmentRepository
	classRepo      *repositories.ClassRepository
	dbPool         *pgxpool.Pool
	logger         zerolog.Logger
}

// NewProgressService creates a new progress service instance
func NewProgressService(
	progressRepo *repositories.ProgressRepository,
	lessonRepo *repositories.LessonRepository,
	userRepo *repositories.UserRepository,
	assignmentRepo *repositories.AssignmentRepository,
	classRepo *repositories.ClassRepository,
	dbPool *pgxpool.Pool,
	logger zerolog.Logger,
) ProgressService {
	return &progressServiceImpl{
		progressRepo:   progressRepo,
		lessonRepo:     lessonRepo,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		classRepo:      classRepo,
		dbPool:         dbPool,
		logger:         logger,
	}
}

// StartLesson opens a lesson session for the student. The monthly usage
// counter is incremented and checked against the quota inside one
// transaction, so two concurrent starts cannot both slip under the cap.
func (s *progressServiceImpl) StartLesson(ctx context.Context, studentID, lessonID int64) (*dto.StartLessonResponse, error) {
	exists, err := s.lessonRepo.LessonExists(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrLessonNotFound
	}

	user, err := s.userRepo.GetUserByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var count int
	err = db.WithTransaction(ctx, s.dbPool, func(ctx context.Context, tx pgx.Tx) error {
		count, err = s.userRepo.IncrementLessonsThisMonth(ctx, tx, studentID)
		if err != nil {
			return err
		}
		if !user.Subscription.IsPaid() && count > MonthlyFreeQuota {
			return apperrors.ErrQuotaExceeded
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.StartLessonResponse{
		LessonID:         lessonID,
		LessonsThisMonth: count,
	}
	if !user.Subscription.IsPaid() {
		remaining := MonthlyFreeQuota - count
		if remaining < 0 {
			remaining = 0
		}
		resp.QuotaRemaining = &remaining
	}

	return resp, nil
}

// CompleteLesson scores the submitted answers, saves the progress
// record, credits the leaderboard and completes a pending assignment
// submission for this lesson, all in one transaction.
func (s *progressServiceImpl) CompleteLesson(ctx context.Context, studentID, lessonID int64, req *dto.CompleteLessonRequest) (*dto.LessonResult, error) {
	lesson, err := s.lessonRepo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if len(lesson.Questions) == 0 {
		return nil, apperrors.ErrLessonNoQuestion
	}
	if len(req.Answers) != len(lesson.Questions) {
		return nil, apperrors.ErrAnswerCountWrong
	}

	earned, outcomes := ScoreAnswers(lesson.Questions, req.Answers)
	maxScore := lesson.MaxScore()
	percentage := Percentage(earned, maxScore)

	record := &models.ProgressRecord{
		StudentID: studentID,
		LessonID:  lessonID,
		Completed: true,
		Score:     earned,
		MaxScore:  maxScore,
	}

	err = db.WithTransaction(ctx, s.dbPool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.progressRepo.UpsertTx(ctx, tx, record); err != nil {
			return err
		}

		submissionID, err := s.assignmentRepo.FindIncompleteSubmissionTx(ctx, tx, studentID, lessonID)
		if err != nil {
			return err
		}
		if submissionID != 0 {
			if err := s.assignmentRepo.CompleteSubmissionTx(ctx, tx, submissionID, percentage); err != nil {
				return err
			}
		}

		return s.progressRepo.AddLeaderboardScoreTx(ctx, tx, studentID, earned)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("lessonID", lessonID).
		Int("score", earned).Int("maxScore", maxScore).Msg("Lesson completed")

	return &dto.LessonResult{
		LessonID:   lessonID,
		Score:      earned,
		MaxScore:   maxScore,
		Percentage: percentage,
		Questions:  outcomes,
	}, nil
}

// GetOverview summarizes the student's progress records
func (s *progressServiceImpl) GetOverview(ctx context.Context, studentID int64) (*dto.ProgressOverview, error) {
	records, err := s.progressRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	overview := &dto.ProgressOverview{
		Records: make([]dto.ProgressEntry, 0, len(records)),
	}
	for _, rec := range records {
		if rec.Completed {
			overview.LessonsCompleted++
		}
		overview.TotalPoints += rec.Score
		overview.Records = append(overview.Records, dto.ProgressEntry{
			LessonID:    rec.LessonID,
			LessonTitle: rec.Lesson.Title,
			Score:       rec.Score,
			MaxScore:    rec.MaxScore,
			CompletedAt: rec.CompletedAt,
		})
	}

	return overview, nil
}

// GetLeaderboard returns the platform-wide top scores
func (s *progressServiceImpl) GetLeaderboard(ctx context.Context, limit int) ([]dto.LeaderboardRow, error) {
	entries, err := s.progressRepo.TopScores(ctx, limit)
	if err != nil {
		return nil, err
	}
	return rankEntries(entries), nil
}

// GetClassLeaderboard returns the top scores within one class. Only the
// class's teacher and its members may see it.
func (s *progressServiceImpl) GetClassLeaderboard(ctx context.Context, requesterID, classID int64, limit int) ([]dto.LeaderboardRow, error) {
	class, err := s.classRepo.GetClassByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class.TeacherID != requesterID {
		member, err := s.classRepo.IsMember(ctx, classID, requesterID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, apperrors.NewForbiddenError("not a member of this class")
		}
	}

	entries, err := s.progressRepo.TopScoresByClass(ctx, classID, limit)
	if err != nil {
		return nil, err
	}
	return rankEntries(entries), nil
}

func rankEntries(entries []*models.LeaderboardEntry) []dto.LeaderboardRow {
	rows := make([]dto.LeaderboardRow, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, dto.LeaderboardRow{
			Rank:     i + 1,
			UserID:   entry.UserID,
			FullName: entry.FullName,
			Score:    entry.Score,
		})
	}
	return rows
}

// ScoreAnswers grades the ordered answers against the lesson questions.
// An answer is correct only when it matches the stored correct answer
// exactly. Returns the earned points and the per-question outcomes.
func ScoreAnswers(questions []models.Question, answers []string) (int, []dto.QuestionOutcome) {
	earned := 0
	outcomes := make([]dto.QuestionOutcome, 0, len(questions))
	for i, q := range questions {
		outcome := dto.QuestionOutcome{
			Position:      q.Position,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			outcome.Correct = true
			outcome.PointsEarned = q.Points
			earned += q.Points
		}
		outcomes = append(outcomes, outcome)
	}
	return earned, outcomes
}

// Percentage converts earned points to a rounded percentage of the
// maximum. A lesson with no obtainable points scores zero.
func Percentage(earned, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(float64(earned) / float64(maxScore) * 100))
}
