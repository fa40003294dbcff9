package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
	"github.com/learnsmart/learnsmart/internal/pkg/logger"
)

// LessonFilter narrows lesson listings
type LessonFilter struct {
	Level       models.Level
	Subject     string
	DefaultOnly bool
	CreatedBy   *int64
}

// LessonRepository handles lesson and question database operations
type LessonRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateLessonTx inserts a lesson and its questions inside the given
// transaction, so a partial failure leaves no orphaned rows.
func (r *LessonRepository) CreateLessonTx(ctx context.Context, tx pgx.Tx, lesson *models.Lesson) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO lessons (title, level, subject, created_by, is_default)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		lesson.Title, lesson.Level, lesson.Subject, lesson.CreatedBy, lesson.IsDefault).
		Scan(&lesson.ID, &lesson.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating lesson: %w", err)
	}

	for i := range lesson.Questions {
		q := &lesson.Questions[i]
		q.LessonID = lesson.ID
		q.Position = i
		err = tx.QueryRow(ctx, `
			INSERT INTO lesson_questions (lesson_id, position, prompt, options, correct_answer, points, explanation)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			q.LessonID, q.Position, q.Prompt, q.Options, q.CorrectAnswer, q.Points, q.Explanation).
			Scan(&q.ID)
		if err != nil {
			return fmt.Errorf("error creating question %d: %w", i, err)
		}
	}

	logger.Info().Int64("lessonID", lesson.ID).Int("questions", len(lesson.Questions)).Msg("Lesson created")
	return nil
}

// GetLessonByID retrieves a lesson with its ordered questions
func (r *LessonRepository) GetLessonByID(ctx context.Context, id int64) (*models.Lesson, error) {
	lesson := &models.Lesson{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, level, subject, created_by, is_default, created_at
		FROM lessons WHERE id = $1`, id).
		Scan(&lesson.ID, &lesson.Title, &lesson.Level, &lesson.Subject,
			&lesson.CreatedBy, &lesson.IsDefault, &lesson.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, fmt.Errorf("error retrieving lesson: %w", err)
	}

	questions, err := r.getQuestions(ctx, id)
	if err != nil {
		return nil, err
	}
	lesson.Questions = questions

	return lesson, nil
}

func (r *LessonRepository) getQuestions(ctx context.Context, lessonID int64) ([]models.Question, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, lesson_id, position, prompt, options, correct_answer, points, explanation
		FROM lesson_questions
		WHERE lesson_id = $1
		ORDER BY position ASC`, lessonID)
	if err != nil {
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.LessonID, &q.Position, &q.Prompt,
			&q.Options, &q.CorrectAnswer, &q.Points, &q.Explanation); err != nil {
			return nil, fmt.Errorf("error scanning question row: %w", err)
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// ListLessons lists lessons matching the filter with their question
// counts and maximum scores, newest first.
func (r *LessonRepository) ListLessons(ctx context.Context, filter LessonFilter) ([]*models.Lesson, map[int64]int, map[int64]int, error) {
	builder := r.sb.Select(
		"l.id", "l.title", "l.level", "l.subject", "l.created_by", "l.is_default", "l.created_at",
		"COUNT(q.id)", "COALESCE(SUM(q.points), 0)").
		From("lessons l").
		LeftJoin("lesson_questions q ON q.lesson_id = l.id").
		GroupBy("l.id").
		OrderBy("l.created_at ASC")

	if filter.Level != "" {
		builder = builder.Where(squirrel.Eq{"l.level": filter.Level})
	}
	if filter.Subject != "" {
		builder = builder.Where(squirrel.Eq{"l.subject": filter.Subject})
	}
	if filter.DefaultOnly {
		builder = builder.Where(squirrel.Eq{"l.is_default": true})
	}
	if filter.CreatedBy != nil {
		builder = builder.Where(squirrel.Eq{"l.created_by": *filter.CreatedBy})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build list lessons query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error listing lessons: %w", err)
	}
	defer rows.Close()

	var lessons []*models.Lesson
	questionCounts := make(map[int64]int)
	maxScores := make(map[int64]int)
	for rows.Next() {
		lesson := &models.Lesson{}
		var count, maxScore int
		if err := rows.Scan(&lesson.ID, &lesson.Title, &lesson.Level, &lesson.Subject,
			&lesson.CreatedBy, &lesson.IsDefault, &lesson.CreatedAt, &count, &maxScore); err != nil {
			return nil, nil, nil, fmt.Errorf("error scanning lesson row: %w", err)
		}
		lessons = append(lessons, lesson)
		questionCounts[lesson.ID] = count
		maxScores[lesson.ID] = maxScore
	}

	return lessons, questionCounts, maxScores, rows.Err()
}

// DeleteLesson removes a lesson; questions cascade via FK
func (r *LessonRepository) DeleteLesson(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting lesson: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}
	return nil
}

// LessonExists checks whether a lesson exists
func (r *LessonRepository) LessonExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM lessons WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking lesson: %w", err)
	}
	return exists, nil
}
