package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
	"github.com/learnsmart/learnsmart/internal/pkg/logger"
)

// AssignmentRepository handles assignment and submission database operations
type AssignmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateAssignmentTx inserts the assignment and one incomplete submission
// per enrolled student inside the given transaction.
func (r *AssignmentRepository) CreateAssignmentTx(ctx context.Context, tx pgx.Tx, assignment *models.Assignment, studentIDs []int64) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO assignments (class_id, lesson_id, title, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		assignment.ClassID, assignment.LessonID, assignment.Title, assignment.DueDate).
		Scan(&assignment.ID, &assignment.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}

	for _, studentID := range studentIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO assignment_submissions (assignment_id, student_id, completed, score)
			VALUES ($1, $2, FALSE, 0)`,
			assignment.ID, studentID)
		if err != nil {
			return fmt.Errorf("error creating submission for student %d: %w", studentID, err)
		}
	}

	logger.Info().Int64("assignmentID", assignment.ID).Int("students", len(studentIDs)).Msg("Assignment created")
	return nil
}

// GetAssignmentByID retrieves an assignment with its lesson title
func (r *AssignmentRepository) GetAssignmentByID(ctx context.Context, id int64) (*models.Assignment, error) {
	assignment := &models.Assignment{Lesson: &models.Lesson{}}
	err := r.db.QueryRow(ctx, `
		SELECT a.id, a.class_id, a.lesson_id, a.title, a.due_date, a.created_at, l.title
		FROM assignments a
		JOIN lessons l ON l.id = a.lesson_id
		WHERE a.id = $1`, id).
		Scan(&assignment.ID, &assignment.ClassID, &assignment.LessonID,
			&assignment.Title, &assignment.DueDate, &assignment.CreatedAt,
			&assignment.Lesson.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}
	assignment.Lesson.ID = assignment.LessonID
	return assignment, nil
}

// ListByClass lists a class's assignments, soonest due first
func (r *AssignmentRepository) ListByClass(ctx context.Context, classID int64) ([]*models.Assignment, error) {
	sql, args, err := r.sb.Select(
		"a.id", "a.class_id", "a.lesson_id", "a.title", "a.due_date", "a.created_at", "l.title").
		From("assignments a").
		Join("lessons l ON l.id = a.lesson_id").
		Where(squirrel.Eq{"a.class_id": classID}).
		OrderBy("a.due_date ASC NULLS LAST", "a.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	return r.queryAssignments(ctx, sql, args)
}

// ListForStudent lists assignments of the student's classes together
// with the student's submission state.
func (r *AssignmentRepository) ListForStudent(ctx context.Context, studentID int64) ([]*models.Assignment, map[int64]*models.AssignmentSubmission, error) {
	sql, args, err := r.sb.Select(
		"a.id", "a.class_id", "a.lesson_id", "a.title", "a.due_date", "a.created_at", "l.title",
		"s.id", "s.completed", "s.score", "s.feedback", "s.submitted_at", "s.graded_at").
		From("assignments a").
		Join("lessons l ON l.id = a.lesson_id").
		Join("assignment_submissions s ON s.assignment_id = a.id").
		Where(squirrel.Eq{"s.student_id": studentID}).
		OrderBy("a.due_date ASC NULLS LAST", "a.created_at DESC").
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build student assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing student assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.Assignment
	submissions := make(map[int64]*models.AssignmentSubmission)
	for rows.Next() {
		a := &models.Assignment{Lesson: &models.Lesson{}}
		s := &models.AssignmentSubmission{StudentID: studentID}
		var feedback *string
		if err := rows.Scan(&a.ID, &a.ClassID, &a.LessonID, &a.Title, &a.DueDate, &a.CreatedAt,
			&a.Lesson.Title, &s.ID, &s.Completed, &s.Score, &feedback, &s.SubmittedAt, &s.GradedAt); err != nil {
			return nil, nil, fmt.Errorf("error scanning student assignment row: %w", err)
		}
		a.Lesson.ID = a.LessonID
		s.AssignmentID = a.ID
		if feedback != nil {
			s.Feedback = *feedback
		}
		assignments = append(assignments, a)
		submissions[a.ID] = s
	}

	return assignments, submissions, rows.Err()
}

// GetSubmissions lists all submissions of an assignment with student names
func (r *AssignmentRepository) GetSubmissions(ctx context.Context, assignmentID int64) ([]*models.AssignmentSubmission, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.assignment_id", "s.student_id", "s.completed", "s.score",
		"s.feedback", "s.submitted_at", "s.graded_at", "u.full_name", "u.email").
		From("assignment_submissions s").
		Join("users u ON u.id = s.student_id").
		Where(squirrel.Eq{"s.assignment_id": assignmentID}).
		OrderBy("u.full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build submissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*models.AssignmentSubmission
	for rows.Next() {
		s := &models.AssignmentSubmission{Student: &models.User{}}
		var feedback *string
		if err := rows.Scan(&s.ID, &s.AssignmentID, &s.StudentID, &s.Completed, &s.Score,
			&feedback, &s.SubmittedAt, &s.GradedAt, &s.Student.FullName, &s.Student.Email); err != nil {
			return nil, fmt.Errorf("error scanning submission row: %w", err)
		}
		s.Student.ID = s.StudentID
		if feedback != nil {
			s.Feedback = *feedback
		}
		submissions = append(submissions, s)
	}

	return submissions, rows.Err()
}

// FindIncompleteSubmissionTx looks for one incomplete submission of the
// student for an assignment on the given lesson. Returns (0, nil) when
// there is none.
func (r *AssignmentRepository) FindIncompleteSubmissionTx(ctx context.Context, tx pgx.Tx, studentID, lessonID int64) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		SELECT s.id
		FROM assignment_submissions s
		JOIN assignments a ON a.id = s.assignment_id
		WHERE s.student_id = $1 AND a.lesson_id = $2 AND s.completed = FALSE
		ORDER BY a.created_at ASC
		LIMIT 1`, studentID, lessonID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error finding incomplete submission: %w", err)
	}
	return id, nil
}

// CompleteSubmissionTx marks a submission complete with the rounded
// percentage score inside the given transaction.
func (r *AssignmentRepository) CompleteSubmissionTx(ctx context.Context, tx pgx.Tx, submissionID int64, percentage int) error {
	cmdTag, err := tx.Exec(ctx, `
		UPDATE assignment_submissions
		SET completed = TRUE, score = $1, submitted_at = NOW()
		WHERE id = $2`, percentage, submissionID)
	if err != nil {
		return fmt.Errorf("error completing submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}
	return nil
}

// GradeSubmission records teacher feedback and the grading timestamp
func (r *AssignmentRepository) GradeSubmission(ctx context.Context, assignmentID, studentID int64, feedback string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE assignment_submissions
		SET feedback = $1, graded_at = $2
		WHERE assignment_id = $3 AND student_id = $4`,
		feedback, time.Now(), assignmentID, studentID)
	if err != nil {
		return fmt.Errorf("error grading submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}
	return nil
}

func (r *AssignmentRepository) queryAssignments(ctx context.Context, sql string, args []interface{}) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		a := &models.Assignment{Lesson: &models.Lesson{}}
		if err := rows.Scan(&a.ID, &a.ClassID, &a.LessonID, &a.Title, &a.DueDate,
			&a.CreatedAt, &a.Lesson.Title); err != nil {
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		a.Lesson.ID = a.LessonID
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}
