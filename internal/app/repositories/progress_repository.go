package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/learnsmart/learnsmart/internal/app/models"
)

// ProgressRepository handles lesson progress and leaderboard persistence
type ProgressRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// UpsertTx writes a progress record keyed by (student, lesson) inside a
// transaction. A second attempt overwrites the stored record.
func (r *ProgressRepository) UpsertTx(ctx context.Context, tx pgx.Tx, record *models.ProgressRecord) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO lesson_progress (student_id, lesson_id, completed, score, max_score, completed_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (student_id, lesson_id)
		DO UPDATE SET completed = EXCLUDED.completed,
			score = EXCLUDED.score,
			max_score = EXCLUDED.max_score,
			completed_at = EXCLUDED.completed_at
		RETURNING id, completed_at`,
		record.StudentID, record.LessonID, record.Completed, record.Score, record.MaxScore).
		Scan(&record.ID, &record.CompletedAt)
	if err != nil {
		return fmt.Errorf("error upserting progress record: %w", err)
	}
	return nil
}

// GetByStudent lists a student's progress records with lesson titles
func (r *ProgressRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.ProgressRecord, error) {
	sql, args, err := r.sb.Select(
		"p.id", "p.student_id", "p.lesson_id", "p.completed", "p.score", "p.max_score", "p.completed_at",
		"l.title", "l.level").
		From("lesson_progress p").
		Join("lessons l ON l.id = p.lesson_id").
		Where(squirrel.Eq{"p.student_id": studentID}).
		OrderBy("p.completed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build progress query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing progress records: %w", err)
	}
	defer rows.Close()

	var records []*models.ProgressRecord
	for rows.Next() {
		rec := &models.ProgressRecord{Lesson: &models.Lesson{}}
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.LessonID, &rec.Completed,
			&rec.Score, &rec.MaxScore, &rec.CompletedAt,
			&rec.Lesson.Title, &rec.Lesson.Level); err != nil {
			return nil, fmt.Errorf("error scanning progress row: %w", err)
		}
		rec.Lesson.ID = rec.LessonID
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CountCompleted counts all completed progress records platform-wide
func (r *ProgressRepository) CountCompleted(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM lesson_progress WHERE completed = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting completed lessons: %w", err)
	}
	return count, nil
}

// AddLeaderboardScoreTx adds earned points to a user's leaderboard row
// inside a transaction, creating the row on first completion.
func (r *ProgressRepository) AddLeaderboardScoreTx(ctx context.Context, tx pgx.Tx, userID int64, points int) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO leaderboard (user_id, score)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET score = leaderboard.score + EXCLUDED.score`,
		userID, points)
	if err != nil {
		return fmt.Errorf("error updating leaderboard: %w", err)
	}
	return nil
}

// TopScores returns the highest scoring users
func (r *ProgressRepository) TopScores(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	return r.topScores(ctx, 0, limit)
}

// TopScoresByClass returns the highest scoring members of one class
func (r *ProgressRepository) TopScoresByClass(ctx context.Context, classID int64, limit int) ([]*models.LeaderboardEntry, error) {
	return r.topScores(ctx, classID, limit)
}

func (r *ProgressRepository) topScores(ctx context.Context, classID int64, limit int) ([]*models.LeaderboardEntry, error) {
	builder := r.sb.Select("b.user_id", "b.score", "u.full_name").
		From("leaderboard b").
		Join("users u ON u.id = b.user_id").
		OrderBy("b.score DESC", "u.full_name ASC").
		Limit(uint64(limit))

	if classID > 0 {
		builder = builder.
			Join("class_memberships m ON m.student_id = b.user_id").
			Where(squirrel.Eq{"m.class_id": classID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*models.LeaderboardEntry
	for rows.Next() {
		entry := &models.LeaderboardEntry{}
		if err := rows.Scan(&entry.UserID, &entry.Score, &entry.FullName); err != nil {
			return nil, fmt.Errorf("error scanning leaderboard row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
