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
	"github.com/learnsmart/learnsmart/internal/pkg/dberrors"
	"github.com/learnsmart/learnsmart/internal/pkg/logger"
)

// ClassRepository handles class and membership database operations
type ClassRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateClass inserts a new class. The caller is responsible for issuing
// a unique code; a duplicate code surfaces as ErrConflict so the issuer
// can retry with a fresh draw.
func (r *ClassRepository) CreateClass(ctx context.Context, class *models.Class) error {
	sql, args, err := r.sb.Insert("classes").
		Columns("name", "code", "teacher_id").
		Values(class.Name, class.Code, class.TeacherID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create class query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&class.ID, &class.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "classes_code_key") {
			logger.Warn().Str("code", class.Code).Msg("Class code collision on insert")
			return apperrors.ErrConflict
		}
		logger.Error().Err(err).Int64("teacherID", class.TeacherID).Msg("Error executing create class query")
		return fmt.Errorf("error creating class: %w", err)
	}

	logger.Info().Int64("classID", class.ID).Str("code", class.Code).Msg("Class created")
	return nil
}

// CodeExists checks whether a join code is already taken
func (r *ClassRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM classes WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking class code: %w", err)
	}
	return exists, nil
}

// GetClassByCode resolves a normalized join code to exactly one class.
// Zero matches yield ErrInvalidClassCode.
func (r *ClassRepository) GetClassByCode(ctx context.Context, code string) (*models.Class, error) {
	class := &models.Class{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, code, teacher_id, created_at FROM classes WHERE code = $1`,
		code).Scan(&class.ID, &class.Name, &class.Code, &class.TeacherID, &class.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidClassCode
		}
		return nil, fmt.Errorf("error retrieving class by code: %w", err)
	}
	return class, nil
}

// GetClassByID retrieves a class by ID
func (r *ClassRepository) GetClassByID(ctx context.Context, id int64) (*models.Class, error) {
	class := &models.Class{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, code, teacher_id, created_at FROM classes WHERE id = $1`,
		id).Scan(&class.ID, &class.Name, &class.Code, &class.TeacherID, &class.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}
	return class, nil
}

// GetClassesByTeacher lists a teacher's classes, newest first
func (r *ClassRepository) GetClassesByTeacher(ctx context.Context, teacherID int64) ([]*models.Class, error) {
	sql, args, err := r.sb.Select("id", "name", "code", "teacher_id", "created_at").
		From("classes").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list classes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing classes: %w", err)
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ID, &class.Name, &class.Code, &class.TeacherID, &class.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, class)
	}

	return classes, rows.Err()
}

// AddMember enrolls a student into a class. A duplicate (class, student)
// pair surfaces as ErrAlreadyMember without inserting a second row.
func (r *ClassRepository) AddMember(ctx context.Context, classID, studentID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO class_memberships (class_id, student_id) VALUES ($1, $2)`,
		classID, studentID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "class_memberships_class_id_student_id_key") {
			return apperrors.ErrAlreadyMember
		}
		logger.Error().Err(err).Int64("classID", classID).Int64("studentID", studentID).Msg("Error adding class member")
		return fmt.Errorf("error adding class member: %w", err)
	}

	logger.Info().Int64("classID", classID).Int64("studentID", studentID).Msg("Student joined class")
	return nil
}

// IsMember checks whether a student already belongs to a class
func (r *ClassRepository) IsMember(ctx context.Context, classID, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM class_memberships WHERE class_id = $1 AND student_id = $2)`,
		classID, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking class membership: %w", err)
	}
	return exists, nil
}

// GetMembershipByStudent returns the class a student belongs to, or nil
// when the student has not joined one.
func (r *ClassRepository) GetMembershipByStudent(ctx context.Context, studentID int64) (*models.Class, error) {
	class := &models.Class{}
	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.name, c.code, c.teacher_id, c.created_at
		FROM classes c
		JOIN class_memberships m ON m.class_id = c.id
		WHERE m.student_id = $1
		ORDER BY m.joined_at DESC
		LIMIT 1`, studentID).Scan(&class.ID, &class.Name, &class.Code, &class.TeacherID, &class.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student class: %w", err)
	}
	return class, nil
}

// GetRoster lists the members of a class with their user details
func (r *ClassRepository) GetRoster(ctx context.Context, classID int64) ([]*models.ClassMembership, error) {
	sql, args, err := r.sb.Select(
		"m.id", "m.class_id", "m.student_id", "m.joined_at",
		"u.full_name", "u.email", "u.spanish_level").
		From("class_memberships m").
		Join("users u ON u.id = m.student_id").
		Where(squirrel.Eq{"m.class_id": classID}).
		OrderBy("m.joined_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build roster query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing roster: %w", err)
	}
	defer rows.Close()

	var members []*models.ClassMembership
	for rows.Next() {
		m := &models.ClassMembership{Student: &models.User{}}
		var level *string
		if err := rows.Scan(&m.ID, &m.ClassID, &m.StudentID, &m.JoinedAt,
			&m.Student.FullName, &m.Student.Email, &level); err != nil {
			return nil, fmt.Errorf("error scanning roster row: %w", err)
		}
		m.Student.ID = m.StudentID
		if level != nil {
			m.Student.SpanishLevel = models.Level(*level)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// GetMemberIDs returns the student ids of a class, used when fanning out
// assignment submissions inside a transaction.
func (r *ClassRepository) GetMemberIDs(ctx context.Context, tx pgx.Tx, classID int64) ([]int64, error) {
	rows, err := tx.Query(ctx, `
		SELECT student_id FROM class_memberships WHERE class_id = $1`, classID)
	if err != nil {
		return nil, fmt.Errorf("error listing member ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning member id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// CountMembers counts the students enrolled in a class
func (r *ClassRepository) CountMembers(ctx context.Context, classID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM class_memberships WHERE class_id = $1`, classID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting members: %w", err)
	}
	return count, nil
}

// CountClasses counts all classes
func (r *ClassRepository) CountClasses(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM classes`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting classes: %w", err)
	}
	return count, nil
}
