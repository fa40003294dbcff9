package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/repositories"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
	"github.com/learnsmart/learnsmart/internal/pkg/classcode"
)

// maxCodeAttempts bounds the retry loop when a freshly drawn join code
// collides with an existing one.
const maxCodeAttempts = 5

// ClassService defines the interface for class-related operations
type ClassService interface {
	CreateClass(ctx context.Context, teacherID int64, req *dto.CreateClassRequest) (*dto.ClassResponse, error)
	GetTeacherClasses(ctx context.Context, teacherID int64) ([]*dto.ClassResponse, error)
	GetRoster(ctx context.Context, teacherID, classID int64) ([]*dto.RosterEntry, error)
	JoinClass(ctx context.Context, studentID int64, code string) (*dto.ClassSummary, error)
	GetStudentClass(ctx context.Context, studentID int64) (*dto.ClassSummary, error)
}

// classServiceImpl implements the ClassService interface
type classServiceImpl struct {
	classRepo *repositories.ClassRepository
	logger    zerolog.Logger
}

// NewClassService creates a new class service instance
func NewClassService(classRepo *repositories.ClassRepository, logger zerolog.Logger) ClassService {
	return &classServiceImpl{
		classRepo: classRepo,
		logger:    logger,
	}
}

// CreateClass creates a class for the teacher and issues its join code.
// A code that collides with an existing class is redrawn; the database
// unique constraint backs the check against concurrent issuers.
func (s *classServiceImpl) CreateClass(ctx context.Context, teacherID int64, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: class name cannot be empty", apperrors.ErrValidationFailed)
	}

	class := &models.Class{
		Name:      name,
		TeacherID: teacherID,
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := classcode.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate class code: %w", err)
		}

		taken, err := s.classRepo.CodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		class.Code = code
		err = s.classRepo.CreateClass(ctx, class)
		if err == nil {
			return &dto.ClassResponse{
				ID:        class.ID,
				Name:      class.Name,
				Code:      class.Code,
				TeacherID: class.TeacherID,
				CreatedAt: class.CreatedAt,
			}, nil
		}
		if errors.Is(err, apperrors.ErrConflict) {
			// Lost the race for this code, draw again
			continue
		}
		return nil, err
	}

	s.logger.Error().Int64("teacherID", teacherID).Int("attempts", maxCodeAttempts).Msg("Class code issuing exhausted")
	return nil, apperrors.ErrCodeExhausted
}

// GetTeacherClasses lists the teacher's classes with student counts
func (s *classServiceImpl) GetTeacherClasses(ctx context.Context, teacherID int64) ([]*dto.ClassResponse, error) {
	classes, err := s.classRepo.GetClassesByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ClassResponse, 0, len(classes))
	for _, class := range classes {
		count, err := s.classRepo.CountMembers(ctx, class.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, &dto.ClassResponse{
			ID:           class.ID,
			Name:         class.Name,
			Code:         class.Code,
			TeacherID:    class.TeacherID,
			StudentCount: count,
			CreatedAt:    class.CreatedAt,
		})
	}

	return responses, nil
}

// GetRoster lists the members of one of the teacher's own classes
func (s *classServiceImpl) GetRoster(ctx context.Context, teacherID, classID int64) ([]*dto.RosterEntry, error) {
	class, err := s.classRepo.GetClassByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class.TeacherID != teacherID {
		return nil, apperrors.NewForbiddenError("class belongs to another teacher")
	}

	members, err := s.classRepo.GetRoster(ctx, classID)
	if err != nil {
		return nil, err
	}

	roster := make([]*dto.RosterEntry, 0, len(members))
	for _, m := range members {
		roster = append(roster, &dto.RosterEntry{
			StudentID: m.StudentID,
			FullName:  m.Student.FullName,
			Email:     m.Student.Email,
			Level:     string(m.Student.SpanishLevel),
			JoinedAt:  m.JoinedAt,
		})
	}

	return roster, nil
}

// JoinClass enrolls the student into the class the code resolves to.
// Codes are matched case-insensitively; an unknown code is reported the
// same way as a malformed one.
func (s *classServiceImpl) JoinClass(ctx context.Context, studentID int64, code string) (*dto.ClassSummary, error) {
	normalized := classcode.Normalize(code)
	if !classcode.IsWellFormed(normalized) {
		return nil, apperrors.ErrInvalidClassCode
	}

	class, err := s.classRepo.GetClassByCode(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if err := s.classRepo.AddMember(ctx, class.ID, studentID); err != nil {
		return nil, err
	}

	return &dto.ClassSummary{
		ID:   class.ID,
		Name: class.Name,
		Code: class.Code,
	}, nil
}

// GetStudentClass returns the class the student joined, or nil
func (s *classServiceImpl) GetStudentClass(ctx context.Context, studentID int64) (*dto.ClassSummary, error) {
	class, err := s.classRepo.GetMembershipByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, nil
	}
	return &dto.ClassSummary{
		ID:   class.ID,
		Name: class.Name,
		Code: class.Code,
	}, nil
}
