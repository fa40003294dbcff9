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

// AssignmentService defines the interface for assignment operations
type AssignmentService interface {
	CreateAssignment(ctx context.Context, teacherID int64, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	GetClassAssignments(ctx context.Context, teacherID, classID int64) ([]dto.AssignmentResponse, error)
	GetStudentAssignments(ctx context.Context, studentID int64) ([]dto.AssignmentResponse, error)
	GetAssignmentDetail(ctx context.Context, teacherID, assignmentID int64) (*dto.AssignmentDetail, error)
	GradeSubmission(ctx context.Context, teacherID, assignmentID, studentID int64, req *dto.GradeSubmissionRequest) error
}

// assignmentServiceImpl implements the AssignmentService interface
type assignmentServiceImpl struct {
	assignmentRepo *repositories.AssignmentRepository
	classRepo      *repositories.ClassRepository
	lessonRepo     *repositories.LessonRepository
	dbPool         *pgxpool.Pool
	logger         zerolog.Logger
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	classRepo *repositories.ClassRepository,
	lessonRepo *repositories.LessonRepository,
	dbPool *pgxpool.Pool,
	logger zerolog.Logger,
) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		classRepo:      classRepo,
		lessonRepo:     lessonRepo,
		dbPool:         dbPool,
		logger:         logger,
	}
}

// requireOwnership loads a class and checks it belongs to the teacher
func (s *assignmentServiceImpl) requireOwnership(ctx context.Context, teacherID, classID int64) (*models.Class, error) {
	class, err := s.classRepo.GetClassByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class.TeacherID != teacherID {
		return nil, apperrors.NewForbiddenError("class belongs to another teacher")
	}
	return class, nil
}

// CreateAssignment assigns a lesson to a class. The assignment and one
// pending submission per current member are created in one transaction.
// Students joining later do not receive a submission retroactively.
func (s *assignmentServiceImpl) CreateAssignment(ctx context.Context, teacherID int64, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.requireOwnership(ctx, teacherID, req.ClassID); err != nil {
		return nil, err
	}

	lesson, err := s.lessonRepo.GetLessonByID(ctx, req.LessonID)
	if err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		ClassID:  req.ClassID,
		LessonID: req.LessonID,
		Title:    strings.TrimSpace(req.Title),
		DueDate:  req.DueDate,
	}

	err = db.WithTransaction(ctx, s.dbPool, func(ctx context.Context, tx pgx.Tx) error {
		studentIDs, err := s.classRepo.GetMemberIDs(ctx, tx, req.ClassID)
		if err != nil {
			return err
		}
		return s.assignmentRepo.CreateAssignmentTx(ctx, tx, assignment, studentIDs)
	})
	if err != nil {
		return nil, err
	}

	return &dto.AssignmentResponse{
		ID:          assignment.ID,
		ClassID:     assignment.ClassID,
		LessonID:    assignment.LessonID,
		LessonTitle: lesson.Title,
		Title:       assignment.Title,
		DueDate:     assignment.DueDate,
		CreatedAt:   assignment.CreatedAt,
	}, nil
}

// GetClassAssignments lists the assignments of one of the teacher's classes
func (s *assignmentServiceImpl) GetClassAssignments(ctx context.Context, teacherID, classID int64) ([]dto.AssignmentResponse, error) {
	if _, err := s.requireOwnership(ctx, teacherID, classID); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a, nil))
	}

	return responses, nil
}

// GetStudentAssignments lists the student's assignments with their
// submission state
func (s *assignmentServiceImpl) GetStudentAssignments(ctx context.Context, studentID int64) ([]dto.AssignmentResponse, error) {
	assignments, submissions, err := s.assignmentRepo.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a, submissions[a.ID]))
	}

	return responses, nil
}

// GetAssignmentDetail returns one assignment with every submission of
// the class, for its owning teacher.
func (s *assignmentServiceImpl) GetAssignmentDetail(ctx context.Context, teacherID, assignmentID int64) (*dto.AssignmentDetail, error) {
	assignment, err := s.assignmentRepo.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireOwnership(ctx, teacherID, assignment.ClassID); err != nil {
		return nil, err
	}

	submissions, err := s.assignmentRepo.GetSubmissions(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	detail := &dto.AssignmentDetail{
		AssignmentResponse: toAssignmentResponse(assignment, nil),
		Submissions:        make([]dto.SubmissionView, 0, len(submissions)),
	}
	for _, sub := range submissions {
		view := toSubmissionView(sub)
		view.StudentName = sub.Student.FullName
		detail.Submissions = append(detail.Submissions, view)
	}

	return detail, nil
}

// GradeSubmission records teacher feedback on a student's submission
func (s *assignmentServiceImpl) GradeSubmission(ctx context.Context, teacherID, assignmentID, studentID int64, req *dto.GradeSubmissionRequest) error {
	assignment, err := s.assignmentRepo.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if _, err := s.requireOwnership(ctx, teacherID, assignment.ClassID); err != nil {
		return err
	}

	if err := s.assignmentRepo.GradeSubmission(ctx, assignmentID, studentID, strings.TrimSpace(req.Feedback)); err != nil {
		return err
	}

	s.logger.Info().Int64("assignmentID", assignmentID).Int64("studentID", studentID).Msg("Submission graded")
	return nil
}

func toAssignmentResponse(a *models.Assignment, sub *models.AssignmentSubmission) dto.AssignmentResponse {
	resp := dto.AssignmentResponse{
		ID:        a.ID,
		ClassID:   a.ClassID,
		LessonID:  a.LessonID,
		Title:     a.Title,
		DueDate:   a.DueDate,
		CreatedAt: a.CreatedAt,
	}
	if a.Lesson != nil {
		resp.LessonTitle = a.Lesson.Title
	}
	if sub != nil {
		view := toSubmissionView(sub)
		resp.Submission = &view
	}
	return resp
}

func toSubmissionView(sub *models.AssignmentSubmission) dto.SubmissionView {
	return dto.SubmissionView{
		ID:          sub.ID,
		StudentID:   sub.StudentID,
		Completed:   sub.Completed,
		Score:       sub.Score,
		Feedback:    sub.Feedback,
		SubmittedAt: sub.SubmittedAt,
		GradedAt:    sub.GradedAt,
	}
}
