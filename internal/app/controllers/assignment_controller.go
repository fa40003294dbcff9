package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/services"
	"github.com/learnsmart/learnsmart/internal/middleware"
)

// AssignmentController handles assignment operations
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// CreateAssignment assigns a lesson to one of the teacher's classes
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.CreateAssignment(ctx, teacherID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: assignment})
}

// GetClassAssignments lists the assignments of one of the teacher's classes
func (c *AssignmentController) GetClassAssignments(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	classID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignments, err := c.assignmentService.GetClassAssignments(ctx, teacherID, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: assignments})
}

// GetMyAssignments lists the authenticated student's assignments
func (c *AssignmentController) GetMyAssignments(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	assignments, err := c.assignmentService.GetStudentAssignments(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: assignments})
}

// GetAssignmentDetail returns one assignment with all class submissions
func (c *AssignmentController) GetAssignmentDetail(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.assignmentService.GetAssignmentDetail(ctx, teacherID, assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: detail})
}

// GradeSubmission records feedback on a student's submission
func (c *AssignmentController) GradeSubmission(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	var req dto.GradeSubmissionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.assignmentService.GradeSubmission(ctx, teacherID, assignmentID, studentID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Submission graded"}})
}
