package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/repositories"
	"github.com/learnsmart/learnsmart/internal/app/services"
	"github.com/learnsmart/learnsmart/internal/middleware"
)

// LessonController handles lesson content operations
type LessonController struct {
	lessonService services.LessonService
}

// NewLessonController creates a new LessonController
func NewLessonController(lessonService services.LessonService) *LessonController {
	return &LessonController{
		lessonService: lessonService,
	}
}

// ListLessons lists lessons, optionally filtered by level, subject, or
// authorship
func (c *LessonController) ListLessons(ctx *gin.Context) {
	filter := repositories.LessonFilter{
		Subject:     ctx.Query("subject"),
		DefaultOnly: ctx.Query("default") == "true",
	}

	if levelStr := ctx.Query("level"); levelStr != "" {
		level := models.Level(levelStr)
		if !level.IsValid() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown level").WithField("level")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.Level = level
	}

	if ctx.Query("mine") == "true" {
		userID, ok := currentUserID(ctx)
		if !ok {
			return
		}
		filter.CreatedBy = &userID
	}

	lessons, err := c.lessonService.ListLessons(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: lessons})
}

// GetLesson returns the taking view of one lesson
func (c *LessonController) GetLesson(ctx *gin.Context) {
	lessonID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	lesson, err := c.lessonService.GetLesson(ctx, lessonID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: lesson})
}

// CreateLesson creates a lesson with its questions
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	creatorID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateLessonRequest
	if !bindJSON(ctx, &req) {
		return
	}

	lesson, err := c.lessonService.CreateLesson(ctx, creatorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: lesson})
}

// DeleteLesson removes a lesson
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	role, ok := currentRole(ctx)
	if !ok {
		return
	}
	lessonID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.lessonService.DeleteLesson(ctx, userID, models.RoleType(role), lessonID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Lesson deleted"}})
}
