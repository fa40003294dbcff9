package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/services"
	"github.com/learnsmart/learnsmart/internal/middleware"
)

// defaultLeaderboardSize caps the leaderboard response
const defaultLeaderboardSize = 20

// ProgressController handles lesson sessions and the leaderboard
type ProgressController struct {
	progressService services.ProgressService
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService services.ProgressService) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

// StartLesson opens a lesson session, consuming monthly quota on free
// accounts
func (c *ProgressController) StartLesson(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	lessonID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.progressService.StartLesson(ctx, studentID, lessonID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// CompleteLesson scores the submitted answers and saves the outcome
func (c *ProgressController) CompleteLesson(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	lessonID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CompleteLessonRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := c.progressService.CompleteLesson(ctx, studentID, lessonID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: result})
}

// GetOverview summarizes the authenticated student's progress
func (c *ProgressController) GetOverview(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	overview, err := c.progressService.GetOverview(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: overview})
}

// GetLeaderboard returns the top scores, optionally scoped to one class
func (c *ProgressController) GetLeaderboard(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	limit := defaultLeaderboardSize
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 || parsed > 100 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit").WithField("limit")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		limit = parsed
	}

	var rows []dto.LeaderboardRow
	var err error
	if classStr := ctx.Query("classId"); classStr != "" {
		classID, parseErr := strconv.ParseInt(classStr, 10, 64)
		if parseErr != nil || classID <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classId").WithField("classId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		rows, err = c.progressService.GetClassLeaderboard(ctx, userID, classID, limit)
	} else {
		rows, err = c.progressService.GetLeaderboard(ctx, limit)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: rows})
}
