package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/services"
	"github.com/learnsmart/learnsmart/internal/middleware"
)

// PlacementController handles the placement test
type PlacementController struct {
	placementService services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.PlacementService) *PlacementController {
	return &PlacementController{
		placementService: placementService,
	}
}

// GetQuestions returns the placement bank without correct options
func (c *PlacementController) GetQuestions(ctx *gin.Context) {
	questions, err := c.placementService.GetQuestions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: questions})
}

// Submit scores the placement answers and assigns the resulting level
func (c *PlacementController) Submit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.SubmitPlacementRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := c.placementService.Submit(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: result})
}
