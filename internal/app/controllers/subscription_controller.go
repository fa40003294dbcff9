package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/services"
	"github.com/learnsmart/learnsmart/internal/middleware"
)

// SubscriptionController handles subscription and quota operations
type SubscriptionController struct {
	subscriptionService services.SubscriptionService
}

// NewSubscriptionController creates a new SubscriptionController
func NewSubscriptionController(subscriptionService services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// GetStatus reports the caller's plan and remaining quota
func (c *SubscriptionController) GetStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	status, err := c.subscriptionService.GetStatus(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: status})
}

// Upgrade moves the caller to a paid tier
func (c *SubscriptionController) Upgrade(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpgradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	status, err := c.subscriptionService.Upgrade(ctx, userID, req.Tier)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: status})
}
