package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/services"
	"github.com/learnsmart/learnsmart/internal/middleware"
	"github.com/learnsmart/learnsmart/internal/pkg/helpers"
)

// AdminController handles platform administration
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GetStats returns platform-wide counts
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.adminService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats})
}

// ListUsers lists registered users, newest first
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	users, err := c.adminService.ListUsers(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: users})
}

// UpdateRole changes a user's role
func (c *AdminController) UpdateRole(ctx *gin.Context) {
	adminID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.adminService.UpdateRole(ctx, adminID, userID, req.RoleType); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Role updated"}})
}
