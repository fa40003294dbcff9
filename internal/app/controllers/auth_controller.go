package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/services"
	"github.com/learnsmart/learnsmart/internal/middleware"
)

// AuthController handles authentication operations
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles student and teacher signup
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: tokens})
}

// Login authenticates a user and issues a token pair
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tokens})
}

// RefreshToken exchanges a refresh token for a new token pair
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tokens})
}

// Logout revokes the caller's refresh token
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.Logout(ctx, req.RefreshToken); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Logged out"}})
}

// GetProfile returns the authenticated user's profile
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.authService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}
