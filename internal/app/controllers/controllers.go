package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
)

// currentUserID reads the authenticated user's id set by the JWT
// middleware. A missing or malformed value aborts with 401.
func currentUserID(ctx *gin.Context) (int64, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		unauthorized(ctx, "User information not found")
		return 0, false
	}
	userID, ok := value.(int64)
	if !ok {
		unauthorized(ctx, "Invalid user information")
		return 0, false
	}
	return userID, true
}

// currentRole reads the authenticated user's role set by the JWT middleware
func currentRole(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get("roleType")
	if !exists {
		unauthorized(ctx, "User role not found")
		return "", false
	}
	role, ok := value.(string)
	if !ok {
		unauthorized(ctx, "Invalid user role")
		return "", false
	}
	return role, true
}

// parseIDParam parses a positive int64 path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body and reports validation failures
func bindJSON(ctx *gin.Context, target interface{}) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}

func unauthorized(ctx *gin.Context, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	errorDetail = errorDetail.WithDetails(details)
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
