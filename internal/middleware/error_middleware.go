package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to API responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrClassNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Class not found"),
		})
	case errors.Is(err, apperrors.ErrLessonNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Lesson not found"),
		})
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Assignment not found"),
		})
	case errors.Is(err, apperrors.ErrSubmissionNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Submission not found"),
		})
	case errors.Is(err, apperrors.ErrInvalidClassCode):
		// An unknown code and a malformed code look the same to the caller
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidClassCode, "Invalid class code").WithField("code"),
		})
	case errors.Is(err, apperrors.ErrAlreadyMember):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeAlreadyMember, "Already a member of this class"),
		})
	case errors.Is(err, apperrors.ErrCodeExhausted):
		c.JSON(503, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Could not issue a class code, try again"),
		})
	case errors.Is(err, apperrors.ErrQuotaExceeded):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeQuotaExceeded, "Monthly lesson quota exceeded"),
		})
	case errors.Is(err, apperrors.ErrUnknownTier):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown subscription tier").WithField("tier"),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Account is disabled"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found"),
		})
	case errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token revoked"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrLessonNoQuestion),
		errors.Is(err, apperrors.ErrAnswerCountWrong),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithField("email"),
		})
	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeConflict, "Conflict"),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
