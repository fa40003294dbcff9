package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/services"
	"github.com/learnsmart/learnsmart/internal/middleware"
)

// ClassController handles class and membership operations
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// CreateClass creates a class for the authenticated teacher and returns
// its join code
func (c *ClassController) CreateClass(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateClassRequest
	if !bindJSON(ctx, &req) {
		return
	}

	class, err := c.classService.CreateClass(ctx, teacherID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: class})
}

// GetMyClasses lists the authenticated teacher's classes
func (c *ClassController) GetMyClasses(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	classes, err := c.classService.GetTeacherClasses(ctx, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classes})
}

// GetRoster lists the members of one of the teacher's classes
func (c *ClassController) GetRoster(ctx *gin.Context) {
	teacherID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	classID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	roster, err := c.classService.GetRoster(ctx, teacherID, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: roster})
}

// JoinClass enrolls the authenticated student by join code
func (c *ClassController) JoinClass(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.JoinClassRequest
	if !bindJSON(ctx, &req) {
		return
	}

	class, err := c.classService.JoinClass(ctx, studentID, req.Code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: class})
}

// GetMyClass returns the class the authenticated student joined
func (c *ClassController) GetMyClass(ctx *gin.Context) {
	studentID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	class, err := c.classService.GetStudentClass(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if class == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No class joined yet")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: class})
}
