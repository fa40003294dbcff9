package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/learnsmart/learnsmart/internal/app/controllers"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	classController *controllers.ClassController,
	lessonController *controllers.LessonController,
	placementController *controllers.PlacementController,
	progressController *controllers.ProgressController,
	subscriptionController *controllers.SubscriptionController,
	assignmentController *controllers.AssignmentController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/users/me", authController.GetProfile)

		// Lesson catalog is readable by every authenticated user
		lessons := authenticated.Group("/lessons")
		{
			lessons.GET("", lessonController.ListLessons)
			lessons.GET("/:id", lessonController.GetLesson)

			// Authoring is limited to teachers and admins
			lessonsAuthorProtected := lessons.Group("")
			lessonsAuthorProtected.Use(authMiddleware.RoleRequired(
				string(models.RoleTeacher), string(models.RoleAdmin)))
			{
				lessonsAuthorProtected.POST("", lessonController.CreateLesson)
				lessonsAuthorProtected.DELETE("/:id", lessonController.DeleteLesson)
			}

			// Taking lessons is a student activity
			lessonsStudentProtected := lessons.Group("")
			lessonsStudentProtected.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				lessonsStudentProtected.POST("/:id/start", progressController.StartLesson)
				lessonsStudentProtected.POST("/:id/complete", progressController.CompleteLesson)
			}
		}

		// Placement test routes (students only)
		placement := authenticated.Group("/placement")
		placement.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			placement.GET("/questions", placementController.GetQuestions)
			placement.POST("/submit", placementController.Submit)
		}

		// Student routes
		student := authenticated.Group("")
		student.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			student.POST("/classes/join", classController.JoinClass)
			student.GET("/classes/mine", classController.GetMyClass)
			student.GET("/progress", progressController.GetOverview)
			student.GET("/assignments", assignmentController.GetMyAssignments)
		}

		// Teacher routes
		teacher := authenticated.Group("")
		teacher.Use(authMiddleware.RoleRequired(string(models.RoleTeacher)))
		{
			teacher.POST("/classes", classController.CreateClass)
			teacher.GET("/classes", classController.GetMyClasses)
			teacher.GET("/classes/:id/roster", classController.GetRoster)
			teacher.GET("/classes/:id/assignments", assignmentController.GetClassAssignments)
			teacher.POST("/assignments", assignmentController.CreateAssignment)
			teacher.GET("/assignments/:id", assignmentController.GetAssignmentDetail)
			teacher.POST("/assignments/:id/submissions/:studentId/grade", assignmentController.GradeSubmission)
		}

		// Leaderboard is visible to every authenticated user
		authenticated.GET("/leaderboard", progressController.GetLeaderboard)

		// Subscription routes
		subscription := authenticated.Group("/subscription")
		{
			subscription.GET("", subscriptionController.GetStatus)
			subscription.POST("/upgrade", subscriptionController.Upgrade)
		}

		// Admin routes
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/stats", adminController.GetStats)
			admin.GET("/users", adminController.ListUsers)
			admin.PUT("/users/:id/role", adminController.UpdateRole)
		}
	}
}
