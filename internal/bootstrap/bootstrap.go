package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/learnsmart/learnsmart/internal/app/controllers"
	appMigrations "github.com/learnsmart/learnsmart/internal/app/migrations"
	appRepos "github.com/learnsmart/learnsmart/internal/app/repositories"
	appRoutes "github.com/learnsmart/learnsmart/internal/app/routes"
	appServices "github.com/learnsmart/learnsmart/internal/app/services"
	"github.com/learnsmart/learnsmart/internal/config"
	"github.com/learnsmart/learnsmart/internal/db"
	appMiddleware "github.com/learnsmart/learnsmart/internal/middleware"
	pkgAuth "github.com/learnsmart/learnsmart/internal/pkg/auth"
	"github.com/learnsmart/learnsmart/internal/pkg/helpers"
	"github.com/learnsmart/learnsmart/internal/pkg/logger"
	"github.com/learnsmart/learnsmart/internal/scheduler"
	"github.com/learnsmart/learnsmart/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	ClassService           appServices.ClassService
	LessonService          appServices.LessonService
	PlacementService       appServices.PlacementService
	ProgressService        appServices.ProgressService
	SubscriptionService    appServices.SubscriptionService
	AssignmentService      appServices.AssignmentService
	AdminService           appServices.AdminService
	AuthController         *appControllers.AuthController
	ClassController        *appControllers.ClassController
	LessonController       *appControllers.LessonController
	PlacementController    *appControllers.PlacementController
	ProgressController     *appControllers.ProgressController
	SubscriptionController *appControllers.SubscriptionController
	AssignmentController   *appControllers.AssignmentController
	AdminController        *appControllers.AdminController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Scheduler              *scheduler.Scheduler
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default content.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Startup continues without the default content
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.ClassRepository,
		deps.JWTService,
		lgr,
	)

	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository, lgr)
	deps.LessonService = appServices.NewLessonService(deps.Repos.LessonRepository, dbPool, lgr)
	deps.PlacementService = appServices.NewPlacementService(deps.Repos.PlacementRepository, deps.Repos.UserRepository, lgr)
	deps.SubscriptionService = appServices.NewSubscriptionService(deps.Repos.UserRepository, lgr)
	deps.ProgressService = appServices.NewProgressService(
		deps.Repos.ProgressRepository,
		deps.Repos.LessonRepository,
		deps.Repos.UserRepository,
		deps.Repos.AssignmentRepository,
		deps.Repos.ClassRepository,
		dbPool,
		lgr,
	)
	deps.AssignmentService = appServices.NewAssignmentService(
		deps.Repos.AssignmentRepository,
		deps.Repos.ClassRepository,
		deps.Repos.LessonRepository,
		dbPool,
		lgr,
	)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.UserRepository,
		deps.Repos.ClassRepository,
		deps.Repos.ProgressRepository,
		deps.Repos.TokenRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.LessonController = appControllers.NewLessonController(deps.LessonService)
	deps.PlacementController = appControllers.NewPlacementController(deps.PlacementService)
	deps.ProgressController = appControllers.NewProgressController(deps.ProgressService)
	deps.SubscriptionController = appControllers.NewSubscriptionController(deps.SubscriptionService)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)

	deps.Scheduler = scheduler.New(deps.Repos.UserRepository, deps.Repos.TokenRepository, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ClassController,
		deps.LessonController,
		deps.PlacementController,
		deps.ProgressController,
		deps.SubscriptionController,
		deps.AssignmentController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
