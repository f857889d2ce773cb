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
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/alumnisphere/backend/internal/app/controllers"
	appMigrations "github.com/alumnisphere/backend/internal/app/migrations"
	"github.com/alumnisphere/backend/internal/app/models/dto"
	appRepos "github.com/alumnisphere/backend/internal/app/repositories"
	appRoutes "github.com/alumnisphere/backend/internal/app/routes"
	appServices "github.com/alumnisphere/backend/internal/app/services"
	"github.com/alumnisphere/backend/internal/config"
	"github.com/alumnisphere/backend/internal/db"
	appMiddleware "github.com/alumnisphere/backend/internal/middleware"
	pkgAuth "github.com/alumnisphere/backend/internal/pkg/auth"
	"github.com/alumnisphere/backend/internal/pkg/helpers"
	"github.com/alumnisphere/backend/internal/pkg/logger"
	"github.com/alumnisphere/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	AdminService         *appServices.AdminService
	AlumniService        *appServices.AlumniService
	StudentService       *appServices.StudentService
	JobService           *appServices.JobService
	EventService         *appServices.EventService
	MentorshipService    *appServices.MentorshipService
	AuthController       *appControllers.AuthController
	AdminController      *appControllers.AdminController
	AlumniController     *appControllers.AlumniController
	StudentController    *appControllers.StudentController
	JobController        *appControllers.JobController
	EventController      *appControllers.EventController
	MentorshipController *appControllers.MentorshipController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A .env file is optional; real environments set variables directly
	_ = godotenv.Load()

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
// seeds the default admin account.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.AdminService = appServices.NewAdminService(deps.Repos.UserRepository)
	deps.AlumniService = appServices.NewAlumniService(deps.Repos.AlumniProfileRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentProfileRepository)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository)
	deps.MentorshipService = appServices.NewMentorshipService(deps.Repos.MentorshipRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)
	deps.AlumniController = appControllers.NewAlumniController(deps.AlumniService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.JobController = appControllers.NewJobController(deps.JobService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.MentorshipController = appControllers.NewMentorshipController(deps.MentorshipService)

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

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		lgr.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Something went wrong"))
	}))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.AlumniController,
		deps.StudentController,
		deps.JobController,
		deps.EventController,
		deps.MentorshipController,
		deps.AuthMiddleware,
	)

	return router
}
