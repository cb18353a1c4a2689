package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	appControllers "github.com/nandan/studenthub/internal/app/controllers"
	appMigrations "github.com/nandan/studenthub/internal/app/migrations"
	appRepos "github.com/nandan/studenthub/internal/app/repositories"
	appRoutes "github.com/nandan/studenthub/internal/app/routes"
	appServices "github.com/nandan/studenthub/internal/app/services"
	"github.com/nandan/studenthub/internal/config"
	"github.com/nandan/studenthub/internal/db"
	appMiddleware "github.com/nandan/studenthub/internal/middleware"
	pkgAuth "github.com/nandan/studenthub/internal/pkg/auth"
	"github.com/nandan/studenthub/internal/pkg/logger"
	"github.com/nandan/studenthub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                 *appRepos.Repositories
	Services              *appServices.Services
	JWTService            *pkgAuth.JWTService
	AuthController        *appControllers.AuthController
	StudentController     *appControllers.StudentController
	CertificateController *appControllers.CertificateController
	ProjectController     *appControllers.ProjectController
	MarksController       *appControllers.MarksController
	CollegeController     *appControllers.CollegeController
	GroupController       *appControllers.GroupController
	MessageController     *appControllers.MessageController
	AuthMiddleware        *appMiddleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	logger.Info().Msg("Database connection successfully established.")

	logger.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		logger.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		logger.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations successfully applied.")

	// Seed failures are logged and swallowed; an empty instance still starts.
	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService, deps.Services.TeacherService)
	deps.CertificateController = appControllers.NewCertificateController(deps.Services.CertificateService)
	deps.ProjectController = appControllers.NewProjectController(deps.Services.ProjectService)
	deps.MarksController = appControllers.NewMarksController(deps.Services.MarksService, deps.Services.StudentService)
	deps.CollegeController = appControllers.NewCollegeController(deps.Services.CollegeService)
	deps.GroupController = appControllers.NewGroupController(deps.Services.GroupService)
	deps.MessageController = appControllers.NewMessageController(deps.Services.MessageService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		logger.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.CertificateController,
		deps.ProjectController,
		deps.MarksController,
		deps.CollegeController,
		deps.GroupController,
		deps.MessageController,
		deps.AuthMiddleware,
	)

	return router
}
