package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/alumconnect/backend/docs" // generated swagger docs
	appControllers "github.com/alumconnect/backend/internal/app/controllers"
	appMigrations "github.com/alumconnect/backend/internal/app/migrations"
	appRepos "github.com/alumconnect/backend/internal/app/repositories"
	appRoutes "github.com/alumconnect/backend/internal/app/routes"
	appServices "github.com/alumconnect/backend/internal/app/services"
	"github.com/alumconnect/backend/internal/config"
	"github.com/alumconnect/backend/internal/db"
	appMiddleware "github.com/alumconnect/backend/internal/middleware"
	pkgAuth "github.com/alumconnect/backend/internal/pkg/auth"
	"github.com/alumconnect/backend/internal/pkg/filestorage"
	"github.com/alumconnect/backend/internal/pkg/helpers"
	"github.com/alumconnect/backend/internal/pkg/logger"
	"github.com/alumconnect/backend/internal/pkg/websocket"
	"github.com/alumconnect/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	JWTService  *pkgAuth.JWTService
	FileStorage *filestorage.LocalStorage
	Hub         *websocket.Hub

	AuthService        *appServices.AuthService
	UserService        *appServices.UserService
	ProjectService     *appServices.ProjectService
	ApplicationService *appServices.ApplicationService
	MentorshipService  *appServices.MentorshipService
	BlogService        *appServices.BlogService
	ChatService        *appServices.ChatService

	AuthController        *appControllers.AuthController
	UserController        *appControllers.UserController
	ProjectController     *appControllers.ProjectController
	ApplicationController *appControllers.ApplicationController
	MentorshipController  *appControllers.MentorshipController
	BlogController        *appControllers.BlogController
	ChatController        *appControllers.ChatController
	UploadController      *appControllers.UploadController
	WSHandler             *websocket.Handler

	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
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
// seeds default data.
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
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Hub = websocket.NewHub(lgr)
	go deps.Hub.Run()

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)
	deps.ProjectService = appServices.NewProjectService(
		deps.Repos.ProjectRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.ProjectRepository,
		lgr,
	)
	deps.MentorshipService = appServices.NewMentorshipService(
		deps.Repos.MentorshipRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.BlogService = appServices.NewBlogService(deps.Repos.BlogRepository, lgr)
	deps.ChatService = appServices.NewChatService(deps.Repos.MessageRepository, deps.Repos.UserRepository, lgr)

	// persist messages arriving over websockets
	eventHandler := websocket.NewEventHandler(deps.ChatService, deps.Hub, lgr)
	eventHandler.Start()

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, lgr)
	deps.MentorshipController = appControllers.NewMentorshipController(deps.MentorshipService, lgr)
	deps.BlogController = appControllers.NewBlogController(deps.BlogService, lgr)
	deps.ChatController = appControllers.NewChatController(deps.ChatService, deps.Hub, lgr)
	deps.UploadController = appControllers.NewUploadController(
		deps.FileStorage,
		deps.Repos.UserRepository,
		deps.ProjectService,
		deps.BlogService,
		lgr,
	)
	deps.WSHandler = websocket.NewHandler(deps.Hub, deps.ChatService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ProjectController,
		deps.ApplicationController,
		deps.MentorshipController,
		deps.BlogController,
		deps.ChatController,
		deps.UploadController,
		deps.WSHandler,
		deps.AuthMiddleware,
	)

	return router
}
