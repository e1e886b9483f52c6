package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"proclinic-server/config"
	deliveryHttp "proclinic-server/internal/delivery/http"
	"proclinic-server/internal/delivery/http/handler"
	"proclinic-server/internal/delivery/http/middleware"
	"proclinic-server/internal/infrastructure/cache"
	"proclinic-server/internal/infrastructure/database"
	"proclinic-server/internal/infrastructure/storage"
	"proclinic-server/internal/repository"
	"proclinic-server/internal/usecase"
	"proclinic-server/pkg/jwt"
	"proclinic-server/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize object storage
	blobs, err := storage.NewS3Storage(context.Background(), cfg.S3)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, blobs)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, blobs storage.ObjectStorage) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize session store
	sessions := cache.NewSessionStore(redisClient)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	clinicRepo := repository.NewClinicRepository()
	patientRepo := repository.NewPatientRepository()
	eventRepo := repository.NewEventRepository()
	recordRepo := repository.NewMedicalRecordRepository()
	planRepo := repository.NewPlanRepository()
	docRepo := repository.NewDocumentRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, clinicRepo, jwtService, sessions)
	eventUsecase := usecase.NewEventUsecase(db, log, eventRepo, userRepo, planRepo)
	agendaUsecase := usecase.NewAgendaUsecase(db, log, eventRepo, patientRepo, recordRepo, userRepo, planRepo, clinicRepo)
	recordUsecase := usecase.NewMedicalRecordUsecase(db, log, recordRepo, eventRepo, patientRepo, userRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, eventRepo)
	planUsecase := usecase.NewPlanUsecase(db, log, planRepo)
	clinicUsecase := usecase.NewClinicUsecase(db, log, clinicRepo)
	documentUsecase := usecase.NewDocumentUsecase(db, log, docRepo, blobs)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	agendaHandler := handler.NewAgendaHandler(agendaUsecase, customValidator)
	eventHandler := handler.NewEventHandler(eventUsecase, customValidator)
	recordHandler := handler.NewMedicalRecordHandler(recordUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	planHandler := handler.NewPlanHandler(planUsecase, customValidator)
	clinicHandler := handler.NewClinicHandler(clinicUsecase, customValidator)
	documentHandler := handler.NewDocumentHandler(documentUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		agendaHandler,
		eventHandler,
		recordHandler,
		patientHandler,
		planHandler,
		clinicHandler,
		documentHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
