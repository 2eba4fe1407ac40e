package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yaadjobs_backend/internal/auth"
	"yaadjobs_backend/internal/config"
	"yaadjobs_backend/internal/handlers"
	"yaadjobs_backend/internal/logger"
	"yaadjobs_backend/internal/middleware"
	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/repositories"
	"yaadjobs_backend/internal/routes"
	"yaadjobs_backend/internal/services"
	"yaadjobs_backend/internal/storage"
	"yaadjobs_backend/internal/validator"
	"yaadjobs_backend/internal/workers"
	"yaadjobs_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	// One signal-scoped context drives the workers and the HTTP drain.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workers.NewTokenWorker(repositories.NewRefreshTokenRepository(gormDB)).Start(ctx)
	workers.NewListingWorker(repositories.NewJobRepository(gormDB)).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{Addr: address, Handler: ginRouter}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("Shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}

// Migrate keeps the schema in sync with the model definitions.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.VerificationRequest{},
		&models.JobListing{},
		&models.Application{},
		&models.SavedJob{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	hub := ws.NewHub()
	go hub.Run()
	wsHandler := ws.NewHandler(hub)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, hub)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	// Local storage needs the API to serve the files itself;
	// S3 hands out absolute URLs.
	if cfg.Storage.Type == "local" {
		ginRouter.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage, events services.EventPublisher) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	verificationRepo := repositories.NewVerificationRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	savedJobRepo := repositories.NewSavedJobRepository(gormDB)

	uploadConfig := services.UploadConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, refreshTokenRepo),
		VerificationService: services.NewVerificationService(verificationRepo, userRepo, events),
		JobService:          services.NewJobService(jobRepo, userRepo, applicationRepo),
		ApplicationService:  services.NewApplicationService(applicationRepo, jobRepo, events),
		SavedJobService:     services.NewSavedJobService(savedJobRepo, jobRepo),
		AdminService:        services.NewAdminService(userRepo, jobRepo, applicationRepo),
		UploadService:       services.NewUploadService(storageInstance, uploadConfig),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, sc.AuthService),
		VerificationHandler: handlers.NewVerificationHandler(baseHandler, sc.VerificationService),
		JobHandler:          handlers.NewJobHandler(baseHandler, sc.JobService, sc.ApplicationService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, sc.ApplicationService),
		SavedJobHandler:     handlers.NewSavedJobHandler(baseHandler, sc.SavedJobService),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, sc.AdminService),
		UploadHandler:       handlers.NewUploadHandler(baseHandler, sc.UploadService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", cfg.Admin.Email).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", cfg.Admin.Email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        cfg.Admin.Email,
		PasswordHash: hashed,
		Name:         cfg.Admin.Name,
		Role:         models.UserRoleAdmin,
		Verified:     true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", cfg.Admin.Email)
	return nil
}
