package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/repository/content"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/validation"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact form delivery and content catalog for the portfolio site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel, cfg.IsProduction())
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "env", cfg.AppEnv, "email_provider", cfg.EmailProvider)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Redis (optional, rate limiting only)
	if err := redis.Initialize(context.Background(), redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil && !errors.Is(err, redis.ErrNotConfigured) {
		logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
	}
	defer redis.Close()

	// 4. Setup Repositories
	contentRepo, err := content.NewContentRepository()
	if err != nil {
		logger.Log.Error("Failed to load content catalog", "error", err)
		os.Exit(1)
	}

	// 5. Setup Email Service. The provider client is built on first use so
	// the process boots without secrets.
	sender := email.NewLazySender(email.NewSenderFactory(cfg))
	dispatcher := email.NewDispatcher(sender, email.DispatcherConfig{
		From:                 cfg.ContactFromEmail,
		NotificationTemplate: cfg.NotificationTemplate,
		ConfirmationTemplate: cfg.ConfirmationTemplate,
	})
	if !email.CredentialsPresent(cfg) {
		logger.Log.Warn("Email provider not fully configured - contact form will be unavailable", "provider", cfg.EmailProvider)
	}

	// 6. Setup UseCases
	validate := validation.New()
	contactUC := usecase.NewContactUsecase(validation.NewContactValidator(validate), dispatcher, func() string {
		return cfg.ContactEmailTo
	})
	contentUC := usecase.NewContentUsecase(contentRepo)
	healthUC := usecase.NewHealthUsecase(cfg, redis.IsAvailable)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ContentUC: contentUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
