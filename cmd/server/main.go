package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maintenance-portal-backend/internal/api/routes"
	"maintenance-portal-backend/internal/config"
	"maintenance-portal-backend/internal/database"
	"maintenance-portal-backend/internal/logger"
	"maintenance-portal-backend/internal/notification"
	"maintenance-portal-backend/internal/repository"
	"maintenance-portal-backend/internal/storage"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "maintenance-portal-backend/docs" // This is needed for swag
)

//	@title			Maintenance Portal Backend API
//	@version		1.0
//	@description	Backend API for facility maintenance management: equipment catalog, equipment groups, documents, maintenance scheduling, interventions, staff certifications and notifications.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)
	appLog := logger.New()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize file storage
	files, err := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadPublicURL, int(cfg.MaxUploadSizeMB))
	if err != nil {
		logrus.Fatal("Failed to initialize file storage:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, files, appLog)

	// Start the maintenance reminder worker. Without VAPID keys the
	// worker still creates in-app notifications; pushes just have no
	// subscribers to reach.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startReminderWorker(ctx, cfg, db, appLog)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLog.WithField("port", cfg.Port).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.WithField("error", err).Error("forced shutdown")
	}
}

func startReminderWorker(ctx context.Context, cfg *config.Config, db *gorm.DB, log *logger.Logger) {
	var options *webpush.Options
	if cfg.VAPIDPublicKey != "" && cfg.VAPIDPrivateKey != "" {
		options = &webpush.Options{
			Subscriber:      cfg.VAPIDSubscriber,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             3600,
		}
	} else {
		log.Warn("VAPID keys not configured, web push delivery disabled")
	}

	worker := notification.NewWorker(
		time.Duration(cfg.ReminderIntervalMinutes)*time.Minute,
		cfg.ReminderWorkers,
		repository.NewMaintenanceTaskRepository(db),
		repository.NewNotificationRepository(db),
		repository.NewPushSubscriptionRepository(db),
		options,
		log,
	)
	worker.Start(ctx)
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
