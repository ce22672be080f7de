package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "storefront-backend/internal/api/http"
	"storefront-backend/internal/config"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/mailer"
	"storefront-backend/internal/repository/postgres"
	"storefront-backend/internal/security"
	"storefront-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Storefront Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Mail Queue
	sender := mailer.NewSendGridSender(cfg.Mailer.SendGridAPIKey, cfg.Mailer.FromEmail, cfg.Mailer.FromName)
	mailQueue := mailer.NewQueue(sender, store.NotificationRepository, cfg.Mailer.QueueWorkers, cfg.Mailer.QueueSize, cfg.Mailer.MaxRetries)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mailQueue.Start(ctx)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, store.ProfileRepository, tokenManager)
	catalogSvc := service.NewCatalogService(store.ProductRepository)
	profileSvc := service.NewProfileService(store.ProfileRepository)
	orderSvc := service.NewOrderService(
		store.OrderRepository,
		store.ProductRepository,
		store.ProfileRepository,
		store.NotificationRepository,
		mailQueue,
	)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.ProfileRepository, cfg.Rental.PeriodDays)
	commentSvc := service.NewCommentService(store.CommentRepository, store.ProductRepository)

	// Initialize Handlers
	handlers := httpapi.Handlers{
		Auth:    httpapi.NewAuthHandler(authSvc),
		Product: httpapi.NewProductHandler(catalogSvc),
		Profile: httpapi.NewProfileHandler(profileSvc),
		Order:   httpapi.NewOrderHandler(orderSvc),
		Rental:  httpapi.NewRentalHandler(rentalSvc),
		Comment: httpapi.NewCommentHandler(commentSvc),
	}

	router := httpapi.NewRouter(handlers, authMiddleware)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
