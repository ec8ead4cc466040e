package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/arscholarpoint/scholarpoint-server/internal/config"
	"github.com/arscholarpoint/scholarpoint-server/internal/database"
	"github.com/arscholarpoint/scholarpoint-server/internal/handlers"
	"github.com/arscholarpoint/scholarpoint-server/internal/logging"
	"github.com/arscholarpoint/scholarpoint-server/internal/middleware"
	"github.com/arscholarpoint/scholarpoint-server/internal/routes"
	"github.com/arscholarpoint/scholarpoint-server/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_ACCESS_TOKEN_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}
	if cfg.PaymentSecretKey == "" {
		slog.Error("PAYMENT_SECRET_KEY environment variable is required")
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Persist ERROR+ logs (async batch) alongside stdout JSON
	storeLogHandler := logging.NewStoreHandler(db)
	slog.SetDefault(slog.New(logging.NewTeeHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		storeLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cleanupDone)

	// Services
	sessionService := services.NewSessionService(cfg)
	userService := services.NewUserService(db, cfg)
	scholarshipService := services.NewScholarshipService(db)
	categoryService := services.NewCategoryService(db)
	applicationService := services.NewApplicationService(db, scholarshipService)
	reviewService := services.NewReviewService(db, scholarshipService)
	gateway := services.NewPaymentGateway(cfg.PaymentAPIURL, cfg.PaymentSecretKey)
	paymentService := services.NewPaymentService(db, gateway, cfg)
	subscriberService := services.NewSubscriberService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(sessionService)
	userHandler := handlers.NewUserHandler(userService)
	scholarshipHandler := handlers.NewScholarshipHandler(scholarshipService, categoryService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, userService)
	reviewHandler := handlers.NewReviewHandler(reviewService, userService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	subscriberHandler := handlers.NewSubscriberHandler(subscriberService)
	healthHandler := handlers.NewHealthHandler(db)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))

	// Routes (the guard policy table)
	routes.Setup(app, cfg, userService,
		authHandler, userHandler, scholarshipHandler, applicationHandler,
		reviewHandler, paymentHandler, subscriberHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	storeLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "route", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
