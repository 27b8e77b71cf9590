package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/cache"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/config"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/database"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/logging"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/routes"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("")
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Structured logging (JSON to stdout)
	stdoutHandler := logging.Setup(cfg.AppEnv)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
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

	// ERROR+ records are also batched into system_logs
	dbLogHandler := logging.NewDBHandler(db, 5*time.Second)
	slog.SetDefault(slog.New(logging.NewMultiHandler(stdoutHandler, dbLogHandler)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	// List cache
	var listCache cache.Cache = cache.Noop{}
	var redisCache *cache.Redis
	if cfg.RedisAddr != "" {
		redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			slog.Warn("redis unavailable, list cache disabled", "addr", cfg.RedisAddr, "error", err)
			redisCache.Close()
			redisCache = nil
		} else {
			listCache = redisCache
			slog.Info("redis list cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL.String())
		}
		cancel()
	}

	// Services
	userService := services.NewUserService(db, cfg.BcryptCost)
	adminService := services.NewAdminService(db, cfg)
	propertyService := services.NewPropertyService(db, listCache)
	checklistService := services.NewChecklistService(db, listCache)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	routes.Setup(app, cfg, routes.Handlers{
		User:      handlers.NewUserHandler(userService),
		Admin:     handlers.NewAdminHandler(adminService),
		Property:  handlers.NewPropertyHandler(propertyService),
		Checklist: handlers.NewChecklistHandler(checklistService),
		Health:    handlers.NewHealthHandler(db),
	}, middleware.NewMetrics())

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

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	dbLogHandler.Stop()
	slog.SetDefault(slog.New(stdoutHandler))

	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}
	database.Close(db)

	slog.Info("server stopped")
}
