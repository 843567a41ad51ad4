package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/freshbites/journalsim/internal/content"
	portsrepo "github.com/freshbites/journalsim/internal/core/ports/repositories"
	"github.com/freshbites/journalsim/internal/core/services"
	"github.com/freshbites/journalsim/internal/handlers"
	"github.com/freshbites/journalsim/internal/middleware"
	"github.com/freshbites/journalsim/internal/repositories/database/sqlite"
	"github.com/freshbites/journalsim/pkg/config"
	"github.com/freshbites/journalsim/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("Database opened", slog.String("path", cfg.SQLitePath))

	sessionRepo, err := sqlite.NewSessionRepository(ctx, db)
	if err != nil {
		logger.Error("Failed to initialize session repository", slog.String("error", err.Error()))
		os.Exit(1)
	}
	repos := portsrepo.RepositoryProvider{Session: sessionRepo}

	serviceContainer := services.NewServiceContainer(cfg, repos, content.Pools, content.NewReceiptRenderer())

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AddAllowHeaders("Origin", "Content-Type")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
