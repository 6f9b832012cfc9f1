package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/project_budget_app/internal/adapters/exchangerate"
	portsrepo "github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/project_budget_app/internal/core/services"
	"github.com/SscSPs/project_budget_app/internal/handlers"
	"github.com/SscSPs/project_budget_app/internal/middleware"
	"github.com/SscSPs/project_budget_app/internal/platform/config"
	"github.com/SscSPs/project_budget_app/internal/platform/migrations"
	"github.com/SscSPs/project_budget_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/project_budget_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/project_budget_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const shutdownTimeout = 10 * time.Second

// @title Project Budget API
// @version 1.0
// @description Stores per-project budgets and converts them between currencies.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Amounts are written as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("backend", cfg.StorageBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer repos.Close()

	rates := exchangerate.New(exchangerate.Config{
		BaseURL: cfg.CurrencyAPIBaseURL,
		APIKey:  cfg.CurrencyAPIKey,
		Timeout: cfg.CurrencyAPITimeout,
	})
	serviceContainer := services.NewServiceContainer(repos, rates)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			repos.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}

// openRepositories migrates and connects the configured storage backend.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendSQLite:
		// Opening first creates the parent directory of the database file
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		if err := migrations.RunSQLite(cfg.SQLitePath, logger); err != nil {
			db.Close()
			return portsrepo.RepositoryProvider{}, err
		}
		return sqlite.NewRepositoryProvider(db), nil
	case config.StorageBackendPostgres:
		if err := migrations.RunPostgres(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		return pgsql.NewRepositoryProvider(pool), nil
	default:
		return portsrepo.RepositoryProvider{}, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
