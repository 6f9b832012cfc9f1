package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	portsrepo "github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/project_budget_app/internal/platform/config"
	"github.com/SscSPs/project_budget_app/internal/platform/migrations"
	"github.com/SscSPs/project_budget_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/project_budget_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/project_budget_app/internal/seed"
	"github.com/SscSPs/project_budget_app/pkg/database"
)

func main() {
	file := flag.String("file", "data/projects.csv", "CSV export of the project table")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, *file, logger); err != nil {
		logger.Error("Seeding failed", slog.String("file", *file), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, file string, logger *slog.Logger) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	budgets, err := seed.ParseCSV(f)
	if err != nil {
		return err
	}

	var repos portsrepo.RepositoryProvider
	switch cfg.StorageBackend {
	case config.StorageBackendSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		if err := migrations.RunSQLite(cfg.SQLitePath, logger); err != nil {
			db.Close()
			return err
		}
		repos = sqlite.NewRepositoryProvider(db)
	default:
		if err := migrations.RunPostgres(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
		if err != nil {
			return err
		}
		repos = pgsql.NewRepositoryProvider(pool)
	}
	defer repos.Close()

	return seed.Seed(ctx, repos.BudgetRepo, budgets, logger)
}
