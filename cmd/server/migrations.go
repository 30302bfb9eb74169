package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/authors-api/internal/config"
	"github.com/phrazzld/authors-api/internal/platform/postgres"
)

// migrationsSourceDir is where -migrate=create writes new migration files.
const migrationsSourceDir = "internal/platform/postgres/migrations"

var migrationCommands = map[string]bool{
	"up":      true,
	"down":    true,
	"reset":   true,
	"status":  true,
	"version": true,
	"create":  true,
}

// handleMigrations executes a single migration command and returns.
// Each run is tagged with a correlation ID so its log lines can be grouped.
func handleMigrations(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	command string,
	name string,
) error {
	log := logger.With(
		slog.String("component", "migrations"),
		slog.String("correlation_id", uuid.NewString()),
		slog.String("command", command))

	if !migrationCommands[command] {
		return fmt.Errorf("unknown migration command %q (expected up, down, reset, status, version or create)", command)
	}

	if command == "create" {
		if name == "" {
			return fmt.Errorf("migration name is required for create (use -name)")
		}
		log.Info("creating migration", slog.String("name", name), slog.String("dir", migrationsSourceDir))
		return postgres.CreateMigration(migrationsSourceDir, name)
	}

	if cfg.Database.Driver != "postgres" {
		return fmt.Errorf("migrations require the postgres driver, got %q", cfg.Database.Driver)
	}

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}()

	log.Info("executing migration command", slog.String("url", maskDatabaseURL(cfg.Database.URL)))
	if err := postgres.RunMigrationCommand(ctx, db, log, command); err != nil {
		return err
	}

	log.Info("migration command completed")
	return nil
}
