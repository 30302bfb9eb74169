package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/authors-api/internal/config"
	"github.com/phrazzld/authors-api/internal/platform/memory"
	"github.com/phrazzld/authors-api/internal/platform/metrics"
	"github.com/phrazzld/authors-api/internal/platform/postgres"
	"github.com/phrazzld/authors-api/internal/service"
	"github.com/phrazzld/authors-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when running with the in-memory store.
	db *sql.DB

	authorStore   store.AuthorStore
	authorService service.AuthorService
	metrics       *metrics.Metrics
}

// newApplication creates the store, service and metrics for cfg. With the
// postgres driver it opens the database and applies pending migrations
// when auto-migrate is enabled.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	switch cfg.Database.Driver {
	case "memory":
		app.authorStore = memory.NewAuthorStore()
		logger.Warn("using in-memory author store; data is lost on shutdown")

	case "postgres":
		db, err := setupAppDatabase(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		app.db = db

		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, db, logger); err != nil {
				app.cleanup()
				return nil, fmt.Errorf("failed to apply migrations: %w", err)
			}
		}

		app.authorStore = postgres.NewPostgresAuthorStore(db, logger)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	authorService, err := service.NewAuthorService(app.authorStore, app.db, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create author service: %w", err)
	}
	app.authorService = authorService

	app.metrics.RegisterAuthorCount(authorService.Count, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// server fails. Resources are released before it returns.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
		app.db = nil
	}

	app.logger.Info("application shutdown completed")
}
