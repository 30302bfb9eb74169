package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/authors-api/internal/api"
	apiMiddleware "github.com/phrazzld/authors-api/internal/api/middleware"
	"github.com/phrazzld/authors-api/internal/api/shared"
)

// healthCheckTimeout bounds the database ping behind /health.
const healthCheckTimeout = 2 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.Metrics(app.metrics))
	if rps := app.config.Server.RateLimitRPS; rps > 0 {
		r.Use(apiMiddleware.NewRateLimiter(rps, app.config.Server.RateLimitBurst).Middleware)
	}

	authorHandler := api.NewAuthorHandler(app.authorService, app.logger)
	requireJSON := middleware.AllowContentType("application/json")

	r.Route("/authors", func(r chi.Router) {
		r.Get("/", authorHandler.ListAuthors)
		r.With(requireJSON).Post("/", authorHandler.CreateAuthor)

		r.Route("/{"+api.AuthorIDParam+"}", func(r chi.Router) {
			r.Get("/", authorHandler.GetAuthor)
			r.With(requireJSON).Put("/", authorHandler.UpdateAuthor)
			r.Delete("/", authorHandler.DeleteAuthor)
		})
	})

	r.Get("/health", app.handleHealth)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}

// handleHealth reports whether the server can reach its store.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	if app.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := app.db.PingContext(ctx); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
			return
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
