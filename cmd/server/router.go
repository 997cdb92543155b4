package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/sarisari-api/internal/api"
	apiMiddleware "github.com/phrazzld/sarisari-api/internal/api/middleware"
	"github.com/phrazzld/sarisari-api/internal/api/shared"
	"github.com/phrazzld/sarisari-api/internal/domain"
	"github.com/phrazzld/sarisari-api/internal/store"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.metrics.Middleware)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	authHandler := api.NewAuthHandler(app.credentials, app.jwtService, app.logger)
	systemHandler := api.NewSystemHandler(app.db, domain.Kinds, app.logger)

	r.Get("/", systemHandler.Index)
	r.Get("/health", systemHandler.Health)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	r.Post("/login", authHandler.Login)

	optional, required := authMiddleware.OptionalAuthenticate, authMiddleware.Authenticate
	mountResource(r, app.stores.Students, app.logger, optional, required)
	mountResource(r, app.stores.Products, app.logger, optional, required)
	mountResource(r, app.stores.Suppliers, app.logger, optional, required)
	mountResource(r, app.stores.IceCreams, app.logger, optional, required)

	return r
}

func mountResource[T any](
	r chi.Router,
	s store.RecordStore[T],
	logger *slog.Logger,
	optional, required func(http.Handler) http.Handler,
) {
	api.NewResourceHandler(s, logger).Routes(r, optional, required)
}
