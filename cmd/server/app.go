package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/sarisari-api/internal/config"
	"github.com/phrazzld/sarisari-api/internal/platform/database"
	"github.com/phrazzld/sarisari-api/internal/platform/metrics"
	"github.com/phrazzld/sarisari-api/internal/service/auth"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	db      *sql.DB
	dialect database.Dialect
	stores  database.Stores
	metrics *metrics.Metrics

	jwtService  auth.JWTService
	credentials auth.CredentialVerifier
}

// newApplication creates a new application instance with all dependencies initialized.
// The database pool must already be open; the application takes ownership of it.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	dialect database.Dialect,
) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		dialect: dialect,
		metrics: metrics.New(),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.credentials, err = auth.NewStaticCredentialVerifier(cfg.Auth, auth.NewBcryptVerifier())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential verifier: %w", err)
	}

	stores := database.NewStores(db, dialect, logger)
	app.stores = database.Stores{
		Students:  metrics.InstrumentStore(stores.Students, app.metrics),
		Products:  metrics.InstrumentStore(stores.Products, app.metrics),
		Suppliers: metrics.InstrumentStore(stores.Suppliers, app.metrics),
		IceCreams: metrics.InstrumentStore(stores.IceCreams, app.metrics),
	}
	logger.Info("record stores initialized", "dialect", dialect.Name)

	return app, nil
}

// cleanup releases the resources owned by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
			return
		}
		app.logger.Info("database connection closed")
	}
}
