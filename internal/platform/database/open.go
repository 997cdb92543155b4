package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/phrazzld/sarisari-api/internal/config"
	"github.com/phrazzld/sarisari-api/internal/redact"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// pingTimeout bounds the connectivity check made by Open.
const pingTimeout = 5 * time.Second

// Open opens and verifies a connection pool for the configured driver.
// The caller owns the returned pool and must Close it.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, Dialect, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, Dialect{}, err
	}

	dsn, err := normalizeDSN(dialect, cfg.URL)
	if err != nil {
		return nil, Dialect{}, err
	}

	db, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		logger.Error("failed to open database connection",
			slog.String("driver", dialect.Name),
			slog.String("error", redact.Error(err)))
		return nil, Dialect{}, fmt.Errorf("failed to open database connection: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if dialect.Name == SQLite {
		// SQLite serializes writers; one connection avoids SQLITE_BUSY.
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		logger.Error("database ping failed",
			slog.String("driver", dialect.Name),
			slog.String("error", redact.Error(err)))
		return nil, Dialect{}, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		slog.String("driver", dialect.Name),
		slog.String("dsn", redact.String(cfg.URL)),
		slog.Int("max_open_conns", maxOpen),
		slog.Int("max_idle_conns", cfg.MaxIdleConns))

	return db, dialect, nil
}

// normalizeDSN adjusts driver-specific connection settings the stores
// depend on.
func normalizeDSN(d Dialect, dsn string) (string, error) {
	if d.Name != MySQL {
		return dsn, nil
	}

	mcfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid mysql DSN: %s", redact.Error(err))
	}
	// DATE columns scan as time.Time instead of []byte.
	mcfg.ParseTime = true
	return mcfg.FormatDSN(), nil
}
