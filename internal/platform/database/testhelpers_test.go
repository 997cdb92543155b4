package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/phrazzld/sarisari-api/internal/config"
	"github.com/phrazzld/sarisari-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// openSQLite opens a migrated SQLite database in a temporary directory.
func openSQLite(t *testing.T) (*sql.DB, Dialect) {
	t.Helper()

	log, _ := logger.NewTestLogger()
	ctx := context.Background()

	db, dialect, err := Open(ctx, config.DatabaseConfig{
		Driver:                 SQLite,
		URL:                    filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns:           4,
		MaxIdleConns:           1,
		ConnMaxLifetimeMinutes: 5,
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrator, err := NewMigrator(db, dialect, log)
	require.NoError(t, err)
	require.NoError(t, migrator.Up(ctx))

	return db, dialect
}
