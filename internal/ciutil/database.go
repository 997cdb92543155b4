package ciutil

import (
	"log/slog"
	"testing"
)

// PostgresTestURL returns the Postgres DSN for integration tests, or "" if
// none is configured.
func PostgresTestURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestPostgresURL, EnvDatabaseURL}, "", logger)
}

// MySQLTestURL returns the MySQL DSN for integration tests, or "" if none is
// configured.
func MySQLTestURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestMySQLURL}, "", logger)
}

// RequireURL skips the test when url is empty, or fails it when running in
// CI. envVar names the variable in the message.
func RequireURL(t testing.TB, url, envVar string) string {
	t.Helper()
	if url != "" {
		return url
	}
	if IsCI() {
		t.Fatalf("%s must be set in CI", envVar)
	}
	t.Skipf("%s not set", envVar)
	return ""
}
