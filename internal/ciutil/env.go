package ciutil

import (
	"log/slog"
	"os"

	"github.com/phrazzld/sarisari-api/internal/redact"
)

// Environment variables read by this package.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvTravisCI      = "TRAVIS"
	EnvCircleCI      = "CIRCLECI"

	// EnvTestPostgresURL is the preferred name for the Postgres test DSN.
	EnvTestPostgresURL = "SARISARI_TEST_DATABASE_URL"
	// EnvDatabaseURL is accepted as a fallback for EnvTestPostgresURL.
	EnvDatabaseURL = "DATABASE_URL"
	// EnvTestMySQLURL is the MySQL test DSN in go-sql-driver format.
	EnvTestMySQLURL = "SARISARI_TEST_MYSQL_URL"
)

// IsCI returns true if the current environment is a CI environment.
func IsCI() bool {
	for _, name := range []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvTravisCI, EnvCircleCI} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// GetEnvWithFallbacks returns the value of the first non-empty environment
// variable in envVars, or defaultValue when none is set. Using a fallback
// name logs a warning with the value redacted.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		val := os.Getenv(envVar)
		if val == "" {
			continue
		}
		if i > 0 && logger != nil {
			logger.Warn("using fallback environment variable",
				"used_var", envVar,
				"preferred_var", envVars[0],
				"value", redact.String(val),
			)
		}
		return val
	}
	return defaultValue
}
