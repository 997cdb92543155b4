package auth

import (
	"time"

	"github.com/phrazzld/sarisari-api/internal/config"
)

// TestJWTSecret is a secret long enough to pass validation, for tests only.
const TestJWTSecret = "test-jwt-secret-that-is-32-chars-long"

// DefaultJWTConfig returns a standard configuration for JWT authentication suitable for testing.
func DefaultJWTConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            TestJWTSecret,
		TokenLifetimeMinutes: 60,
		Username:             "admin",
	}
}

// NewTestJWTService creates a JWT service with an explicit secret, lifetime
// and clock. A nil timeFunc uses time.Now.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     defaultClockSkew,
	}
}
