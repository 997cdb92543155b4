package mocks

import (
	"context"

	"github.com/phrazzld/sarisari-api/internal/service/auth"
)

// MockCredentialVerifier implements auth.CredentialVerifier for testing.
type MockCredentialVerifier struct {
	VerifyFn func(ctx context.Context, username, password string) (string, error)

	// Username and Password are accepted when VerifyFn is nil.
	Username string
	Password string
}

var _ auth.CredentialVerifier = (*MockCredentialVerifier)(nil)

// Verify implements auth.CredentialVerifier
func (m *MockCredentialVerifier) Verify(ctx context.Context, username, password string) (string, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, username, password)
	}
	if username == m.Username && password == m.Password {
		return username, nil
	}
	return "", auth.ErrInvalidCredentials
}
