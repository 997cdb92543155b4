package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/phrazzld/sarisari-api/internal/config"
	"github.com/phrazzld/sarisari-api/internal/platform/logger"
)

// CredentialVerifier checks a username and password pair.
type CredentialVerifier interface {
	// Verify returns the token subject for valid credentials, or an error
	// wrapping ErrInvalidCredentials.
	Verify(ctx context.Context, username, password string) (string, error)
}

// StaticCredentialVerifier accepts a single configured account whose
// password is stored as a bcrypt hash.
type StaticCredentialVerifier struct {
	username     string
	passwordHash string
	passwords    PasswordVerifier
}

// Ensure StaticCredentialVerifier implements CredentialVerifier
var _ CredentialVerifier = (*StaticCredentialVerifier)(nil)

// NewStaticCredentialVerifier creates a verifier from the auth settings.
// A nil PasswordVerifier selects bcrypt.
func NewStaticCredentialVerifier(cfg config.AuthConfig, passwords PasswordVerifier) (*StaticCredentialVerifier, error) {
	if cfg.Username == "" {
		return nil, fmt.Errorf("auth username must not be empty")
	}
	if cfg.PasswordHash == "" {
		return nil, fmt.Errorf("auth password hash must not be empty")
	}
	if passwords == nil {
		passwords = NewBcryptVerifier()
	}

	return &StaticCredentialVerifier{
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
		passwords:    passwords,
	}, nil
}

// Verify implements CredentialVerifier. The password hash is compared even
// when the username is wrong so both failures take similar time.
func (v *StaticCredentialVerifier) Verify(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passErr := v.passwords.Compare(v.passwordHash, password)

	if !userOK || passErr != nil {
		log.Debug("credential verification failed", "username_match", userOK)
		return "", ErrInvalidCredentials
	}

	return v.username, nil
}
