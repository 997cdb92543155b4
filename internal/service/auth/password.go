package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks a login password against the configured
// auth.password_hash.
type PasswordVerifier interface {
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// BcryptVerifier compares against hashes produced by cmd/hash-generator.
type BcryptVerifier struct{}

// NewBcryptVerifier returns the default PasswordVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare implements PasswordVerifier. A malformed hash is reported as a
// mismatch by bcrypt, so a misconfigured account never logs in.
func (v *BcryptVerifier) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
