// Package auth issues and verifies the bearer tokens that gate mutating
// API operations, and checks login credentials.
package auth
