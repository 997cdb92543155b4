// Package middleware holds the HTTP middleware shared by every route:
// request tracing and bearer-token authentication.
package middleware
