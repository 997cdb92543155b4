// Package ciutil detects CI environments and resolves the database URLs
// used by the gated integration tests.
//
// Integration tests are skipped locally when no URL is configured and fail
// in CI, where a missing database is a pipeline misconfiguration.
package ciutil
