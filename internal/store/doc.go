// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the request handlers, so handlers can be tested against in-memory
// fakes while production code runs against a SQL database.
package store
