// Package domain contains the core business entities of the store API: the
// four entity kinds, the declarative field table that drives validation and
// statement building, and the record types returned to clients. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
