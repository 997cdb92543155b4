// Package migrations embeds the SQL schema migrations for every supported
// database dialect. Each dialect lives in its own directory and is applied
// with goose.
package migrations

import "embed"

// FS holds postgres/, sqlite/ and mysql/ migration directories.
//
//go:embed postgres/*.sql sqlite/*.sql mysql/*.sql
var FS embed.FS
