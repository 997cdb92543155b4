package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pressly/goose/v3"
)

// Supported dialect names, as used in database.driver.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
	MySQL    = "mysql"
)

// Dialect captures the per-database differences the stores care about.
type Dialect struct {
	// Name is one of Postgres, SQLite or MySQL.
	Name string
	// DriverName is the database/sql driver registered for the dialect.
	DriverName string
	// Goose is the migration dialect.
	Goose goose.Dialect
	// ReturningID is true when INSERT ... RETURNING id yields the new key.
	// Otherwise sql.Result.LastInsertId is used.
	ReturningID bool
	// Lower is the SQL function that lowercases search columns. It must
	// fold case the same way as strings.ToLower applied to the pattern.
	Lower string
	// numbered placeholders ($1, $2) instead of ?
	numbered bool
}

// DialectFor returns the dialect registered under name.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case Postgres:
		return Dialect{
			Name:        Postgres,
			DriverName:  "pgx",
			Goose:       goose.DialectPostgres,
			ReturningID: true,
			Lower:       "LOWER",
			numbered:    true,
		}, nil
	case SQLite:
		return Dialect{
			Name:       SQLite,
			DriverName: "sqlite",
			Goose:      goose.DialectSQLite3,
			Lower:      sqliteLowerFunc,
		}, nil
	case MySQL:
		return Dialect{
			Name:       MySQL,
			DriverName: "mysql",
			Goose:      goose.DialectMySQL,
			Lower:      "LOWER",
		}, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
	}
}

// Placeholder returns the bind marker for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	if d.numbered {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}
