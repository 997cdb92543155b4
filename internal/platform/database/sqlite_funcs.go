package database

import (
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// sqliteLowerFunc lowercases text by Unicode rules. SQLite's built-in
// LOWER only folds ASCII letters.
const sqliteLowerFunc = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(sqliteLowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}
