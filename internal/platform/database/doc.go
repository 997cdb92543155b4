// Package database provides the SQL implementations of the record stores
// defined in the internal/store package. A single generic table store serves
// every entity kind; the Dialect type isolates what differs between
// PostgreSQL, SQLite and MySQL: driver name, placeholder syntax, how the new
// id is returned and how driver errors are classified.
package database
