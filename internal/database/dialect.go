package database

import (
	"database/sql"
	"regexp"
	"strconv"
	"time"
)

// Dialect hides the differences between the supported SQL backends
type Dialect interface {
	// DriverName is the database/sql driver to open
	DriverName() string

	// DSN builds the connection string from config
	DSN(config DialectConfig) string

	// RewriteQuery turns the "?" placeholders used by repositories into
	// the backend's own syntax
	RewriteQuery(query string) string

	// SupportsLastInsertId reports whether inserts return their ID through
	// sql.Result; otherwise a RETURNING clause is used
	SupportsLastInsertId() bool

	// ConfigureConnection tunes the pool and session after opening
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir names the folder under the migrations path
	MigrationsSubdir() string

	// CreateMigrationsTableQuery creates the table recording applied migrations
	CreateMigrationsTableQuery() string
}

// DialectConfig holds configuration for database connection
type DialectConfig struct {
	// Path is the SQLite file
	Path string

	// URL is the PostgreSQL or MySQL connection string
	URL string
}

// placeholderRegexp matches a bare placeholder or a whole quoted string or
// identifier, so question marks inside literals are left alone
var placeholderRegexp = regexp.MustCompile(`'(?:[^']|'')*'|"(?:[^"]|"")*"|\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, etc.
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(match string) string {
		if match != "?" {
			return match
		}
		counter++
		return "$" + strconv.Itoa(counter)
	})
}

// configurePool applies the pool limits shared by the server databases.
// Bulk word imports hold one connection for the whole transaction while
// lookups run beside it.
func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)
}
