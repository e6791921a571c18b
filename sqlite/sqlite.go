// Package sqlite stores listings in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// schemaVersion is recorded in PRAGMA user_version. Open refuses databases
// written by a newer schema.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS listings (
	id TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	platform TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	price TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	images TEXT NOT NULL DEFAULT '[]',
	bike TEXT,
	is_bike_listing INTEGER NOT NULL DEFAULT 0,
	content_hash TEXT NOT NULL DEFAULT '',
	captured_at TEXT NOT NULL,
	UNIQUE (url, platform)
);
CREATE INDEX IF NOT EXISTS idx_listings_url ON listings(url);
CREATE INDEX IF NOT EXISTS idx_listings_platform ON listings(platform);
CREATE INDEX IF NOT EXISTS idx_listings_category ON listings(category);
CREATE INDEX IF NOT EXISTS idx_listings_captured_at ON listings(captured_at);
`

// DB is the listing database. Use ":memory:" as the path for a database
// that lives only as long as the DB.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for path. Call Open before use.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open connects to the database, applies connection settings and creates
// or upgrades the schema.
func (db *DB) Open() (err error) {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err != nil {
			conn.Close()
		}
	}()

	// A single connection serializes writers and keeps pragmas in effect.
	conn.SetMaxOpenConns(1)

	settings := []string{"PRAGMA busy_timeout = 5000"}
	if db.path != ":memory:" {
		settings = append(settings, "PRAGMA journal_mode = WAL")
	}
	for _, stmt := range settings {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply %q: %w", stmt, err)
		}
	}

	if err := migrate(conn); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	db.db = conn
	return nil
}

// migrate creates the schema and records its version.
func migrate(conn *sql.DB) error {
	var version int
	if err := conn.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, schemaVersion)
	}
	if _, err := conn.Exec(schema); err != nil {
		return err
	}
	_, err := conn.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
