// Package storage implements the persistent storage of the app with SQLite.
// No direct DB access is allowed outside this package.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when an object does not exist in the database.
var ErrNotFound = errors.New("object not found")

var schema = `
	CREATE TABLE IF NOT EXISTS bookmarks (
		id TEXT PRIMARY KEY NOT NULL,
		surah_id INTEGER NOT NULL,
		ayah_id INTEGER NOT NULL,
		surah_name TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS dictionary (
		key TEXT PRIMARY KEY NOT NULL,
		value BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cache (
		key TEXT PRIMARY KEY NOT NULL,
		value BLOB NOT NULL,
		expires_at DATETIME
	);
	CREATE INDEX IF NOT EXISTS cache_expires_at_idx ON cache (expires_at ASC);
`

// Storage provides access to all objects in local storage.
type Storage struct {
	db *sql.DB
}

// New returns a new storage object backed by the given database.
func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// ConnectDB initializes the database and returns it.
func ConnectDB(dataSourceName string) (*sql.DB, error) {
	v := url.Values{}
	v.Add("_fk", "on")
	v.Add("_journal_mode", "WAL")
	v.Add("_synchronous", "normal")
	dsn := fmt.Sprintf("%s?%s", dataSourceName, v.Encode())
	slog.Debug("Connecting to sqlite", "dsn", dsn)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if err := ApplySchema(db); err != nil {
		return nil, err
	}
	slog.Info("Connected to database")
	return db, nil
}

// ApplySchema creates all tables when they do not yet exist.
func ApplySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
