// Package testutil contains helpers and factories for storage related tests.
package testutil

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/alfurqan/alfurqan/internal/app/storage"
)

// New creates and returns a database in memory for tests.
// Important: This variant is not suitable for DB code that runs in goroutines.
func New() (*sql.DB, *storage.Storage, *Factory) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		panic(err)
	}
	if err := storage.ApplySchema(db); err != nil {
		panic(err)
	}
	st := storage.New(db)
	return db, st, NewFactory(st)
}

// TruncateTables will purge data from all tables. This is meant for tests.
func TruncateTables(db *sql.DB) {
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = "table"`)
	if err != nil {
		panic(err)
	}
	defer rows.Close()
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			panic(err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		panic(err)
	}
	for _, name := range tables {
		if _, err := db.Exec("DELETE FROM " + name); err != nil {
			panic(err)
		}
	}
}
