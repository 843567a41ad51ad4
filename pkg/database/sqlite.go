package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// NewSQLiteDB opens (and creates if absent) the local SQLite database. The
// DSN pragmas put the database in WAL mode so the timer goroutine and HTTP
// requests can read concurrently.
func NewSQLiteDB(ctx context.Context, path string) (*sql.DB, error) {
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", cleanPath, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database %s: %w", cleanPath, err)
	}

	// A single writer connection avoids SQLITE_BUSY under concurrent saves.
	db.SetMaxOpenConns(1)
	return db, nil
}
