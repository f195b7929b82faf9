package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens an anonymous in-memory database. Entity state lives for the
// lifetime of the process only; there is no persistence across restarts.
const MemoryDSN = ":memory:"

// Open opens a SQLite database connection and configures pragmas. The pool is
// capped at one connection: an anonymous in-memory database exists per
// connection, and a single writer matches the cooperative access model of the
// stores.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	return db, nil
}
