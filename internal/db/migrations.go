package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at the
// end.
var migrations = []string{
	// Migration 1: index request timestamps; the notification feed and the
	// requests report both order by created_at.
	`CREATE INDEX IF NOT EXISTS idx_requests_created_at ON requests(created_at)`,
}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
