package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
//
// requests.item_id has no foreign key on purpose: it is a loose reference,
// and item_name is a point-in-time snapshot so request history survives item
// deletion. requests.status has no CHECK constraint; the store layer accepts
// any status value and callers enforce transition legality.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id   TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS inventory_items (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    category     TEXT NOT NULL DEFAULT '',
    quantity     INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    min_quantity INTEGER NOT NULL DEFAULT 0 CHECK (min_quantity >= 0),
    unit         TEXT NOT NULL DEFAULT '',
    location     TEXT NOT NULL DEFAULT '',
    last_updated DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS requests (
    id           TEXT PRIMARY KEY,
    item_id      TEXT NOT NULL,
    item_name    TEXT NOT NULL,
    requested_by TEXT NOT NULL,
    quantity     INTEGER NOT NULL CHECK (quantity > 0),
    notes        TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL DEFAULT 'pending',
    created_at   DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
