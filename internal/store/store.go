// Package store holds all entity state behind CRUD-style operations. Every
// operation returns copies, never references shared with other callers, and
// starts with an optional simulated latency so consumers can exercise their
// loading states.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned by update and delete operations when no record
// matches the given id. Read operations return (nil, nil) instead.
var ErrNotFound = errors.New("record not found")

// DB wraps the database handle with an optional simulated latency, applied
// once at the start of every store operation. Zero disables it.
type DB struct {
	*sql.DB
	Delay time.Duration
}

// wait sleeps for the configured delay, honouring context cancellation.
func (d *DB) wait(ctx context.Context) error {
	if d.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(d.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
