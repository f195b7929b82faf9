package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/erazemk/zaloga/internal/model"
)

const requestColumns = `id, item_id, item_name, requested_by, quantity, notes, status, created_at`

// CreateRequest stores a new request. The status always starts as pending and
// created_at is stamped at creation time; neither is taken from the input.
func CreateRequest(ctx context.Context, db *DB, req model.Request) (*model.Request, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	req.ID = uuid.NewString()
	req.Status = model.RequestStatusPending
	req.CreatedAt = time.Now().UTC()

	_, err := db.ExecContext(ctx,
		`INSERT INTO requests (id, item_id, item_name, requested_by, quantity, notes, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.ItemID, req.ItemName, req.RequestedBy, req.Quantity, req.Notes, req.Status, req.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return getRequest(ctx, db, req.ID)
}

// GetRequest returns a request by id, or nil if it does not exist.
func GetRequest(ctx context.Context, db *DB, id string) (*model.Request, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}
	return getRequest(ctx, db, id)
}

func getRequest(ctx context.Context, db *DB, id string) (*model.Request, error) {
	req := &model.Request{}
	err := db.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE id = ?`, id,
	).Scan(&req.ID, &req.ItemID, &req.ItemName, &req.RequestedBy, &req.Quantity, &req.Notes, &req.Status, &req.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting request: %w", err)
	}
	return req, nil
}

// ListRequests returns all requests in insertion order.
func ListRequests(ctx context.Context, db *DB) ([]model.Request, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT `+requestColumns+` FROM requests ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	return scanRequests(rows)
}

// ListPendingRequests returns requests still awaiting a decision, in
// insertion order.
func ListPendingRequests(ctx context.Context, db *DB) ([]model.Request, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE status = ? ORDER BY rowid`,
		model.RequestStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("listing pending requests: %w", err)
	}
	return scanRequests(rows)
}

// UpdateRequestStatus overwrites a request's status unconditionally; it does
// not check transition legality. Callers that care use model.CanTransition
// before calling.
func UpdateRequestStatus(ctx context.Context, db *DB, id, status string) (*model.Request, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	res, err := db.ExecContext(ctx, `UPDATE requests SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return nil, fmt.Errorf("updating request status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating request status: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("updating request %s: %w", id, ErrNotFound)
	}

	return getRequest(ctx, db, id)
}

// DeleteRequest removes a request and returns the removed record.
func DeleteRequest(ctx context.Context, db *DB, id string) (*model.Request, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	req, err := getRequest(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("deleting request %s: %w", id, ErrNotFound)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM requests WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("deleting request: %w", err)
	}

	return req, nil
}

func scanRequests(rows *sql.Rows) ([]model.Request, error) {
	defer rows.Close()

	var requests []model.Request
	for rows.Next() {
		var req model.Request
		if err := rows.Scan(&req.ID, &req.ItemID, &req.ItemName, &req.RequestedBy, &req.Quantity, &req.Notes, &req.Status, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
