package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/erazemk/zaloga/internal/model"
)

const inventoryColumns = `id, name, category, quantity, min_quantity, unit, location, last_updated`

// CreateInventoryItem creates a new inventory item with a fresh id and stamps
// last_updated. The id and timestamp in the input are ignored.
func CreateInventoryItem(ctx context.Context, db *DB, item model.InventoryItem) (*model.InventoryItem, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	item.ID = uuid.NewString()
	item.LastUpdated = time.Now().UTC()

	_, err := db.ExecContext(ctx,
		`INSERT INTO inventory_items (id, name, category, quantity, min_quantity, unit, location, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Category, item.Quantity, item.MinQuantity, item.Unit, item.Location, item.LastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("creating inventory item: %w", err)
	}

	return getInventoryItem(ctx, db, item.ID)
}

// GetInventoryItem returns an item by id, or nil if it does not exist.
func GetInventoryItem(ctx context.Context, db *DB, id string) (*model.InventoryItem, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}
	return getInventoryItem(ctx, db, id)
}

func getInventoryItem(ctx context.Context, db *DB, id string) (*model.InventoryItem, error) {
	item := &model.InventoryItem{}
	err := db.QueryRowContext(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.MinQuantity, &item.Unit, &item.Location, &item.LastUpdated)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting inventory item: %w", err)
	}
	return item, nil
}

// ListInventoryItems returns all inventory items in insertion order.
func ListInventoryItems(ctx context.Context, db *DB) ([]model.InventoryItem, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing inventory items: %w", err)
	}
	return scanInventoryItems(rows)
}

// ListLowStockItems returns items whose quantity is at or below 1.5 times
// their minimum, in insertion order.
func ListLowStockItems(ctx context.Context, db *DB) ([]model.InventoryItem, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items
		 WHERE 2 * quantity <= 3 * min_quantity ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing low stock items: %w", err)
	}
	return scanInventoryItems(rows)
}

// SearchInventoryItems returns items whose name, category or location
// contains the query, case-insensitively, in insertion order.
func SearchInventoryItems(ctx context.Context, db *DB, query string) ([]model.InventoryItem, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := db.QueryContext(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items
		 WHERE lower(name) LIKE ? OR lower(category) LIKE ? OR lower(location) LIKE ?
		 ORDER BY rowid`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("searching inventory items: %w", err)
	}
	return scanInventoryItems(rows)
}

// ListInventoryItemsByCategory returns items with the exact category value, in
// insertion order.
func ListInventoryItemsByCategory(ctx context.Context, db *DB, category string) ([]model.InventoryItem, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items WHERE category = ? ORDER BY rowid`,
		category,
	)
	if err != nil {
		return nil, fmt.Errorf("listing inventory items by category: %w", err)
	}
	return scanInventoryItems(rows)
}

// UpdateInventoryItem merges the non-nil patch fields into the item and
// refreshes last_updated. The id never changes.
func UpdateInventoryItem(ctx context.Context, db *DB, id string, patch model.InventoryItemPatch) (*model.InventoryItem, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	item, err := getInventoryItem(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("updating inventory item %s: %w", id, ErrNotFound)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.MinQuantity != nil {
		item.MinQuantity = *patch.MinQuantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Location != nil {
		item.Location = *patch.Location
	}
	item.LastUpdated = time.Now().UTC()

	_, err = db.ExecContext(ctx,
		`UPDATE inventory_items
		 SET name = ?, category = ?, quantity = ?, min_quantity = ?, unit = ?, location = ?, last_updated = ?
		 WHERE id = ?`,
		item.Name, item.Category, item.Quantity, item.MinQuantity, item.Unit, item.Location, item.LastUpdated, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating inventory item: %w", err)
	}

	return item, nil
}

// DeleteInventoryItem removes an item and returns the removed record.
func DeleteInventoryItem(ctx context.Context, db *DB, id string) (*model.InventoryItem, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	item, err := getInventoryItem(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("deleting inventory item %s: %w", id, ErrNotFound)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("deleting inventory item: %w", err)
	}

	return item, nil
}

func scanInventoryItems(rows *sql.Rows) ([]model.InventoryItem, error) {
	defer rows.Close()

	var items []model.InventoryItem
	for rows.Next() {
		var item model.InventoryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.MinQuantity, &item.Unit, &item.Location, &item.LastUpdated); err != nil {
			return nil, fmt.Errorf("scanning inventory item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
