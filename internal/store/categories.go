package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/erazemk/zaloga/internal/model"
)

// CreateCategory creates a new category with a fresh id. Name uniqueness is
// not enforced; items reference categories by name only.
func CreateCategory(ctx context.Context, db *DB, name string) (*model.Category, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	category := &model.Category{ID: uuid.NewString(), Name: name}
	_, err := db.ExecContext(ctx,
		`INSERT INTO categories (id, name) VALUES (?, ?)`,
		category.ID, category.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return category, nil
}

// GetCategory returns a category by id, or nil if it does not exist.
func GetCategory(ctx context.Context, db *DB, id string) (*model.Category, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}
	return getCategory(ctx, db, id)
}

func getCategory(ctx context.Context, db *DB, id string) (*model.Category, error) {
	category := &model.Category{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE id = ?`, id,
	).Scan(&category.ID, &category.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return category, nil
}

// ListCategories returns all categories in insertion order.
func ListCategories(ctx context.Context, db *DB) ([]model.Category, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// UpdateCategory renames a category. Existing items keep the old category
// string; the reference is by value, not by id.
func UpdateCategory(ctx context.Context, db *DB, id, name string) (*model.Category, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	res, err := db.ExecContext(ctx, `UPDATE categories SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("updating category %s: %w", id, ErrNotFound)
	}

	return &model.Category{ID: id, Name: name}, nil
}

// DeleteCategory removes a category and returns the removed record.
func DeleteCategory(ctx context.Context, db *DB, id string) (*model.Category, error) {
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	category, err := getCategory(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("deleting category %s: %w", id, ErrNotFound)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("deleting category: %w", err)
	}

	return category, nil
}
