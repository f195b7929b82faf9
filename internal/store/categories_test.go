package store

import (
	"context"
	"errors"
	"testing"
)

func TestCategoryCRUD(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	created, err := CreateCategory(ctx, database, "Art Supplies")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}

	got, err := GetCategory(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("GetCategory: %v", err)
	}
	if got == nil || got.Name != "Art Supplies" {
		t.Errorf("expected Art Supplies, got %+v", got)
	}

	updated, err := UpdateCategory(ctx, database, created.ID, "Arts & Crafts")
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if updated.ID != created.ID || updated.Name != "Arts & Crafts" {
		t.Errorf("unexpected update result: %+v", updated)
	}

	removed, err := DeleteCategory(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if removed.Name != "Arts & Crafts" {
		t.Errorf("expected the removed record back, got %+v", removed)
	}

	if got, _ := GetCategory(ctx, database, created.ID); got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}
}

func TestCategoryNotFound(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	if _, err := UpdateCategory(ctx, database, "no-such-id", "Name"); !errors.Is(err, ErrNotFound) {
		t.Errorf("update: expected ErrNotFound, got %v", err)
	}
	if _, err := DeleteCategory(ctx, database, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestListCategoriesInsertionOrder(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	names := []string{"Technology", "Art Supplies", "Cleaning"}
	for _, name := range names {
		if _, err := CreateCategory(ctx, database, name); err != nil {
			t.Fatalf("CreateCategory(%q): %v", name, err)
		}
	}

	categories, err := ListCategories(ctx, database)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != len(names) {
		t.Fatalf("expected %d categories, got %d", len(names), len(categories))
	}
	for i, name := range names {
		if categories[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, categories[i].Name)
		}
	}
}
