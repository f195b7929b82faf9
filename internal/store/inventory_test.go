package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erazemk/zaloga/internal/model"
)

func TestCreateAndGetInventoryItem(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	created, err := CreateInventoryItem(ctx, database, model.InventoryItem{
		Name:        "Copy Paper",
		Category:    "Office Supplies",
		Quantity:    42,
		MinQuantity: 20,
		Unit:        "reams",
		Location:    "Supply Room A",
	})
	if err != nil {
		t.Fatalf("CreateInventoryItem: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
	if created.LastUpdated.IsZero() {
		t.Error("expected lastUpdated to be stamped")
	}

	got, err := GetInventoryItem(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("GetInventoryItem: %v", err)
	}
	if got == nil {
		t.Fatal("expected item, got nil")
	}
	if got.Name != "Copy Paper" || got.Category != "Office Supplies" || got.Quantity != 42 ||
		got.MinQuantity != 20 || got.Unit != "reams" || got.Location != "Supply Room A" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if !got.LastUpdated.Equal(created.LastUpdated) {
		t.Errorf("lastUpdated changed on read: %s vs %s", got.LastUpdated, created.LastUpdated)
	}
}

func TestGetMissingInventoryItem(t *testing.T) {
	database := newTestDB(t)

	got, err := GetInventoryItem(context.Background(), database, "no-such-id")
	if err != nil {
		t.Fatalf("GetInventoryItem: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing id, got %+v", got)
	}
}

func TestListInventoryItemsInsertionOrder(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	names := []string{"Zebra Stickers", "Apples", "Markers"}
	for _, name := range names {
		if _, err := CreateInventoryItem(ctx, database, model.InventoryItem{Name: name}); err != nil {
			t.Fatalf("CreateInventoryItem(%q): %v", name, err)
		}
	}

	items, err := ListInventoryItems(ctx, database)
	if err != nil {
		t.Fatalf("ListInventoryItems: %v", err)
	}
	if len(items) != len(names) {
		t.Fatalf("expected %d items, got %d", len(names), len(items))
	}
	for i, name := range names {
		if items[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, items[i].Name)
		}
	}
}

func TestUpdateInventoryItem(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	created, err := CreateInventoryItem(ctx, database, model.InventoryItem{
		Name:        "Glue Sticks",
		Category:    "Art Supplies",
		Quantity:    30,
		MinQuantity: 25,
		Unit:        "units",
		Location:    "Art Storage",
	})
	if err != nil {
		t.Fatalf("CreateInventoryItem: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	quantity := 12
	updated, err := UpdateInventoryItem(ctx, database, created.ID, model.InventoryItemPatch{Quantity: &quantity})
	if err != nil {
		t.Fatalf("UpdateInventoryItem: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("id changed on update: %q vs %q", updated.ID, created.ID)
	}
	if updated.Quantity != 12 {
		t.Errorf("expected quantity 12, got %d", updated.Quantity)
	}
	// Unrelated fields stay untouched.
	if updated.Name != "Glue Sticks" || updated.Category != "Art Supplies" ||
		updated.MinQuantity != 25 || updated.Unit != "units" || updated.Location != "Art Storage" {
		t.Errorf("unrelated fields changed: %+v", updated)
	}
	if !updated.LastUpdated.After(created.LastUpdated) {
		t.Errorf("expected lastUpdated to be refreshed: %s vs %s", updated.LastUpdated, created.LastUpdated)
	}
}

func TestUpdateMissingInventoryItem(t *testing.T) {
	database := newTestDB(t)

	name := "Anything"
	_, err := UpdateInventoryItem(context.Background(), database, "no-such-id", model.InventoryItemPatch{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteInventoryItem(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	created, _ := CreateInventoryItem(ctx, database, model.InventoryItem{Name: "Delete Me", Quantity: 3})

	removed, err := DeleteInventoryItem(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("DeleteInventoryItem: %v", err)
	}
	if removed.ID != created.ID || removed.Name != "Delete Me" {
		t.Errorf("expected the removed record back, got %+v", removed)
	}

	got, err := GetInventoryItem(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("GetInventoryItem after delete: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}

	if _, err := DeleteInventoryItem(ctx, database, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestListLowStockItems(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	// quantity 5 / min 10 → critical, 14/10 → low, 16/10 → good.
	fixtures := []struct {
		name     string
		qty, min int
		lowStock bool
	}{
		{"Critical Item", 5, 10, true},
		{"Low Item", 14, 10, true},
		{"Boundary Item", 15, 10, true},
		{"Good Item", 16, 10, false},
		{"Zero Min Empty", 0, 0, true},
		{"Zero Min Stocked", 1, 0, false},
	}
	for _, f := range fixtures {
		if _, err := CreateInventoryItem(ctx, database, model.InventoryItem{
			Name: f.name, Quantity: f.qty, MinQuantity: f.min,
		}); err != nil {
			t.Fatalf("CreateInventoryItem(%q): %v", f.name, err)
		}
	}

	items, err := ListLowStockItems(ctx, database)
	if err != nil {
		t.Fatalf("ListLowStockItems: %v", err)
	}

	var want []string
	for _, f := range fixtures {
		if f.lowStock {
			want = append(want, f.name)
		}
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d low stock items, got %d", len(want), len(items))
	}
	// Store order is preserved.
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, items[i].Name)
		}
	}
}

func TestSearchInventoryItems(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	CreateInventoryItem(ctx, database, model.InventoryItem{Name: "Copy Paper", Category: "Office Supplies", Location: "Supply Room A"})
	CreateInventoryItem(ctx, database, model.InventoryItem{Name: "Basketballs", Category: "PE Equipment", Location: "Gym Storage"})

	byName, err := SearchInventoryItems(ctx, database, "paper")
	if err != nil {
		t.Fatalf("SearchInventoryItems: %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "Copy Paper" {
		t.Errorf("expected Copy Paper by name, got %+v", byName)
	}

	byLocation, _ := SearchInventoryItems(ctx, database, "GYM")
	if len(byLocation) != 1 || byLocation[0].Name != "Basketballs" {
		t.Errorf("expected Basketballs by location, got %+v", byLocation)
	}

	none, _ := SearchInventoryItems(ctx, database, "unobtainium")
	if len(none) != 0 {
		t.Errorf("expected no matches, got %+v", none)
	}
}

func TestListInventoryItemsByCategory(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	CreateInventoryItem(ctx, database, model.InventoryItem{Name: "Copy Paper", Category: "Office Supplies"})
	CreateInventoryItem(ctx, database, model.InventoryItem{Name: "Markers", Category: "Office Supplies"})
	CreateInventoryItem(ctx, database, model.InventoryItem{Name: "Goggles", Category: "Science Lab"})

	office, err := ListInventoryItemsByCategory(ctx, database, "Office Supplies")
	if err != nil {
		t.Fatalf("ListInventoryItemsByCategory: %v", err)
	}
	if len(office) != 2 {
		t.Errorf("expected 2 office items, got %d", len(office))
	}
}
