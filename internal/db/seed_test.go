package db

import (
	"context"
	"testing"
)

func TestSeed(t *testing.T) {
	database := NewTestDB(t)
	ctx := context.Background()

	if err := Seed(ctx, database); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	counts := map[string]int{
		"categories":      len(seedCategories),
		"inventory_items": len(seedItems),
		"requests":        len(seedRequests),
	}
	for table, want := range counts {
		var got int
		if err := database.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&got); err != nil {
			t.Fatalf("counting %s: %v", table, err)
		}
		if got != want {
			t.Errorf("%s: expected %d rows, got %d", table, want, got)
		}
	}

	// Seeded requests reference seeded items.
	var orphans int
	err := database.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM requests WHERE item_id NOT IN (SELECT id FROM inventory_items)`,
	).Scan(&orphans)
	if err != nil {
		t.Fatalf("counting orphans: %v", err)
	}
	if orphans != 0 {
		t.Errorf("expected no orphaned requests, got %d", orphans)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	database := NewTestDB(t)
	ctx := context.Background()

	if err := Seed(ctx, database); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(ctx, database); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var got int
	if err := database.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory_items`).Scan(&got); err != nil {
		t.Fatalf("counting items: %v", err)
	}
	if got != len(seedItems) {
		t.Errorf("expected %d items after reseeding, got %d", len(seedItems), got)
	}
}
