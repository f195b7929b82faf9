package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type seedCategory struct {
	name string
}

type seedItem struct {
	name        string
	category    string
	quantity    int
	minQuantity int
	unit        string
	location    string
	updatedAgo  time.Duration
}

type seedRequest struct {
	itemName    string
	requestedBy string
	quantity    int
	notes       string
	status      string
	createdAgo  time.Duration
}

var seedCategories = []seedCategory{
	{"Office Supplies"},
	{"Art Supplies"},
	{"Science Lab"},
	{"PE Equipment"},
	{"Technology"},
	{"Cleaning"},
}

var seedItems = []seedItem{
	{"Copy Paper", "Office Supplies", 42, 20, "reams", "Supply Room A", 26 * time.Hour},
	{"Whiteboard Markers", "Office Supplies", 8, 12, "boxes", "Supply Room A", 3 * time.Hour},
	{"Construction Paper", "Art Supplies", 15, 10, "packs", "Art Storage", 49 * time.Hour},
	{"Glue Sticks", "Art Supplies", 30, 25, "units", "Art Storage", 74 * time.Hour},
	{"Safety Goggles", "Science Lab", 18, 15, "pairs", "Lab Cabinet 2", 8 * time.Hour},
	{"Test Tubes", "Science Lab", 64, 30, "units", "Lab Cabinet 1", 120 * time.Hour},
	{"Basketballs", "PE Equipment", 6, 8, "units", "Gym Storage", 50 * time.Hour},
	{"Graphing Calculators", "Technology", 22, 10, "units", "Tech Office", 200 * time.Hour},
	{"HDMI Cables", "Technology", 4, 6, "units", "Tech Office", 30 * time.Hour},
	{"Disinfectant Wipes", "Cleaning", 12, 12, "canisters", "Janitor Closet", 5 * time.Hour},
}

var seedRequests = []seedRequest{
	{"Whiteboard Markers", "Ms. Petersen", 4, "Running low in room 204", "pending", 2 * time.Hour},
	{"Copy Paper", "Mr. Alvarez", 5, "", "approved", 20 * time.Hour},
	{"Basketballs", "Coach Riley", 2, "Two lost over the weekend", "fulfilled", 72 * time.Hour},
	{"Safety Goggles", "Dr. Okafor", 10, "New chemistry section starting", "pending", 6 * time.Hour},
	{"Glue Sticks", "Ms. Petersen", 12, "Art week supplies", "rejected", 96 * time.Hour},
	{"Graphing Calculators", "Mr. Alvarez", 3, "", "approved", 45 * time.Hour},
	{"HDMI Cables", "IT Desk", 2, "Projector cart replacements", "fulfilled", 130 * time.Hour},
}

// Seed populates an empty database with demonstration records. It is a no-op
// when inventory rows already exist, so restarting a long-lived process with
// a file database would not duplicate data.
func Seed(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory_items`).Scan(&n); err != nil {
		return fmt.Errorf("checking seed state: %w", err)
	}
	if n > 0 {
		return nil
	}

	now := time.Now().UTC()

	for _, c := range seedCategories {
		_, err := db.ExecContext(ctx,
			`INSERT INTO categories (id, name) VALUES (?, ?)`,
			uuid.NewString(), c.name,
		)
		if err != nil {
			return fmt.Errorf("seeding category %q: %w", c.name, err)
		}
	}

	itemIDs := make(map[string]string, len(seedItems))
	for _, it := range seedItems {
		id := uuid.NewString()
		itemIDs[it.name] = id
		_, err := db.ExecContext(ctx,
			`INSERT INTO inventory_items (id, name, category, quantity, min_quantity, unit, location, last_updated)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, it.name, it.category, it.quantity, it.minQuantity, it.unit, it.location, now.Add(-it.updatedAgo),
		)
		if err != nil {
			return fmt.Errorf("seeding item %q: %w", it.name, err)
		}
	}

	for _, r := range seedRequests {
		_, err := db.ExecContext(ctx,
			`INSERT INTO requests (id, item_id, item_name, requested_by, quantity, notes, status, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), itemIDs[r.itemName], r.itemName, r.requestedBy, r.quantity, r.notes, r.status, now.Add(-r.createdAgo),
		)
		if err != nil {
			return fmt.Errorf("seeding request for %q: %w", r.itemName, err)
		}
	}

	return nil
}
