package model

import "time"

// InventoryItem is a stocked school supply. Category is a loose reference to
// Category.Name, not an enforced foreign key, so renaming or deleting a
// category leaves items untouched.
type InventoryItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"minQuantity"`
	Unit        string    `json:"unit"`
	Location    string    `json:"location"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// InventoryItemPatch is a partial update. Nil fields are left untouched.
type InventoryItemPatch struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Quantity    *int    `json:"quantity"`
	MinQuantity *int    `json:"minQuantity"`
	Unit        *string `json:"unit"`
	Location    *string `json:"location"`
}
