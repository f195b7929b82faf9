package api

import (
	"net/http"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

// InventoryHandler handles inventory item CRUD endpoints.
type InventoryHandler struct {
	DB *store.DB
}

type createItemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"minQuantity"`
	Unit        string `json:"unit"`
	Location    string `json:"location"`
}

// List handles GET /api/inventory. Supports ?q= substring search and
// ?category= exact filtering.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		items []model.InventoryItem
		err   error
	)

	switch {
	case r.URL.Query().Get("q") != "":
		items, err = store.SearchInventoryItems(r.Context(), h.DB, r.URL.Query().Get("q"))
	case r.URL.Query().Get("category") != "":
		items, err = store.ListInventoryItemsByCategory(r.Context(), h.DB, r.URL.Query().Get("category"))
	default:
		items, err = store.ListInventoryItems(r.Context(), h.DB)
	}
	if err != nil {
		storeError(w, err, "failed to list inventory")
		return
	}

	if items == nil {
		items = []model.InventoryItem{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// LowStock handles GET /api/inventory/low-stock.
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListLowStockItems(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list low stock items")
		return
	}
	if items == nil {
		items = []model.InventoryItem{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.Quantity < 0 || req.MinQuantity < 0 {
		jsonError(w, http.StatusBadRequest, "quantities must be non-negative")
		return
	}

	item, err := store.CreateInventoryItem(r.Context(), h.DB, model.InventoryItem{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Unit:        req.Unit,
		Location:    req.Location,
	})
	if err != nil {
		storeError(w, err, "failed to create inventory item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/inventory/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetInventoryItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to get inventory item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/inventory/{id}. The body is a partial update;
// omitted fields keep their current values.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.InventoryItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if patch.Name != nil && *patch.Name == "" {
		jsonError(w, http.StatusBadRequest, "name cannot be empty")
		return
	}
	if (patch.Quantity != nil && *patch.Quantity < 0) || (patch.MinQuantity != nil && *patch.MinQuantity < 0) {
		jsonError(w, http.StatusBadRequest, "quantities must be non-negative")
		return
	}

	item, err := store.UpdateInventoryItem(r.Context(), h.DB, r.PathValue("id"), patch)
	if err != nil {
		storeError(w, err, "failed to update inventory item")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/{id}. The removed record is returned.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	item, err := store.DeleteInventoryItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to delete inventory item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}
