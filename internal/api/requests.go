package api

import (
	"fmt"
	"net/http"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

// RequestsHandler handles supply request endpoints.
type RequestsHandler struct {
	DB *store.DB
}

type createRequestRequest struct {
	ItemID      string `json:"itemId"`
	RequestedBy string `json:"requestedBy"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/requests.
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := store.ListRequests(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list requests")
		return
	}
	if requests == nil {
		requests = []model.Request{}
	}
	jsonResponse(w, http.StatusOK, requests)
}

// Pending handles GET /api/requests/pending.
func (h *RequestsHandler) Pending(w http.ResponseWriter, r *http.Request) {
	requests, err := store.ListPendingRequests(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list pending requests")
		return
	}
	if requests == nil {
		requests = []model.Request{}
	}
	jsonResponse(w, http.StatusOK, requests)
}

// Create handles POST /api/requests. The referenced item must exist and the
// requested quantity must not exceed its current stock. The stored request
// snapshots the item name; stock itself is not decremented here.
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ItemID == "" || req.RequestedBy == "" {
		jsonError(w, http.StatusBadRequest, "itemId and requestedBy required")
		return
	}
	if req.Quantity <= 0 {
		jsonError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	item, err := store.GetInventoryItem(r.Context(), h.DB, req.ItemID)
	if err != nil {
		storeError(w, err, "failed to look up item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusBadRequest, "unknown item")
		return
	}
	if req.Quantity > item.Quantity {
		jsonError(w, http.StatusBadRequest, fmt.Sprintf("requested quantity exceeds available stock (%d)", item.Quantity))
		return
	}

	created, err := store.CreateRequest(r.Context(), h.DB, model.Request{
		ItemID:      item.ID,
		ItemName:    item.Name,
		RequestedBy: req.RequestedBy,
		Quantity:    req.Quantity,
		Notes:       req.Notes,
	})
	if err != nil {
		storeError(w, err, "failed to create request")
		return
	}

	jsonResponse(w, http.StatusCreated, created)
}

// Get handles GET /api/requests/{id}.
func (h *RequestsHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := store.GetRequest(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to get request")
		return
	}
	if req == nil {
		jsonError(w, http.StatusNotFound, "request not found")
		return
	}
	jsonResponse(w, http.StatusOK, req)
}

// UpdateStatus handles PUT /api/requests/{id}/status. Transition legality is
// enforced here; the store itself overwrites unconditionally.
func (h *RequestsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !model.ValidRequestStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	current, err := store.GetRequest(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "failed to get request")
		return
	}
	if current == nil {
		jsonError(w, http.StatusNotFound, "request not found")
		return
	}
	if !model.CanTransition(current.Status, req.Status) {
		jsonError(w, http.StatusConflict, fmt.Sprintf("cannot change request from %s to %s", current.Status, req.Status))
		return
	}

	updated, err := store.UpdateRequestStatus(r.Context(), h.DB, id, req.Status)
	if err != nil {
		storeError(w, err, "failed to update request status")
		return
	}

	jsonResponse(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/requests/{id}. The removed record is returned.
func (h *RequestsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	req, err := store.DeleteRequest(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to delete request")
		return
	}
	jsonResponse(w, http.StatusOK, req)
}
