package api

import (
	"net/http"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

// CategoriesHandler handles category CRUD endpoints.
type CategoriesHandler struct {
	DB *store.DB
}

type categoryRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := store.ListCategories(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	jsonResponse(w, http.StatusOK, categories)
}

// Create handles POST /api/categories.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	category, err := store.CreateCategory(r.Context(), h.DB, req.Name)
	if err != nil {
		storeError(w, err, "failed to create category")
		return
	}
	jsonResponse(w, http.StatusCreated, category)
}

// Get handles GET /api/categories/{id}.
func (h *CategoriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := store.GetCategory(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to get category")
		return
	}
	if category == nil {
		jsonError(w, http.StatusNotFound, "category not found")
		return
	}
	jsonResponse(w, http.StatusOK, category)
}

// Update handles PUT /api/categories/{id}.
func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	category, err := store.UpdateCategory(r.Context(), h.DB, r.PathValue("id"), req.Name)
	if err != nil {
		storeError(w, err, "failed to update category")
		return
	}
	jsonResponse(w, http.StatusOK, category)
}

// Delete handles DELETE /api/categories/{id}. The removed record is returned.
func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	category, err := store.DeleteCategory(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to delete category")
		return
	}
	jsonResponse(w, http.StatusOK, category)
}
