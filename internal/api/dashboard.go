package api

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	DB *store.DB
}

type dashboardMetrics struct {
	TotalItems      int `json:"totalItems"`
	LowStockCount   int `json:"lowStockCount"`
	PendingRequests int `json:"pendingRequests"`
	Categories      int `json:"categories"`
}

type activityEntry struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type dashboardResponse struct {
	Metrics        dashboardMetrics `json:"metrics"`
	RecentActivity []activityEntry  `json:"recentActivity"`
}

// Get handles GET /api/dashboard: headline metrics plus a short feed of the
// most recent inventory updates and requests.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := store.ListInventoryItems(ctx, h.DB)
	if err != nil {
		storeError(w, err, "failed to load dashboard")
		return
	}
	lowStock, err := store.ListLowStockItems(ctx, h.DB)
	if err != nil {
		storeError(w, err, "failed to load dashboard")
		return
	}
	requests, err := store.ListRequests(ctx, h.DB)
	if err != nil {
		storeError(w, err, "failed to load dashboard")
		return
	}

	categories := make(map[string]struct{})
	for _, item := range items {
		categories[item.Category] = struct{}{}
	}
	pending := 0
	for _, req := range requests {
		if req.Status == model.RequestStatusPending {
			pending++
		}
	}

	activity := recentActivity(items, requests)
	if activity == nil {
		activity = []activityEntry{}
	}

	jsonResponse(w, http.StatusOK, dashboardResponse{
		Metrics: dashboardMetrics{
			TotalItems:      len(items),
			LowStockCount:   len(lowStock),
			PendingRequests: pending,
			Categories:      len(categories),
		},
		RecentActivity: activity,
	})
}

// recentActivity merges the three most recently updated items and the two
// most recent requests into a single feed, newest first, capped at five.
func recentActivity(items []model.InventoryItem, requests []model.Request) []activityEntry {
	recentItems := make([]model.InventoryItem, len(items))
	copy(recentItems, items)
	sort.SliceStable(recentItems, func(i, j int) bool {
		return recentItems[i].LastUpdated.After(recentItems[j].LastUpdated)
	})
	if len(recentItems) > 3 {
		recentItems = recentItems[:3]
	}

	recentRequests := make([]model.Request, len(requests))
	copy(recentRequests, requests)
	sort.SliceStable(recentRequests, func(i, j int) bool {
		return recentRequests[i].CreatedAt.After(recentRequests[j].CreatedAt)
	})
	if len(recentRequests) > 2 {
		recentRequests = recentRequests[:2]
	}

	var activity []activityEntry
	for _, item := range recentItems {
		activity = append(activity, activityEntry{
			ID:          "inv-" + item.ID,
			Type:        "inventory",
			Title:       item.Name + " updated",
			Description: fmt.Sprintf("Stock level: %d %s", item.Quantity, item.Unit),
			Timestamp:   item.LastUpdated,
		})
	}
	for _, req := range recentRequests {
		activity = append(activity, activityEntry{
			ID:          "req-" + req.ID,
			Type:        "request",
			Title:       "New request from " + req.RequestedBy,
			Description: fmt.Sprintf("%d %s requested", req.Quantity, req.ItemName),
			Timestamp:   req.CreatedAt,
		})
	}

	sort.SliceStable(activity, func(i, j int) bool {
		return activity[i].Timestamp.After(activity[j].Timestamp)
	})
	if len(activity) > 5 {
		activity = activity[:5]
	}
	return activity
}
