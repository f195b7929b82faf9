package api

import (
	"net/http"

	"github.com/erazemk/zaloga/internal/notify"
	"github.com/erazemk/zaloga/internal/report"
	"github.com/erazemk/zaloga/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *store.DB) http.Handler {
	mux := http.NewServeMux()

	inventoryHandler := &InventoryHandler{DB: db}
	categoriesHandler := &CategoriesHandler{DB: db}
	requestsHandler := &RequestsHandler{DB: db}
	notificationsHandler := &NotificationsHandler{Feed: &notify.Aggregator{DB: db}}
	reportsHandler := &ReportsHandler{Reports: &report.Generator{DB: db}}
	dashboardHandler := &DashboardHandler{DB: db}

	// Inventory.
	mux.HandleFunc("GET /api/inventory", inventoryHandler.List)
	mux.HandleFunc("POST /api/inventory", inventoryHandler.Create)
	mux.HandleFunc("GET /api/inventory/low-stock", inventoryHandler.LowStock)
	mux.HandleFunc("GET /api/inventory/{id}", inventoryHandler.Get)
	mux.HandleFunc("PUT /api/inventory/{id}", inventoryHandler.Update)
	mux.HandleFunc("DELETE /api/inventory/{id}", inventoryHandler.Delete)

	// Categories.
	mux.HandleFunc("GET /api/categories", categoriesHandler.List)
	mux.HandleFunc("POST /api/categories", categoriesHandler.Create)
	mux.HandleFunc("GET /api/categories/{id}", categoriesHandler.Get)
	mux.HandleFunc("PUT /api/categories/{id}", categoriesHandler.Update)
	mux.HandleFunc("DELETE /api/categories/{id}", categoriesHandler.Delete)

	// Requests.
	mux.HandleFunc("GET /api/requests", requestsHandler.List)
	mux.HandleFunc("POST /api/requests", requestsHandler.Create)
	mux.HandleFunc("GET /api/requests/pending", requestsHandler.Pending)
	mux.HandleFunc("GET /api/requests/{id}", requestsHandler.Get)
	mux.HandleFunc("PUT /api/requests/{id}/status", requestsHandler.UpdateStatus)
	mux.HandleFunc("DELETE /api/requests/{id}", requestsHandler.Delete)

	// Notifications.
	mux.HandleFunc("GET /api/notifications", notificationsHandler.List)
	mux.HandleFunc("GET /api/notifications/unread-count", notificationsHandler.UnreadCount)
	mux.HandleFunc("POST /api/notifications/{id}/read", notificationsHandler.MarkAsRead)
	mux.HandleFunc("POST /api/notifications/read-all", notificationsHandler.MarkAllAsRead)

	// Reports.
	mux.HandleFunc("GET /api/reports/inventory", reportsHandler.Inventory)
	mux.HandleFunc("GET /api/reports/requests", reportsHandler.Requests)

	// Dashboard.
	mux.HandleFunc("GET /api/dashboard", dashboardHandler.Get)

	return mux
}
