package api

import (
	"net/http"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/notify"
)

// NotificationsHandler serves the derived notification feed.
type NotificationsHandler struct {
	Feed *notify.Aggregator
}

// List handles GET /api/notifications. Supports ?type= filtering.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		notifications []model.Notification
		err           error
	)

	if typ := r.URL.Query().Get("type"); typ != "" {
		notifications, err = h.Feed.ListByType(r.Context(), typ)
	} else {
		notifications, err = h.Feed.GetAll(r.Context())
	}
	if err != nil {
		storeError(w, err, "failed to load notifications")
		return
	}

	if notifications == nil {
		notifications = []model.Notification{}
	}
	jsonResponse(w, http.StatusOK, notifications)
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationsHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Feed.UnreadCount(r.Context())
	if err != nil {
		storeError(w, err, "failed to count notifications")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]int{"count": count})
}

// MarkAsRead handles POST /api/notifications/{id}/read. Read state is not
// persisted; the call succeeds so clients can update their local view, but a
// later fetch returns the notification unread again.
func (h *NotificationsHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Feed.MarkAsRead(r.Context(), r.PathValue("id")); err != nil {
		storeError(w, err, "failed to mark notification as read")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// MarkAllAsRead handles POST /api/notifications/read-all. Same caveat as
// MarkAsRead.
func (h *NotificationsHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Feed.MarkAllAsRead(r.Context()); err != nil {
		storeError(w, err, "failed to mark notifications as read")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}
