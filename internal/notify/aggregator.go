// Package notify derives the notification feed from current inventory and
// request state. The feed is never stored; every call recomputes it.
package notify

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

// maxRequestNotifications caps how many request updates show up in the feed.
const maxRequestNotifications = 10

// Aggregator builds notification feeds from the entity stores.
type Aggregator struct {
	DB *store.DB
}

// GetAll recomputes the notification feed: one low_stock entry per low-stock
// inventory item and one request_status entry for up to ten non-pending
// requests in store order, merged newest first. Equal timestamps keep their
// input order.
func (a *Aggregator) GetAll(ctx context.Context) ([]model.Notification, error) {
	lowStock, err := store.ListLowStockItems(ctx, a.DB)
	if err != nil {
		return nil, fmt.Errorf("listing low stock items: %w", err)
	}
	requests, err := store.ListRequests(ctx, a.DB)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}

	var notifications []model.Notification

	for _, item := range lowStock {
		severity := model.SeverityWarning
		if item.Quantity <= item.MinQuantity {
			severity = model.SeverityCritical
		}
		notifications = append(notifications, model.Notification{
			ID:        "stock-" + item.ID,
			Type:      model.NotificationLowStock,
			Title:     "Low Stock Alert: " + item.Name,
			Message:   fmt.Sprintf("Only %d %s remaining (Min: %d)", item.Quantity, item.Unit, item.MinQuantity),
			Severity:  severity,
			CreatedAt: item.LastUpdated,
			Data:      model.LowStockData{ItemID: item.ID, ItemName: item.Name},
		})
	}

	count := 0
	for _, req := range requests {
		if req.Status == model.RequestStatusPending {
			continue
		}
		if count == maxRequestNotifications {
			break
		}
		count++

		severity := model.SeverityInfo
		if req.Status == model.RequestStatusRejected {
			severity = model.SeverityError
		}
		notifications = append(notifications, model.Notification{
			ID:        "request-" + req.ID,
			Type:      model.NotificationRequestStatus,
			Title:     "Request " + capitalize(req.Status),
			Message:   fmt.Sprintf("Your request has been %s: %s (%d units)", req.Status, req.ItemName, req.Quantity),
			Severity:  severity,
			CreatedAt: req.CreatedAt,
			Data:      model.RequestStatusData{RequestID: req.ID, Status: req.Status},
		})
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

// ListByType returns only notifications of the given type, newest first.
func (a *Aggregator) ListByType(ctx context.Context, typ string) ([]model.Notification, error) {
	all, err := a.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []model.Notification
	for _, n := range all {
		if n.Type == typ {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

// UnreadCount returns the number of unread notifications in a fresh feed.
// Read state is never persisted, so this equals the feed size.
func (a *Aggregator) UnreadCount(ctx context.Context) (int, error) {
	all, err := a.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range all {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkAsRead acknowledges a single notification. The feed has nowhere to
// record read state, so this succeeds without changing what a later GetAll
// returns; consumers keep read state in their own session.
func (a *Aggregator) MarkAsRead(ctx context.Context, id string) error {
	return nil
}

// MarkAllAsRead acknowledges the whole feed. Same caveat as MarkAsRead.
func (a *Aggregator) MarkAllAsRead(ctx context.Context) error {
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
