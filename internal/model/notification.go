package model

import "time"

// Notification types.
const (
	NotificationLowStock      = "low_stock"
	NotificationRequestStatus = "request_status"
)

// Notification severities.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityInfo     = "info"
)

// Notification is a derived alert, recomputed from store state on every fetch
// and never persisted. IsRead is always false for that reason; read state
// lives only in the consumer's session.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	Data      any       `json:"data,omitempty"`
}

// LowStockData identifies the inventory item behind a low_stock notification.
type LowStockData struct {
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
}

// RequestStatusData identifies the request behind a request_status
// notification.
type RequestStatusData struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
}
