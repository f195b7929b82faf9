package model

import "time"

// Request is a supply request submitted by a staff member. ItemName is a
// snapshot taken at creation time so request history survives item deletion.
// After creation only Status may change.
type Request struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"itemId"`
	ItemName    string    `json:"itemName"`
	RequestedBy string    `json:"requestedBy"`
	Quantity    int       `json:"quantity"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Request statuses.
const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusRejected  = "rejected"
	RequestStatusFulfilled = "fulfilled"
)

// ValidRequestStatus reports whether s is a known request status.
func ValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusFulfilled:
		return true
	}
	return false
}

// CanTransition reports whether a request may move between two statuses.
// Pending requests can be approved or rejected, approved requests can be
// fulfilled. Rejected and fulfilled are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case RequestStatusPending:
		return to == RequestStatusApproved || to == RequestStatusRejected
	case RequestStatusApproved:
		return to == RequestStatusFulfilled
	default:
		return false
	}
}
