package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/zaloga/internal/model"
)

func TestCreateRequestForcesPending(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	created, err := CreateRequest(ctx, database, model.Request{
		ItemID:      "item-1",
		ItemName:    "Whiteboard Markers",
		RequestedBy: "Ms. Petersen",
		Quantity:    4,
		Notes:       "Room 204",
		// Status and CreatedAt in the input must be ignored.
		Status: model.RequestStatusFulfilled,
	})
	if err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}

	if created.Status != model.RequestStatusPending {
		t.Errorf("expected status pending, got %q", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected createdAt to be stamped")
	}
	if created.ItemName != "Whiteboard Markers" || created.Quantity != 4 || created.Notes != "Room 204" {
		t.Errorf("round-trip mismatch: %+v", created)
	}
}

func TestUpdateRequestStatusIsPermissive(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	created, _ := CreateRequest(ctx, database, model.Request{
		ItemID: "item-1", ItemName: "Copy Paper", RequestedBy: "Mr. Alvarez", Quantity: 5,
	})

	// The store does not check transition legality; fulfilled → pending is
	// accepted here and must be rejected by callers instead.
	for _, status := range []string{
		model.RequestStatusApproved,
		model.RequestStatusFulfilled,
		model.RequestStatusPending,
	} {
		updated, err := UpdateRequestStatus(ctx, database, created.ID, status)
		if err != nil {
			t.Fatalf("UpdateRequestStatus(%q): %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("expected status %q, got %q", status, updated.Status)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("createdAt changed on status update")
		}
	}
}

func TestUpdateRequestStatusNotFound(t *testing.T) {
	database := newTestDB(t)

	_, err := UpdateRequestStatus(context.Background(), database, "no-such-id", model.RequestStatusApproved)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListPendingRequests(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	first, _ := CreateRequest(ctx, database, model.Request{ItemID: "i1", ItemName: "A", RequestedBy: "x", Quantity: 1})
	second, _ := CreateRequest(ctx, database, model.Request{ItemID: "i2", ItemName: "B", RequestedBy: "y", Quantity: 1})
	CreateRequest(ctx, database, model.Request{ItemID: "i3", ItemName: "C", RequestedBy: "z", Quantity: 1})

	UpdateRequestStatus(ctx, database, second.ID, model.RequestStatusApproved)

	pending, err := ListPendingRequests(ctx, database)
	if err != nil {
		t.Fatalf("ListPendingRequests: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending requests, got %d", len(pending))
	}
	if pending[0].ID != first.ID {
		t.Errorf("expected store order, got %+v", pending)
	}
}

func TestDeleteRequest(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	created, _ := CreateRequest(ctx, database, model.Request{ItemID: "i1", ItemName: "A", RequestedBy: "x", Quantity: 1})

	removed, err := DeleteRequest(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("DeleteRequest: %v", err)
	}
	if removed.ID != created.ID {
		t.Errorf("expected the removed record back, got %+v", removed)
	}

	if got, _ := GetRequest(ctx, database, created.ID); got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}

	if _, err := DeleteRequest(ctx, database, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}
