// Package primary defines the primary ports (driving interfaces) for the
// application. CLI adapters depend on these interfaces, never on the
// concrete services.
package primary

import (
	"context"
	"errors"
	"time"
)

// ErrOrderNotFound is returned when an order ID does not resolve to a stored
// order. It is distinct from a rejected status transition so callers can
// message the two differently.
var ErrOrderNotFound = errors.New("order not found")

// OrderService defines the primary port for draft assembly and the order
// lifecycle.
type OrderService interface {
	// GetDraft returns the current draft, creating the empty default if
	// none is stored yet.
	GetDraft(ctx context.Context) (*Draft, error)

	// SetDraftFields shallow-merges type and chef note updates into the
	// draft.
	SetDraftFields(ctx context.Context, req SetDraftFieldsRequest) (*Draft, error)

	// AddDraftLine appends a fully-formed line. The caller supplies the
	// menu item snapshot (name, veg flag); the service assigns the line ID.
	AddDraftLine(ctx context.Context, req AddDraftLineRequest) (*Draft, error)

	// UpdateDraftLine merges a partial update into the matching line.
	// A missing line ID is a silent no-op.
	UpdateDraftLine(ctx context.Context, req UpdateDraftLineRequest) (*Draft, error)

	// RemoveDraftLine removes the matching line. A miss is a silent no-op.
	RemoveDraftLine(ctx context.Context, lineID string) (*Draft, error)

	// ClearDraft resets the draft to the empty default.
	ClearDraft(ctx context.Context) error

	// PlaceDraft materializes the draft into a numbered order. A draft
	// with no lines yields a rejection result, not an error.
	PlaceDraft(ctx context.Context) (*PlaceDraftResult, error)

	// UpdateStatus applies a lifecycle transition to an order. An unknown
	// order ID returns ErrOrderNotFound; an illegal transition yields a
	// rejection result and leaves the order unchanged.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*UpdateStatusResult, error)

	// AddItems appends item snapshots to an existing order.
	AddItems(ctx context.Context, req AddItemsRequest) (*AddItemsResult, error)

	// GetOrder retrieves a single order by ID.
	GetOrder(ctx context.Context, orderID string) (*Order, error)

	// ListOrders retrieves orders newest first, optionally filtered by
	// status ("" or "All" means no filter).
	ListOrders(ctx context.Context, filters OrderFilters) ([]*Order, error)

	// ResetOrders clears all orders and the draft. The order-number
	// counter is untouched unless resetCounter is set, so numbers are
	// never reused by accident.
	ResetOrders(ctx context.Context, resetCounter bool) error
}

// Order is an immutable placed order as exposed to callers.
type Order struct {
	ID        string
	Number    int
	Type      string
	ChefNote  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []OrderItem
}

// OrderItem is a line snapshot within a placed order.
type OrderItem struct {
	ID     string
	ItemID string
	Name   string
	Veg    string
	Size   string
	Note   string
	Qty    int
}

// Draft is the current in-progress order as exposed to callers.
type Draft struct {
	Type     string
	ChefNote string
	Lines    []OrderItem
}

// SetDraftFieldsRequest carries a partial draft update. Nil fields are left
// unchanged.
type SetDraftFieldsRequest struct {
	Type     *string
	ChefNote *string
}

// AddDraftLineRequest carries a fully-formed draft line. Name and Veg are
// the menu item snapshot taken by the caller at add time.
type AddDraftLineRequest struct {
	ItemID string
	Name   string
	Veg    string
	Size   string
	Note   string
	Qty    int
}

// UpdateDraftLineRequest carries a partial line update. Nil fields are left
// unchanged.
type UpdateDraftLineRequest struct {
	LineID string
	Size   *string
	Note   *string
	Qty    *int
}

// PlaceDraftResult is the outcome of placing the draft. OK is false for a
// routine validation rejection, with Reason populated and the draft left
// untouched; Order is set only on success.
type PlaceDraftResult struct {
	OK     bool
	Reason string
	Order  *Order
}

// UpdateStatusRequest names an order and the target lifecycle status.
type UpdateStatusRequest struct {
	OrderID string
	Target  string
}

// UpdateStatusResult is the outcome of a transition attempt. OK is false
// when the transition is not in the allowed set; the order is unchanged and
// Reason explains the rejection.
type UpdateStatusResult struct {
	OK     bool
	Reason string
	Order  *Order
}

// AddItemsRequest appends lines to an existing order. Each line carries its
// own menu item snapshot, as in AddDraftLineRequest.
type AddItemsRequest struct {
	OrderID string
	Items   []AddDraftLineRequest
}

// AddItemsResult is the outcome of an append attempt.
type AddItemsResult struct {
	OK     bool
	Reason string
	Order  *Order
}

// OrderFilters contains filter options for listing orders.
type OrderFilters struct {
	Status string
	Limit  int
}
