// Package order contains the pure business logic for the order lifecycle and
// draft assembly. This is part of the Functional Core - no I/O, only pure
// functions and value types.
package order

import "time"

// Status represents the possible lifecycle states of an order.
type Status string

const (
	StatusCreated   Status = "Created"
	StatusAccepted  Status = "Accepted"
	StatusInKitchen Status = "InKitchen"
	StatusPrepared  Status = "Prepared"
	StatusDelivered Status = "Delivered"
	StatusClosed    Status = "Closed"
	StatusCanceled  Status = "Canceled"
)

// Type represents how an order is fulfilled.
type Type string

const (
	TypeDineIn   Type = "DineIn"
	TypeParcel   Type = "Parcel"
	TypeDelivery Type = "Delivery"
)

// allowedTransitions is the single source of truth for the lifecycle state
// machine. A status missing from a target list cannot be reached from that
// source status. Closed and Canceled are terminal: their target lists are
// empty.
//
//	Created ──> Accepted ──> InKitchen ──> Prepared ──> Delivered ──> Closed
//	   │            │             │
//	   └────────────┴─────────────┴──> Canceled
var allowedTransitions = map[Status][]Status{
	StatusCreated:   {StatusAccepted, StatusCanceled},
	StatusAccepted:  {StatusInKitchen, StatusCanceled},
	StatusInKitchen: {StatusPrepared, StatusCanceled},
	StatusPrepared:  {StatusDelivered},
	StatusDelivered: {StatusClosed},
	StatusClosed:    {},
	StatusCanceled:  {},
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusCreated,
		StatusAccepted,
		StatusInKitchen,
		StatusPrepared,
		StatusDelivered,
		StatusClosed,
		StatusCanceled,
	}
}

// AllowedTransitions returns the statuses reachable from s. The returned
// slice is a copy and is empty for terminal states and unknown values.
func AllowedTransitions(s Status) []Status {
	targets := allowedTransitions[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransition reports whether the lifecycle permits moving from one status
// to another in a single step.
func CanTransition(from, to Status) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func IsTerminal(s Status) bool {
	targets, ok := allowedTransitions[s]
	return ok && len(targets) == 0
}

// ParseStatus converts a stored or user-supplied string into a Status.
// The second return value is false for unknown strings.
func ParseStatus(s string) (Status, bool) {
	if _, ok := allowedTransitions[Status(s)]; ok {
		return Status(s), true
	}
	return "", false
}

// ParseType converts a stored or user-supplied string into an order Type.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeDineIn, TypeParcel, TypeDelivery:
		return Type(s), true
	}
	return "", false
}

// InitialStatus returns the status assigned to a freshly placed order.
func InitialStatus() Status {
	return StatusCreated
}

// StatusTransitionResult contains the result of applying a status transition.
type StatusTransitionResult struct {
	NewStatus Status
	UpdatedAt time.Time
}

// ApplyStatusTransition applies an already-validated transition and returns
// the new status together with the timestamp the order record should carry.
// Callers must check CanApplyTransition first; this function only captures
// the mutation. The caller passes the current time to enable testing.
func ApplyStatusTransition(target Status, now time.Time) StatusTransitionResult {
	return StatusTransitionResult{
		NewStatus: target,
		UpdatedAt: now,
	}
}
