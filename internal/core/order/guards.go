package order

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanApplyTransition evaluates whether an order in status from may move to
// target. Rejection is a routine outcome (a stale button press, a terminal
// order), so it is reported as a result rather than an error.
func CanApplyTransition(from, target Status) GuardResult {
	if !CanTransition(from, target) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Transition from %s to %s is not allowed", from, target),
		}
	}
	return GuardResult{Allowed: true}
}

// PlaceContext provides context for draft placement guards.
type PlaceContext struct {
	LineCount int
}

// CanPlaceDraft evaluates whether the current draft can be placed as an order.
// Rule: a draft must contain at least one line item.
func CanPlaceDraft(ctx PlaceContext) GuardResult {
	if ctx.LineCount == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "Add at least one item to the order",
		}
	}
	return GuardResult{Allowed: true}
}

// AppendContext provides context for appending items to a placed order.
type AppendContext struct {
	Status    Status
	ItemCount int
}

// CanAddItems evaluates whether items can be appended to an existing order.
// Rules: at least one item must be supplied, and terminal orders are frozen.
func CanAddItems(ctx AppendContext) GuardResult {
	if ctx.ItemCount == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "Add at least one item to the order",
		}
	}
	if IsTerminal(ctx.Status) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot add items to a %s order", ctx.Status),
		}
	}
	return GuardResult{Allowed: true}
}
