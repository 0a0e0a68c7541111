package order

import (
	"strings"
	"testing"
)

func TestCanApplyTransition(t *testing.T) {
	tests := []struct {
		name        string
		from        Status
		target      Status
		wantAllowed bool
	}{
		{
			name:        "created to accepted",
			from:        StatusCreated,
			target:      StatusAccepted,
			wantAllowed: true,
		},
		{
			name:        "created to canceled",
			from:        StatusCreated,
			target:      StatusCanceled,
			wantAllowed: true,
		},
		{
			name:        "prepared cannot be canceled",
			from:        StatusPrepared,
			target:      StatusCanceled,
			wantAllowed: false,
		},
		{
			name:        "created cannot skip to prepared",
			from:        StatusCreated,
			target:      StatusPrepared,
			wantAllowed: false,
		},
		{
			name:        "closed is frozen",
			from:        StatusClosed,
			target:      StatusAccepted,
			wantAllowed: false,
		},
		{
			name:        "no self transition",
			from:        StatusAccepted,
			target:      StatusAccepted,
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanApplyTransition(tt.from, tt.target)
			if result.Allowed != tt.wantAllowed {
				t.Fatalf("CanApplyTransition(%q, %q).Allowed = %v, want %v",
					tt.from, tt.target, result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed {
				if result.Reason == "" {
					t.Error("rejected transition has empty Reason")
				}
				if result.Error() == nil {
					t.Error("rejected transition Error() = nil, want error")
				}
			} else if result.Error() != nil {
				t.Errorf("allowed transition Error() = %v, want nil", result.Error())
			}
		})
	}
}

func TestCanPlaceDraft(t *testing.T) {
	if result := CanPlaceDraft(PlaceContext{LineCount: 0}); result.Allowed {
		t.Error("CanPlaceDraft with no lines = allowed, want rejected")
	} else if result.Reason != "Add at least one item to the order" {
		t.Errorf("CanPlaceDraft reason = %q", result.Reason)
	}

	if result := CanPlaceDraft(PlaceContext{LineCount: 1}); !result.Allowed {
		t.Errorf("CanPlaceDraft with one line rejected: %s", result.Reason)
	}
}

func TestCanAddItems(t *testing.T) {
	tests := []struct {
		name        string
		ctx         AppendContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "append to in-flight order",
			ctx:         AppendContext{Status: StatusAccepted, ItemCount: 2},
			wantAllowed: true,
		},
		{
			name:        "empty append rejected",
			ctx:         AppendContext{Status: StatusAccepted, ItemCount: 0},
			wantAllowed: false,
			wantReason:  "Add at least one item",
		},
		{
			name:        "closed order is frozen",
			ctx:         AppendContext{Status: StatusClosed, ItemCount: 1},
			wantAllowed: false,
			wantReason:  "Cannot add items to a Closed order",
		},
		{
			name:        "canceled order is frozen",
			ctx:         AppendContext{Status: StatusCanceled, ItemCount: 1},
			wantAllowed: false,
			wantReason:  "Cannot add items to a Canceled order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanAddItems(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Fatalf("CanAddItems(%+v).Allowed = %v, want %v", tt.ctx, result.Allowed, tt.wantAllowed)
			}
			if tt.wantReason != "" && !strings.Contains(result.Reason, tt.wantReason) {
				t.Errorf("CanAddItems reason = %q, want contains %q", result.Reason, tt.wantReason)
			}
		})
	}
}
