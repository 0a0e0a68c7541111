package order

import (
	"testing"
	"time"

	"github.com/Blessan-Alex/street-feast-rom/internal/core/menu"
)

func sampleLine(id string) DraftLine {
	return DraftLine{
		ID:           id,
		ItemID:       "item-1",
		NameSnapshot: "Chicken Soup",
		VegSnapshot:  menu.NonVeg,
		Size:         "Large",
		Qty:          2,
	}
}

func TestNewDraft(t *testing.T) {
	d := NewDraft()
	if d.Type != TypeDineIn {
		t.Errorf("NewDraft().Type = %q, want %q", d.Type, TypeDineIn)
	}
	if d.ChefNote != "" {
		t.Errorf("NewDraft().ChefNote = %q, want empty", d.ChefNote)
	}
	if len(d.Lines) != 0 {
		t.Errorf("NewDraft() has %d lines, want 0", len(d.Lines))
	}
}

func TestApplyFieldsPatch(t *testing.T) {
	parcel := TypeParcel
	note := "extra spicy"

	tests := []struct {
		name     string
		patch    FieldsPatch
		wantType Type
		wantNote string
	}{
		{
			name:     "empty patch changes nothing",
			patch:    FieldsPatch{},
			wantType: TypeDineIn,
			wantNote: "",
		},
		{
			name:     "type only",
			patch:    FieldsPatch{Type: &parcel},
			wantType: TypeParcel,
			wantNote: "",
		},
		{
			name:     "note only",
			patch:    FieldsPatch{ChefNote: &note},
			wantType: TypeDineIn,
			wantNote: "extra spicy",
		},
		{
			name:     "both fields",
			patch:    FieldsPatch{Type: &parcel, ChefNote: &note},
			wantType: TypeParcel,
			wantNote: "extra spicy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFieldsPatch(NewDraft(), tt.patch)
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.ChefNote != tt.wantNote {
				t.Errorf("ChefNote = %q, want %q", got.ChefNote, tt.wantNote)
			}
		})
	}
}

func TestAddLine(t *testing.T) {
	d := NewDraft()
	d = AddLine(d, sampleLine("line-1"))
	d = AddLine(d, sampleLine("line-2"))

	if len(d.Lines) != 2 {
		t.Fatalf("draft has %d lines, want 2", len(d.Lines))
	}
	if d.Lines[0].ID != "line-1" || d.Lines[1].ID != "line-2" {
		t.Errorf("lines out of order: %q, %q", d.Lines[0].ID, d.Lines[1].ID)
	}
}

func TestUpdateLine(t *testing.T) {
	qty := 5
	size := "Small"

	d := AddLine(NewDraft(), sampleLine("line-1"))
	got := UpdateLine(d, "line-1", LinePatch{Qty: &qty, Size: &size})

	if got.Lines[0].Qty != 5 {
		t.Errorf("Qty = %d, want 5", got.Lines[0].Qty)
	}
	if got.Lines[0].Size != "Small" {
		t.Errorf("Size = %q, want Small", got.Lines[0].Size)
	}
	// Untouched fields survive the merge.
	if got.Lines[0].NameSnapshot != "Chicken Soup" {
		t.Errorf("NameSnapshot = %q, want Chicken Soup", got.Lines[0].NameSnapshot)
	}
	// Source draft is not mutated.
	if d.Lines[0].Qty != 2 {
		t.Errorf("source draft Qty = %d, want 2", d.Lines[0].Qty)
	}
}

func TestUpdateLineMissingIDIsNoOp(t *testing.T) {
	qty := 9
	d := AddLine(NewDraft(), sampleLine("line-1"))
	got := UpdateLine(d, "no-such-line", LinePatch{Qty: &qty})

	if got.Lines[0].Qty != 2 {
		t.Errorf("Qty = %d, want 2 (unchanged)", got.Lines[0].Qty)
	}
}

func TestRemoveLine(t *testing.T) {
	d := AddLine(AddLine(NewDraft(), sampleLine("line-1")), sampleLine("line-2"))

	got := RemoveLine(d, "line-1")
	if len(got.Lines) != 1 || got.Lines[0].ID != "line-2" {
		t.Fatalf("after remove: %+v", got.Lines)
	}

	// Missing ID is a silent no-op.
	got = RemoveLine(got, "no-such-line")
	if len(got.Lines) != 1 {
		t.Errorf("no-op remove changed line count to %d", len(got.Lines))
	}
}

func TestBuildOrder(t *testing.T) {
	now := time.Date(2026, 3, 12, 18, 30, 0, 0, time.UTC)

	d := NewDraft()
	d.ChefNote = "  table by the window  "
	d = AddLine(d, sampleLine("line-1"))

	placed := BuildOrder(d, "order-uuid", 1001, now)

	if placed.Number != 1001 {
		t.Errorf("Number = %d, want 1001", placed.Number)
	}
	if placed.Status != StatusCreated {
		t.Errorf("Status = %q, want %q", placed.Status, StatusCreated)
	}
	if placed.ChefNote != "table by the window" {
		t.Errorf("ChefNote = %q, want trimmed", placed.ChefNote)
	}
	if !placed.CreatedAt.Equal(now) || !placed.UpdatedAt.Equal(now) {
		t.Errorf("timestamps = %v/%v, want %v", placed.CreatedAt, placed.UpdatedAt, now)
	}
	if len(placed.Items) != 1 || placed.Items[0].ID != "line-1" || placed.Items[0].Qty != 2 {
		t.Fatalf("Items = %+v", placed.Items)
	}
}

// TestBuildOrderSnapshotIsolation checks that draft mutation after placement
// never changes a placed order's items.
func TestBuildOrderSnapshotIsolation(t *testing.T) {
	d := AddLine(NewDraft(), sampleLine("line-1"))
	placed := BuildOrder(d, "order-uuid", 1001, time.Now())

	d.Lines[0].Qty = 99
	d.Lines[0].NameSnapshot = "changed"

	if placed.Items[0].Qty != 2 {
		t.Errorf("placed qty = %d after draft edit, want 2", placed.Items[0].Qty)
	}
	if placed.Items[0].NameSnapshot != "Chicken Soup" {
		t.Errorf("placed name = %q after draft edit, want Chicken Soup", placed.Items[0].NameSnapshot)
	}
}
