package order

import (
	"strings"
	"time"

	"github.com/Blessan-Alex/street-feast-rom/internal/core/menu"
)

// DraftLine is a single line item in the in-progress draft. Name and veg flag
// are snapshots taken from the menu item at add time, so later catalog edits
// never alter past orders.
type DraftLine struct {
	ID           string
	ItemID       string
	NameSnapshot string
	VegSnapshot  menu.VegFlag
	Size         string // empty when the item has no size variants
	Note         string // optional per-line chef note
	Qty          int    // always >= 1
}

// Draft is the single in-progress, unpersisted order being assembled before
// placement.
type Draft struct {
	Type     Type
	ChefNote string
	Lines    []DraftLine
}

// NewDraft returns the empty default draft: DineIn, no note, no lines.
func NewDraft() Draft {
	return Draft{Type: TypeDineIn}
}

// FieldsPatch carries a partial update for the draft's own fields.
// Nil fields are left unchanged.
type FieldsPatch struct {
	Type     *Type
	ChefNote *string
}

// LinePatch carries a partial update for a single draft line.
// Nil fields are left unchanged.
type LinePatch struct {
	Size *string
	Note *string
	Qty  *int
}

// ApplyFieldsPatch merges a partial update into the draft and returns the
// result. The input draft is not modified.
func ApplyFieldsPatch(d Draft, p FieldsPatch) Draft {
	out := cloneDraft(d)
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.ChefNote != nil {
		out.ChefNote = *p.ChefNote
	}
	return out
}

// AddLine appends a fully-formed line to the draft. The caller is responsible
// for snapshotting the menu item's name and veg flag and supplying a unique
// line ID before calling.
func AddLine(d Draft, line DraftLine) Draft {
	out := cloneDraft(d)
	out.Lines = append(out.Lines, line)
	return out
}

// UpdateLine merges a partial update into the line matching id.
// A miss is a silent no-op: the UI acts on visible, current line IDs.
func UpdateLine(d Draft, id string, p LinePatch) Draft {
	out := cloneDraft(d)
	for i := range out.Lines {
		if out.Lines[i].ID != id {
			continue
		}
		if p.Size != nil {
			out.Lines[i].Size = *p.Size
		}
		if p.Note != nil {
			out.Lines[i].Note = *p.Note
		}
		if p.Qty != nil {
			out.Lines[i].Qty = *p.Qty
		}
		break
	}
	return out
}

// RemoveLine removes the line matching id. A miss is a silent no-op.
func RemoveLine(d Draft, id string) Draft {
	out := d
	out.Lines = make([]DraftLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		if l.ID != id {
			out.Lines = append(out.Lines, l)
		}
	}
	return out
}

func cloneDraft(d Draft) Draft {
	out := d
	out.Lines = make([]DraftLine, len(d.Lines))
	copy(out.Lines, d.Lines)
	return out
}

// Placed is the immutable order produced from a draft at placement time.
// Items are deep copies of the draft lines, so mutating the draft afterwards
// never changes a placed order.
type Placed struct {
	ID        string
	Number    int
	Type      Type
	ChefNote  string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []DraftLine
}

// BuildOrder materializes a draft into a placed order snapshot. The caller
// allocates the order ID and number and passes the current time. Placement
// validation (CanPlaceDraft) is the caller's responsibility.
func BuildOrder(d Draft, id string, number int, now time.Time) Placed {
	items := make([]DraftLine, len(d.Lines))
	copy(items, d.Lines)
	return Placed{
		ID:        id,
		Number:    number,
		Type:      d.Type,
		ChefNote:  strings.TrimSpace(d.ChefNote),
		Status:    InitialStatus(),
		CreatedAt: now,
		UpdatedAt: now,
		Items:     items,
	}
}
