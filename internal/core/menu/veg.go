// Package menu contains the pure business logic for menu catalog operations.
// This is part of the Functional Core - no I/O, only pure functions.
package menu

import "strings"

// VegFlag is the dietary classification stored on menu items and snapshotted
// into order lines. Stored data is strictly binary; the tri-state "Both"
// exists only as creation-time input and expands into two concrete items
// via ExpandItem.
type VegFlag string

const (
	Veg    VegFlag = "Veg"
	NonVeg VegFlag = "NonVeg"
)

// ParseVegFlag converts a stored string into a VegFlag.
func ParseVegFlag(s string) (VegFlag, bool) {
	switch VegFlag(s) {
	case Veg, NonVeg:
		return VegFlag(s), true
	}
	return "", false
}

// nonVegKeywords take precedence over vegKeywords during inference.
var nonVegKeywords = []string{"chicken", "egg", "meat", "fish", "prawn", "mutton", "beef", "pork"}

var vegKeywords = []string{
	"paneer", "veg", "mushroom", "chaap", "dal", "rice", "noodles", "pizza",
	"burger", "wrap", "bowl", "fries", "drink", "coffee", "tea", "soda",
	"water", "salad", "naan", "roti",
}

// InferVegFlag guesses a dietary flag from an item's name and category when
// the source data leaves it blank. Non-veg keywords win; with no keyword hit
// the item defaults to Veg.
func InferVegFlag(itemName, category string) VegFlag {
	text := strings.ToLower(itemName + " " + category)
	for _, kw := range nonVegKeywords {
		if strings.Contains(text, kw) {
			return NonVeg
		}
	}
	for _, kw := range vegKeywords {
		if strings.Contains(text, kw) {
			return Veg
		}
	}
	return Veg
}

// ItemSpec describes a concrete item to be created: always a binary flag.
type ItemSpec struct {
	Name  string
	Sizes []string
	Veg   VegFlag
}

// ExpandItem resolves a creation-time veg designation into one or two item
// specs. "Both" expands into a Veg and a Non-Veg variant with suffixed names;
// a binary flag passes through as a single spec. Sizes are copied so the
// specs share no storage with the input.
func ExpandItem(name string, sizes []string, flag string) []ItemSpec {
	if strings.EqualFold(flag, "Both") {
		return []ItemSpec{
			{Name: name + " (Veg)", Sizes: cloneSizes(sizes), Veg: Veg},
			{Name: name + " (Non-Veg)", Sizes: cloneSizes(sizes), Veg: NonVeg},
		}
	}
	v, ok := ParseVegFlag(flag)
	if !ok {
		v = Veg
	}
	return []ItemSpec{{Name: name, Sizes: cloneSizes(sizes), Veg: v}}
}

func cloneSizes(sizes []string) []string {
	out := make([]string, len(sizes))
	copy(out, sizes)
	return out
}
