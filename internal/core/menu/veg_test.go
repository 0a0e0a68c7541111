package menu

import "testing"

func TestParseVegFlag(t *testing.T) {
	tests := []struct {
		in     string
		want   VegFlag
		wantOK bool
	}{
		{"Veg", Veg, true},
		{"NonVeg", NonVeg, true},
		{"Both", "", false}, // tri-state never reaches storage
		{"veg", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseVegFlag(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseVegFlag(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestInferVegFlag(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		category string
		want     VegFlag
	}{
		{"chicken wins", "Chicken Soup", "Chinese", NonVeg},
		{"paneer is veg", "Paneer Tikka", "Indian", Veg},
		{"non-veg keyword beats veg keyword", "Chicken Burger", "Fast Food", NonVeg},
		{"category keyword counts", "Special Platter", "Fish Corner", NonVeg},
		{"case insensitive", "EGG Fried Rice", "Chinese", NonVeg},
		{"no keyword defaults to veg", "Mystery Special", "House", Veg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferVegFlag(tt.itemName, tt.category); got != tt.want {
				t.Errorf("InferVegFlag(%q, %q) = %q, want %q", tt.itemName, tt.category, got, tt.want)
			}
		})
	}
}

func TestExpandItem(t *testing.T) {
	t.Run("both expands into two variants", func(t *testing.T) {
		specs := ExpandItem("Momos", []string{"Half", "Full"}, "Both")
		if len(specs) != 2 {
			t.Fatalf("got %d specs, want 2", len(specs))
		}
		if specs[0].Name != "Momos (Veg)" || specs[0].Veg != Veg {
			t.Errorf("first spec = %+v", specs[0])
		}
		if specs[1].Name != "Momos (Non-Veg)" || specs[1].Veg != NonVeg {
			t.Errorf("second spec = %+v", specs[1])
		}
	})

	t.Run("binary flag passes through", func(t *testing.T) {
		specs := ExpandItem("Spring Rolls", nil, "Veg")
		if len(specs) != 1 {
			t.Fatalf("got %d specs, want 1", len(specs))
		}
		if specs[0].Name != "Spring Rolls" || specs[0].Veg != Veg {
			t.Errorf("spec = %+v", specs[0])
		}
	})

	t.Run("sizes are copied not shared", func(t *testing.T) {
		sizes := []string{"Half", "Full"}
		specs := ExpandItem("Momos", sizes, "Both")
		sizes[0] = "mutated"
		if specs[0].Sizes[0] != "Half" {
			t.Errorf("spec sizes share storage with input: %v", specs[0].Sizes)
		}
	})

	t.Run("unknown flag defaults to veg", func(t *testing.T) {
		specs := ExpandItem("Salad", nil, "whatever")
		if len(specs) != 1 || specs[0].Veg != Veg {
			t.Errorf("specs = %+v", specs)
		}
	})
}
