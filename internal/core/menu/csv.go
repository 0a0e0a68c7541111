package menu

import (
	"fmt"
	"strings"
)

// Required CSV column headers for a menu upload. Matching is
// case-insensitive and ignores surrounding whitespace.
const (
	HeaderCategory = "Category"
	HeaderItemName = "Item Name"
	HeaderVegFlag  = "Veg / Non-Veg"
	HeaderSizes    = "Portions (Half / Full)"
	HeaderFlavors  = "Flavours / Toppings"
)

var requiredHeaders = []string{
	HeaderCategory,
	HeaderItemName,
	HeaderVegFlag,
	HeaderSizes,
	HeaderFlavors,
}

// CSVRow is one validated menu upload row. Veg holds "Veg", "NonVeg" or
// "Both" ("Both" is expanded later by ExpandItem). Err is empty for a clean
// row.
type CSVRow struct {
	Category string
	ItemName string
	Sizes    []string
	Veg      string
	Flavors  string
	Err      string
}

// CSVResult is the outcome of validating a whole upload.
type CSVResult struct {
	Valid  bool
	Rows   []CSVRow
	Errors []string
}

// ValidateCSV validates a parsed menu upload: headers first, then each data
// row. Rows keep their errors individually so the UI can show a row-by-row
// report; Valid is false if any row or file-level error exists.
func ValidateCSV(headers []string, records [][]string) CSVResult {
	if len(records) == 0 {
		return CSVResult{Errors: []string{"CSV file is empty"}}
	}

	idx, missing := headerIndex(headers)
	if len(missing) > 0 {
		return CSVResult{
			Errors: []string{"Missing required headers: " + strings.Join(missing, ", ")},
		}
	}

	result := CSVResult{Valid: true}
	for i, rec := range records {
		rowNum := i + 1
		row := CSVRow{
			Category: field(rec, idx[HeaderCategory]),
			ItemName: field(rec, idx[HeaderItemName]),
			Flavors:  field(rec, idx[HeaderFlavors]),
		}

		if row.Category == "" {
			row.Err = fmt.Sprintf("Row %d: Category is required", rowNum)
		} else if row.ItemName == "" {
			row.Err = fmt.Sprintf("Row %d: Item Name is required", rowNum)
		}

		row.Veg = parseVegInput(field(rec, idx[HeaderVegFlag]), row.ItemName, row.Category)
		row.Sizes = ParseSizes(field(rec, idx[HeaderSizes]))

		if row.Err != "" {
			result.Valid = false
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}

// ParseSizes splits a raw portion string into clean size labels. Accepts
// comma or slash separated values, trims whitespace and strips quotes.
// A blank input means the item has no size variants.
func ParseSizes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var sizes []string
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '/' }) {
		s := strings.TrimSpace(part)
		s = strings.ReplaceAll(s, `'`, "")
		s = strings.ReplaceAll(s, `"`, "")
		if s != "" {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

// parseVegInput maps the raw veg column to "Veg", "NonVeg" or "Both".
// A cell naming both kinds ("Veg / Non Veg") means Both; a blank or
// unrecognized value falls back to keyword inference.
func parseVegInput(raw, itemName, category string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case v == "":
		return string(InferVegFlag(itemName, category))
	case v == "both":
		return "Both"
	case strings.Contains(v, "veg") && strings.Contains(v, "non"):
		if v == "non veg" || v == "non-veg" || v == "nonveg" {
			return string(NonVeg)
		}
		return "Both"
	case strings.Contains(v, "non"):
		return string(NonVeg)
	case strings.Contains(v, "veg"):
		return string(Veg)
	default:
		return string(InferVegFlag(itemName, category))
	}
}

func headerIndex(headers []string) (map[string]int, []string) {
	idx := make(map[string]int, len(requiredHeaders))
	for _, req := range requiredHeaders {
		found := -1
		for i, h := range headers {
			if strings.EqualFold(strings.TrimSpace(strings.Trim(h, "\r")), req) {
				found = i
				break
			}
		}
		idx[req] = found
	}
	var missing []string
	for _, req := range requiredHeaders {
		if idx[req] < 0 {
			missing = append(missing, req)
		}
	}
	return idx, missing
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
