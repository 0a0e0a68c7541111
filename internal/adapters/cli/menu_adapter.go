package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Blessan-Alex/street-feast-rom/internal/ports/primary"
)

// MenuAdapter is a thin adapter that translates CLI operations to
// MenuService calls.
type MenuAdapter struct {
	service primary.MenuService
	out     io.Writer
}

// NewMenuAdapter creates a new MenuAdapter with the given service.
func NewMenuAdapter(service primary.MenuService, out io.Writer) *MenuAdapter {
	return &MenuAdapter{
		service: service,
		out:     out,
	}
}

// CreateCategory creates a new category.
func (a *MenuAdapter) CreateCategory(ctx context.Context, name string) error {
	category, err := a.service.CreateCategory(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created category %s: %s\n", shortID(category.ID), category.Name)
	return nil
}

// ListCategories prints categories with their IDs.
func (a *MenuAdapter) ListCategories(ctx context.Context, includeInactive bool) error {
	categories, err := a.service.ListCategories(ctx, includeInactive)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-38s %-8s %s\n", "ID", "ACTIVE", "NAME")
	fmt.Fprintln(a.out, strings.Repeat("─", 64))
	for _, c := range categories {
		active := "yes"
		if !c.Active {
			active = "no"
		}
		fmt.Fprintf(a.out, "%-38s %-8s %s\n", c.ID, active, c.Name)
	}
	fmt.Fprintln(a.out)
	return nil
}

// UpdateCategory renames and/or toggles a category. An empty name means
// "leave unchanged".
func (a *MenuAdapter) UpdateCategory(ctx context.Context, categoryID, name string, active *bool) error {
	req := primary.UpdateCategoryRequest{CategoryID: categoryID, Active: active}
	if name != "" {
		req.Name = &name
	}

	category, err := a.service.UpdateCategory(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Category %s updated\n", category.Name)
	return nil
}

// DeleteCategory removes a category, cascading to its items.
func (a *MenuAdapter) DeleteCategory(ctx context.Context, categoryID string, force bool) error {
	err := a.service.DeleteCategory(ctx, primary.DeleteCategoryRequest{CategoryID: categoryID, Force: force})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Category %s deleted\n", shortID(categoryID))
	return nil
}

// CreateItem creates one or two items depending on the veg designation.
func (a *MenuAdapter) CreateItem(ctx context.Context, req primary.CreateItemRequest) error {
	items, err := a.service.CreateItem(ctx, req)
	if err != nil {
		return err
	}

	for _, item := range items {
		fmt.Fprintf(a.out, "✓ Created item %s: %s (%s)\n", shortID(item.ID), item.Name, item.Veg)
	}
	return nil
}

// ListItems prints items, optionally scoped to a category.
func (a *MenuAdapter) ListItems(ctx context.Context, categoryID string, includeInactive bool) error {
	items, err := a.service.ListItems(ctx, primary.ListItemsRequest{
		CategoryID:      categoryID,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-38s %-24s %-17s %s\n", "ID", "NAME", "VEG", "SIZES")
	fmt.Fprintln(a.out, strings.Repeat("─", 86))
	for _, item := range items {
		fmt.Fprintf(a.out, "%-38s %-24s %-17s %s\n",
			item.ID, item.Name, vegLabel(item.Veg), strings.Join(item.Sizes, ", "))
	}
	fmt.Fprintln(a.out)
	return nil
}

// UpdateItem applies a partial item update.
func (a *MenuAdapter) UpdateItem(ctx context.Context, req primary.UpdateItemRequest) error {
	item, err := a.service.UpdateItem(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Item %s updated\n", item.Name)
	return nil
}

// ImportCSV validates a menu upload and optionally applies it. The row
// report is printed either way.
func (a *MenuAdapter) ImportCSV(ctx context.Context, headers []string, records [][]string, apply bool) error {
	result, err := a.service.ImportCSV(ctx, primary.ImportCSVRequest{
		Headers: headers,
		Records: records,
		Apply:   apply,
	})
	if err != nil {
		return fmt.Errorf("failed to import menu: %w", err)
	}

	for _, e := range result.Errors {
		fmt.Fprintf(a.out, "✗ %s\n", e)
	}
	for _, e := range result.RowErrors {
		fmt.Fprintf(a.out, "✗ %s\n", e)
	}

	if !result.Valid {
		return fmt.Errorf("menu file is invalid")
	}

	if result.Applied {
		fmt.Fprintf(a.out, "✓ Imported %d rows: %d categories and %d items created\n",
			result.RowCount, result.CategoriesCreated, result.ItemsCreated)
	} else {
		fmt.Fprintf(a.out, "✓ %d rows validated, nothing applied (use --apply to import)\n", result.RowCount)
	}
	return nil
}

// Reset removes every category and item.
func (a *MenuAdapter) Reset(ctx context.Context) error {
	if err := a.service.ResetMenu(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "✓ Menu cleared")
	return nil
}
