package menu

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

// DeleteCategoryContext provides context for category deletion guards.
// Populated by the caller with a pre-fetched item count.
type DeleteCategoryContext struct {
	CategoryID  string
	ItemCount   int
	ForceDelete bool
}

// CanDeleteCategory evaluates whether a category can be deleted.
// Rule: deleting a category cascades to its items, so a non-empty category
// requires the --force flag.
func CanDeleteCategory(ctx DeleteCategoryContext) GuardResult {
	if ctx.ItemCount > 0 && !ctx.ForceDelete {
		return GuardResult{
			Allowed: false,
			Reason: fmt.Sprintf("Category %s has %d items which will be deleted with it. Use --force to delete anyway",
				ctx.CategoryID, ctx.ItemCount),
		}
	}
	return GuardResult{Allowed: true}
}

// CreateItemContext provides context for item creation guards.
type CreateItemContext struct {
	Name           string
	CategoryExists bool
	CategoryID     string
}

// CanCreateItem evaluates whether an item can be created.
// Rules: the item needs a name and its owning category must exist.
func CanCreateItem(ctx CreateItemContext) GuardResult {
	if ctx.Name == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "Item name is required",
		}
	}
	if !ctx.CategoryExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Category %s not found", ctx.CategoryID),
		}
	}
	return GuardResult{Allowed: true}
}

// CanCreateCategory evaluates whether a category can be created.
// Rule: a category needs a non-empty name.
func CanCreateCategory(name string) GuardResult {
	if name == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "Category name is required",
		}
	}
	return GuardResult{Allowed: true}
}
