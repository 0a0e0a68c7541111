package primary

import (
	"context"
	"errors"
	"time"
)

// ErrCategoryNotFound is returned when a category ID does not resolve.
var ErrCategoryNotFound = errors.New("category not found")

// ErrItemNotFound is returned when a menu item ID does not resolve.
var ErrItemNotFound = errors.New("menu item not found")

// MenuService defines the primary port for catalog management.
type MenuService interface {
	// CreateCategory creates a new active category.
	CreateCategory(ctx context.Context, name string) (*Category, error)

	// GetCategory retrieves a category by ID.
	GetCategory(ctx context.Context, id string) (*Category, error)

	// ListCategories retrieves categories, active only by default.
	ListCategories(ctx context.Context, includeInactive bool) ([]*Category, error)

	// UpdateCategory renames or toggles a category.
	UpdateCategory(ctx context.Context, req UpdateCategoryRequest) (*Category, error)

	// DeleteCategory removes a category and cascades to its items.
	// A non-empty category requires Force.
	DeleteCategory(ctx context.Context, req DeleteCategoryRequest) error

	// CreateItem creates one or two items: a "Both" veg flag expands into
	// a Veg and a Non-Veg variant.
	CreateItem(ctx context.Context, req CreateItemRequest) ([]*Item, error)

	// GetItem retrieves a menu item by ID.
	GetItem(ctx context.Context, id string) (*Item, error)

	// ListItems retrieves items, optionally scoped to a category.
	ListItems(ctx context.Context, req ListItemsRequest) ([]*Item, error)

	// UpdateItem applies a partial update to a menu item.
	UpdateItem(ctx context.Context, req UpdateItemRequest) (*Item, error)

	// ImportCSV validates an uploaded menu CSV and, when apply is set and
	// validation passes, creates the categories and items it describes.
	ImportCSV(ctx context.Context, req ImportCSVRequest) (*ImportCSVResult, error)

	// ResetMenu removes every category and item.
	ResetMenu(ctx context.Context) error
}

// Category is a menu category as exposed to callers.
type Category struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is a menu item as exposed to callers.
type Item struct {
	ID         string
	CategoryID string
	Name       string
	Sizes      []string
	Veg        string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UpdateCategoryRequest carries a partial category update. Nil fields are
// left unchanged.
type UpdateCategoryRequest struct {
	CategoryID string
	Name       *string
	Active     *bool
}

// DeleteCategoryRequest names the category to delete.
type DeleteCategoryRequest struct {
	CategoryID string
	Force      bool
}

// CreateItemRequest describes an item to create. Veg accepts "Veg",
// "NonVeg" or "Both" ("Both" expands into two items).
type CreateItemRequest struct {
	CategoryID string
	Name       string
	Sizes      []string
	Veg        string
}

// ListItemsRequest contains filter options for listing items.
type ListItemsRequest struct {
	CategoryID      string
	IncludeInactive bool
}

// UpdateItemRequest carries a partial item update. Nil fields are left
// unchanged.
type UpdateItemRequest struct {
	ItemID string
	Name   *string
	Sizes  *[]string
	Veg    *string
	Active *bool
}

// ImportCSVRequest carries a parsed CSV upload. Headers is the header row;
// Records are the data rows in file order. Apply false means validate only.
type ImportCSVRequest struct {
	Headers []string
	Records [][]string
	Apply   bool
}

// ImportCSVResult reports validation findings and, when applied, what was
// created.
type ImportCSVResult struct {
	Valid             bool
	Errors            []string // file-level errors (missing headers, empty file)
	RowErrors         []string // per-row validation errors
	RowCount          int
	Applied           bool
	CategoriesCreated int
	ItemsCreated      int
}
