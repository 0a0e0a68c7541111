// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// the local store.
package secondary

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by repository lookups that match no row.
var ErrNotFound = errors.New("not found")

// CategoryRepository defines the secondary port for category persistence.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *CategoryRecord) error

	// GetByID retrieves a category by its ID.
	GetByID(ctx context.Context, id string) (*CategoryRecord, error)

	// GetByName retrieves a category by its exact name.
	GetByName(ctx context.Context, name string) (*CategoryRecord, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *CategoryRecord) error

	// Delete removes a category. Item rows cascade with it.
	Delete(ctx context.Context, id string) error

	// List retrieves categories matching the given filters.
	List(ctx context.Context, filters CategoryFilters) ([]*CategoryRecord, error)

	// CountItems returns the number of items owned by a category.
	CountItems(ctx context.Context, categoryID string) (int, error)

	// DeleteAll removes every category (and, via cascade, every item).
	// Used by menu reset.
	DeleteAll(ctx context.Context) error
}

// CategoryRecord represents a category as stored in persistence.
type CategoryRecord struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryFilters contains filter options for querying categories.
type CategoryFilters struct {
	IncludeInactive bool
}

// ItemRepository defines the secondary port for menu item persistence.
type ItemRepository interface {
	// Create persists a new menu item.
	Create(ctx context.Context, item *ItemRecord) error

	// GetByID retrieves an item by its ID.
	GetByID(ctx context.Context, id string) (*ItemRecord, error)

	// Update updates an existing item.
	Update(ctx context.Context, item *ItemRecord) error

	// List retrieves items matching the given filters.
	List(ctx context.Context, filters ItemFilters) ([]*ItemRecord, error)
}

// ItemRecord represents a menu item as stored in persistence.
// Sizes is an ordered list of size labels; empty means no size variants.
type ItemRecord struct {
	ID         string
	CategoryID string
	Name       string
	Sizes      []string
	Veg        string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ItemFilters contains filter options for querying items.
type ItemFilters struct {
	CategoryID      string
	IncludeInactive bool
}

// OrderRepository defines the secondary port for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its item snapshots as a
	// single transaction; a partial order is never written.
	Create(ctx context.Context, order *OrderRecord) error

	// GetByID retrieves an order with its items.
	GetByID(ctx context.Context, id string) (*OrderRecord, error)

	// List retrieves orders (with items) matching the given filters,
	// newest first.
	List(ctx context.Context, filters OrderFilters) ([]*OrderRecord, error)

	// UpdateStatus sets an order's status and updated_at.
	UpdateStatus(ctx context.Context, id string, status string, updatedAt time.Time) error

	// AppendItems appends item snapshots to an existing order and bumps
	// updated_at, as a single transaction.
	AppendItems(ctx context.Context, id string, items []OrderItemRecord, updatedAt time.Time) error

	// DeleteAll removes every order and its items. Used by order reset.
	DeleteAll(ctx context.Context) error
}

// OrderRecord represents an order as stored in persistence.
type OrderRecord struct {
	ID        string
	Number    int
	Type      string
	ChefNote  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []OrderItemRecord
}

// OrderItemRecord is an order line snapshot as stored in persistence.
type OrderItemRecord struct {
	ID     string
	ItemID string
	Name   string
	Veg    string
	Size   string
	Note   string
	Qty    int
}

// OrderFilters contains filter options for querying orders.
type OrderFilters struct {
	Status string // empty or "All" means no filter
	Limit  int
}

// CounterStore defines the secondary port for monotonic counters.
type CounterStore interface {
	// Next atomically increments the named counter and returns the new
	// value, installing seed on first use so the first returned value is
	// seed+1. The read-increment-write is a single storage operation, so
	// two rapid calls can never issue the same number.
	Next(ctx context.Context, name string, seed int) (int, error)

	// Reset removes the named counter so it reseeds on next use.
	Reset(ctx context.Context, name string) error
}

// KVStore defines the secondary port for opaque keyed records: the draft and
// the login session are stored as serialized bytes.
type KVStore interface {
	// Get returns the value for key, or nil with no error when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
