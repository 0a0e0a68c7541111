package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Blessan-Alex/street-feast-rom/internal/ports/secondary"
)

// ItemRepository implements secondary.ItemRepository with SQLite.
// Size labels are stored as a JSON array in the sizes column.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new SQLite item repository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create persists a new menu item.
func (r *ItemRepository) Create(ctx context.Context, item *secondary.ItemRecord) error {
	if item.ID == "" {
		return fmt.Errorf("item ID must be pre-populated by service layer")
	}

	sizes, err := marshalSizes(item.Sizes)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO items (id, category_id, name, sizes, veg, active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.CategoryID, item.Name, sizes, item.Veg, item.Active, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// GetByID retrieves an item by its ID.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*secondary.ItemRecord, error) {
	record := &secondary.ItemRecord{}
	var sizes string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, category_id, name, sizes, veg, active, created_at, updated_at FROM items WHERE id = ?",
		id,
	).Scan(&record.ID, &record.CategoryID, &record.Name, &sizes, &record.Veg, &record.Active, &record.CreatedAt, &record.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if record.Sizes, err = unmarshalSizes(sizes); err != nil {
		return nil, err
	}
	return record, nil
}

// Update updates an existing item.
func (r *ItemRepository) Update(ctx context.Context, item *secondary.ItemRecord) error {
	sizes, err := marshalSizes(item.Sizes)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		"UPDATE items SET name = ?, sizes = ?, veg = ?, active = ?, updated_at = ? WHERE id = ?",
		item.Name, sizes, item.Veg, item.Active, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

// List retrieves items matching the given filters, oldest first.
func (r *ItemRepository) List(ctx context.Context, filters secondary.ItemFilters) ([]*secondary.ItemRecord, error) {
	query := "SELECT id, category_id, name, sizes, veg, active, created_at, updated_at FROM items"
	var conds []string
	var args []any

	if filters.CategoryID != "" {
		conds = append(conds, "category_id = ?")
		args = append(args, filters.CategoryID)
	}
	if !filters.IncludeInactive {
		conds = append(conds, "active = 1")
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at ASC, name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ItemRecord
	for rows.Next() {
		record := &secondary.ItemRecord{}
		var sizes string
		if err := rows.Scan(&record.ID, &record.CategoryID, &record.Name, &sizes, &record.Veg, &record.Active, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		if record.Sizes, err = unmarshalSizes(sizes); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func marshalSizes(sizes []string) (string, error) {
	if sizes == nil {
		sizes = []string{}
	}
	data, err := json.Marshal(sizes)
	if err != nil {
		return "", fmt.Errorf("failed to encode sizes: %w", err)
	}
	return string(data), nil
}

func unmarshalSizes(raw string) ([]string, error) {
	var sizes []string
	if err := json.Unmarshal([]byte(raw), &sizes); err != nil {
		return nil, fmt.Errorf("failed to decode sizes: %w", err)
	}
	if len(sizes) == 0 {
		return nil, nil
	}
	return sizes, nil
}
