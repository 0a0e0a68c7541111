// Package sqlite contains SQLite implementations of the repository
// interfaces in ports/secondary.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Blessan-Alex/street-feast-rom/internal/ports/secondary"
)

// ErrNotFound is the repository miss sentinel shared with the port layer.
var ErrNotFound = secondary.ErrNotFound

// CategoryRepository implements secondary.CategoryRepository with SQLite.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new SQLite category repository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create persists a new category.
// The record must have ID and timestamps pre-populated by the service layer.
func (r *CategoryRepository) Create(ctx context.Context, category *secondary.CategoryRecord) error {
	if category.ID == "" {
		return fmt.Errorf("category ID must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (id, name, active, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		category.ID, category.Name, category.Active, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*secondary.CategoryRecord, error) {
	return r.getOne(ctx, "SELECT id, name, active, created_at, updated_at FROM categories WHERE id = ?", id)
}

// GetByName retrieves a category by its exact name.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*secondary.CategoryRecord, error) {
	return r.getOne(ctx, "SELECT id, name, active, created_at, updated_at FROM categories WHERE name = ?", name)
}

func (r *CategoryRepository) getOne(ctx context.Context, query string, arg any) (*secondary.CategoryRecord, error) {
	record := &secondary.CategoryRecord{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&record.ID, &record.Name, &record.Active, &record.CreatedAt, &record.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return record, nil
}

// Update updates an existing category.
func (r *CategoryRepository) Update(ctx context.Context, category *secondary.CategoryRecord) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, active = ?, updated_at = ? WHERE id = ?",
		category.Name, category.Active, category.UpdatedAt, category.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// Delete removes a category. Items cascade via the foreign key.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// List retrieves categories, oldest first so menu ordering is stable.
func (r *CategoryRepository) List(ctx context.Context, filters secondary.CategoryFilters) ([]*secondary.CategoryRecord, error) {
	query := "SELECT id, name, active, created_at, updated_at FROM categories"
	if !filters.IncludeInactive {
		query += " WHERE active = 1"
	}
	query += " ORDER BY created_at ASC, name ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var records []*secondary.CategoryRecord
	for rows.Next() {
		record := &secondary.CategoryRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Active, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// CountItems returns the number of items owned by a category.
func (r *CategoryRepository) CountItems(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM items WHERE category_id = ?", categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

// DeleteAll removes every category; items cascade with them.
func (r *CategoryRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM categories"); err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	return nil
}
