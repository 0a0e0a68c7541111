package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Blessan-Alex/street-feast-rom/internal/ports/secondary"
)

// OrderRepository implements secondary.OrderRepository with SQLite.
// An order and its item snapshots always move together in one transaction.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new SQLite order repository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order with its items. Either the whole order lands
// or nothing does.
func (r *OrderRepository) Create(ctx context.Context, order *secondary.OrderRecord) error {
	if order.ID == "" {
		return fmt.Errorf("order ID must be pre-populated by service layer")
	}
	if order.Status == "" {
		return fmt.Errorf("order Status must be pre-populated by service layer")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO orders (id, number, type, chef_note, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		order.ID, order.Number, order.Type, order.ChefNote, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err := insertItems(ctx, tx, order.ID, order.Items, 0); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}

// GetByID retrieves an order with its items.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*secondary.OrderRecord, error) {
	record := &secondary.OrderRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, number, type, chef_note, status, created_at, updated_at FROM orders WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Number, &record.Type, &record.ChefNote, &record.Status, &record.CreatedAt, &record.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Items = items
	return record, nil
}

// List retrieves orders newest first, optionally filtered by status.
// "All" behaves like no filter so the CLI can pass the filter through.
func (r *OrderRepository) List(ctx context.Context, filters secondary.OrderFilters) ([]*secondary.OrderRecord, error) {
	query := "SELECT id, number, type, chef_note, status, created_at, updated_at FROM orders"
	var args []any

	if filters.Status != "" && filters.Status != "All" {
		query += " WHERE status = ?"
		args = append(args, filters.Status)
	}
	query += " ORDER BY created_at DESC, number DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var records []*secondary.OrderRecord
	for rows.Next() {
		record := &secondary.OrderRecord{}
		if err := rows.Scan(&record.ID, &record.Number, &record.Type, &record.ChefNote, &record.Status, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, record := range records {
		items, err := r.loadItems(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		record.Items = items
	}
	return records, nil
}

// UpdateStatus sets an order's status and updated_at.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status string, updatedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = ?, updated_at = ? WHERE id = ?",
		status, updatedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check order update: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendItems appends item snapshots to an existing order and bumps
// updated_at in one transaction.
func (r *OrderRepository) AppendItems(ctx context.Context, id string, items []secondary.OrderItemRecord, updatedAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position), -1) + 1 FROM order_items WHERE order_id = ?", id,
	).Scan(&next); err != nil {
		return fmt.Errorf("failed to find append position: %w", err)
	}

	if err := insertItems(ctx, tx, id, items, next); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "UPDATE orders SET updated_at = ? WHERE id = ?", updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to bump order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check order bump: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit append: %w", err)
	}
	return nil
}

// DeleteAll removes every order; items cascade with them.
func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM orders"); err != nil {
		return fmt.Errorf("failed to delete orders: %w", err)
	}
	return nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID string) ([]secondary.OrderItemRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, item_id, name, veg, size, note, qty FROM order_items WHERE order_id = ? ORDER BY position ASC",
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	var items []secondary.OrderItemRecord
	for rows.Next() {
		var item secondary.OrderItemRecord
		if err := rows.Scan(&item.ID, &item.ItemID, &item.Name, &item.Veg, &item.Size, &item.Note, &item.Qty); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func insertItems(ctx context.Context, tx *sql.Tx, orderID string, items []secondary.OrderItemRecord, startPos int) error {
	for i, item := range items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (id, order_id, item_id, name, veg, size, note, qty, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			item.ID, orderID, item.ItemID, item.Name, item.Veg, item.Size, item.Note, item.Qty, startPos+i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}
	return nil
}
