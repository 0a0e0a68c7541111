package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// CounterStore implements secondary.CounterStore with SQLite.
//
// Next is a single upsert statement, so the read-increment-write can never
// interleave with another allocation: two rapid calls always get distinct,
// consecutive values.
type CounterStore struct {
	db *sql.DB
}

// NewCounterStore creates a new SQLite counter store.
func NewCounterStore(db *sql.DB) *CounterStore {
	return &CounterStore{db: db}
}

// Next atomically increments the named counter and returns the new value.
// On first use the counter is installed at seed+1, so with seed 1000 the
// first issued number is 1001.
func (s *CounterStore) Next(ctx context.Context, name string, seed int) (int, error) {
	var value int
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO counters (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = value + 1
		 RETURNING value`,
		name, seed+1,
	).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("failed to advance counter %s: %w", name, err)
	}
	return value, nil
}

// Reset removes the named counter so it reseeds on next use.
func (s *CounterStore) Reset(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM counters WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to reset counter %s: %w", name, err)
	}
	return nil
}
