package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedMenu populates the database with the starter menu: three categories
// and a handful of items covering sized, unsized, veg and non-veg cases.
// Existing rows with the same IDs are replaced, so seeding is idempotent.
func SeedMenu(database *sql.DB) error {
	now := time.Now()

	categories := []struct{ id, name string }{
		{"seed-cat-1", "Chinese"},
		{"seed-cat-2", "Indian"},
		{"seed-cat-3", "Desserts"},
	}
	for _, c := range categories {
		if _, err := database.Exec(
			"INSERT OR REPLACE INTO categories (id, name, active, created_at, updated_at) VALUES (?, ?, 1, ?, ?)",
			c.id, c.name, now, now,
		); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}

	items := []struct{ id, categoryID, name, sizes, veg string }{
		{"seed-item-1", "seed-cat-1", "Chicken Soup", `["Small","Large"]`, "NonVeg"},
		{"seed-item-2", "seed-cat-1", "Spring Rolls", `[]`, "Veg"},
		{"seed-item-3", "seed-cat-2", "Paneer Tikka", `["Small","Large"]`, "Veg"},
		{"seed-item-4", "seed-cat-2", "Butter Chicken", `["Small","Large"]`, "NonVeg"},
		{"seed-item-5", "seed-cat-3", "Chocolate Cake", `[]`, "Veg"},
		{"seed-item-6", "seed-cat-3", "Ice Cream", `["Small","Large"]`, "Veg"},
	}
	for _, i := range items {
		if _, err := database.Exec(
			"INSERT OR REPLACE INTO items (id, category_id, name, sizes, veg, active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, 1, ?, ?)",
			i.id, i.categoryID, i.name, i.sizes, i.veg, now, now,
		); err != nil {
			return fmt.Errorf("seed items: %w", err)
		}
	}

	return nil
}
