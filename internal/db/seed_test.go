package db

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openSeedTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := database.Exec(GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func TestSeedMenu(t *testing.T) {
	database := openSeedTestDB(t)

	if err := SeedMenu(database); err != nil {
		t.Fatalf("SeedMenu failed: %v", err)
	}

	var categories, items int
	if err := database.QueryRow("SELECT COUNT(*) FROM categories").Scan(&categories); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if err := database.QueryRow("SELECT COUNT(*) FROM items").Scan(&items); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if categories != 3 {
		t.Errorf("expected 3 seed categories, got %d", categories)
	}
	if items != 6 {
		t.Errorf("expected 6 seed items, got %d", items)
	}
}

func TestSeedMenu_Idempotent(t *testing.T) {
	database := openSeedTestDB(t)

	if err := SeedMenu(database); err != nil {
		t.Fatalf("first SeedMenu failed: %v", err)
	}
	if err := SeedMenu(database); err != nil {
		t.Fatalf("second SeedMenu failed: %v", err)
	}

	var items int
	if err := database.QueryRow("SELECT COUNT(*) FROM items").Scan(&items); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if items != 6 {
		t.Errorf("expected 6 items after reseeding, got %d", items)
	}
}
