// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup goes through setupTestDB, which uses
// db.GetSchemaSQL() so tests can never drift from the authoritative schema.
// Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Blessan-Alex/street-feast-rom/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// testTime is a fixed timestamp shared across repository tests.
var testTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// seedCategory inserts a test category and returns its ID.
func seedCategory(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "cat-001"
	}
	if name == "" {
		name = "Test Category"
	}
	_, err := db.Exec(
		"INSERT INTO categories (id, name, active, created_at, updated_at) VALUES (?, ?, 1, ?, ?)",
		id, name, testTime, testTime,
	)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return id
}

// seedItem inserts a test item and returns its ID.
func seedItem(t *testing.T, db *sql.DB, id, categoryID, name string) string {
	t.Helper()
	if id == "" {
		id = "item-001"
	}
	if name == "" {
		name = "Test Item"
	}
	_, err := db.Exec(
		"INSERT INTO items (id, category_id, name, sizes, veg, active, created_at, updated_at) VALUES (?, ?, ?, '[]', 'Veg', 1, ?, ?)",
		id, categoryID, name, testTime, testTime,
	)
	if err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	return id
}
