package sqlite_test

import (
	"context"
	"testing"

	"github.com/Blessan-Alex/street-feast-rom/internal/adapters/sqlite"
)

func TestCounterStore_FirstValueIsSeedPlusOne(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewCounterStore(db)

	value, err := store.Next(context.Background(), "order_number", 1000)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if value != 1001 {
		t.Errorf("expected first value 1001, got %d", value)
	}
}

func TestCounterStore_Monotonic(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewCounterStore(db)
	ctx := context.Background()

	prev := 1000
	for i := 0; i < 5; i++ {
		value, err := store.Next(ctx, "order_number", 1000)
		if err != nil {
			t.Fatalf("Next failed on call %d: %v", i+1, err)
		}
		if value != prev+1 {
			t.Errorf("expected %d, got %d", prev+1, value)
		}
		prev = value
	}
}

func TestCounterStore_IndependentCounters(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewCounterStore(db)
	ctx := context.Background()

	if _, err := store.Next(ctx, "order_number", 1000); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if _, err := store.Next(ctx, "order_number", 1000); err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	value, err := store.Next(ctx, "other", 0)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if value != 1 {
		t.Errorf("expected independent counter to start at 1, got %d", value)
	}
}

func TestCounterStore_Reset(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewCounterStore(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.Next(ctx, "order_number", 1000); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
	}

	if err := store.Reset(ctx, "order_number"); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	value, err := store.Next(ctx, "order_number", 1000)
	if err != nil {
		t.Fatalf("Next after Reset failed: %v", err)
	}
	if value != 1001 {
		t.Errorf("expected counter to reseed at 1001, got %d", value)
	}
}

func TestCounterStore_Reset_AbsentCounter(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewCounterStore(db)

	if err := store.Reset(context.Background(), "never_used"); err != nil {
		t.Errorf("Reset of absent counter should not error, got %v", err)
	}
}
