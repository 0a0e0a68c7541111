package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Blessan-Alex/street-feast-rom/internal/ports/primary"
)

// mockMenuService implements primary.MenuService for testing.
type mockMenuService struct {
	createItemFn func(ctx context.Context, req primary.CreateItemRequest) ([]*primary.Item, error)
	importCSVFn  func(ctx context.Context, req primary.ImportCSVRequest) (*primary.ImportCSVResult, error)
	listItemsFn  func(ctx context.Context, req primary.ListItemsRequest) ([]*primary.Item, error)

	lastDeleteReq primary.DeleteCategoryRequest
}

func (m *mockMenuService) CreateCategory(ctx context.Context, name string) (*primary.Category, error) {
	return &primary.Category{ID: "cat-1", Name: name, Active: true}, nil
}

func (m *mockMenuService) GetCategory(ctx context.Context, id string) (*primary.Category, error) {
	return &primary.Category{ID: id, Name: "Chinese", Active: true}, nil
}

func (m *mockMenuService) ListCategories(ctx context.Context, includeInactive bool) ([]*primary.Category, error) {
	return []*primary.Category{}, nil
}

func (m *mockMenuService) UpdateCategory(ctx context.Context, req primary.UpdateCategoryRequest) (*primary.Category, error) {
	return &primary.Category{ID: req.CategoryID, Name: "Chinese", Active: true}, nil
}

func (m *mockMenuService) DeleteCategory(ctx context.Context, req primary.DeleteCategoryRequest) error {
	m.lastDeleteReq = req
	return nil
}

func (m *mockMenuService) CreateItem(ctx context.Context, req primary.CreateItemRequest) ([]*primary.Item, error) {
	if m.createItemFn != nil {
		return m.createItemFn(ctx, req)
	}
	return []*primary.Item{{ID: "item-1", Name: req.Name, Veg: req.Veg}}, nil
}

func (m *mockMenuService) GetItem(ctx context.Context, id string) (*primary.Item, error) {
	return &primary.Item{ID: id, Name: "Spring Rolls", Veg: "Veg"}, nil
}

func (m *mockMenuService) ListItems(ctx context.Context, req primary.ListItemsRequest) ([]*primary.Item, error) {
	if m.listItemsFn != nil {
		return m.listItemsFn(ctx, req)
	}
	return []*primary.Item{}, nil
}

func (m *mockMenuService) UpdateItem(ctx context.Context, req primary.UpdateItemRequest) (*primary.Item, error) {
	return &primary.Item{ID: req.ItemID, Name: "Spring Rolls", Veg: "Veg"}, nil
}

func (m *mockMenuService) ImportCSV(ctx context.Context, req primary.ImportCSVRequest) (*primary.ImportCSVResult, error) {
	if m.importCSVFn != nil {
		return m.importCSVFn(ctx, req)
	}
	return &primary.ImportCSVResult{Valid: true, RowCount: len(req.Records), Applied: req.Apply}, nil
}

func (m *mockMenuService) ResetMenu(ctx context.Context) error {
	return nil
}

func TestMenuAdapter_CreateItem_BothPrintsBothVariants(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockMenuService{
		createItemFn: func(ctx context.Context, req primary.CreateItemRequest) ([]*primary.Item, error) {
			return []*primary.Item{
				{ID: "item-1", Name: "Momos (Veg)", Veg: "Veg"},
				{ID: "item-2", Name: "Momos (Non-Veg)", Veg: "NonVeg"},
			}, nil
		},
	}
	adapter := NewMenuAdapter(mock, &buf)

	err := adapter.CreateItem(context.Background(), primary.CreateItemRequest{CategoryID: "cat-1", Name: "Momos", Veg: "Both"})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Momos (Veg)") || !strings.Contains(out, "Momos (Non-Veg)") {
		t.Errorf("expected both variants announced, got: %s", out)
	}
}

func TestMenuAdapter_DeleteCategory_PassesForce(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockMenuService{}
	adapter := NewMenuAdapter(mock, &buf)

	if err := adapter.DeleteCategory(context.Background(), "cat-1", true); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	if !mock.lastDeleteReq.Force {
		t.Error("expected force flag passed through")
	}
}

func TestMenuAdapter_ImportCSV_InvalidFileFails(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockMenuService{
		importCSVFn: func(ctx context.Context, req primary.ImportCSVRequest) (*primary.ImportCSVResult, error) {
			return &primary.ImportCSVResult{
				RowErrors: []string{"Row 2: Item Name is required"},
				RowCount:  2,
			}, nil
		},
	}
	adapter := NewMenuAdapter(mock, &buf)

	err := adapter.ImportCSV(context.Background(), []string{"Category"}, [][]string{{"Chinese"}}, true)
	if err == nil {
		t.Fatal("expected error for invalid upload")
	}
	if !strings.Contains(buf.String(), "Row 2: Item Name is required") {
		t.Errorf("expected row error printed, got: %s", buf.String())
	}
}

func TestMenuAdapter_ImportCSV_ValidateOnly(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewMenuAdapter(&mockMenuService{}, &buf)

	err := adapter.ImportCSV(context.Background(), []string{}, [][]string{{"a"}, {"b"}}, false)
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if !strings.Contains(buf.String(), "nothing applied") {
		t.Errorf("expected validate-only message, got: %s", buf.String())
	}
}

func TestMenuAdapter_ListItems_Empty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewMenuAdapter(&mockMenuService{}, &buf)

	if err := adapter.ListItems(context.Background(), "", false); err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No items found") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}
