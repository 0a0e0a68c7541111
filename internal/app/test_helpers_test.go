package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Blessan-Alex/street-feast-rom/internal/ports/secondary"
)

// Ensure the mocks implement the interfaces.
var (
	_ secondary.OrderRepository    = (*mockOrderRepo)(nil)
	_ secondary.CategoryRepository = (*mockCategoryRepo)(nil)
	_ secondary.ItemRepository     = (*mockItemRepo)(nil)
	_ secondary.CounterStore       = (*mockCounterStore)(nil)
	_ secondary.KVStore            = (*mockKVStore)(nil)
)

// mockKVStore implements secondary.KVStore in memory.
type mockKVStore struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{data: make(map[string][]byte)}
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.data[key], nil
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockKVStore) Remove(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// mockCounterStore implements secondary.CounterStore in memory.
type mockCounterStore struct {
	values  map[string]int
	nextErr error
}

func newMockCounterStore() *mockCounterStore {
	return &mockCounterStore{values: make(map[string]int)}
}

func (m *mockCounterStore) Next(ctx context.Context, name string, seed int) (int, error) {
	if m.nextErr != nil {
		return 0, m.nextErr
	}
	if _, ok := m.values[name]; !ok {
		m.values[name] = seed
	}
	m.values[name]++
	return m.values[name], nil
}

func (m *mockCounterStore) Reset(ctx context.Context, name string) error {
	delete(m.values, name)
	return nil
}

// mockOrderRepo implements secondary.OrderRepository in memory.
type mockOrderRepo struct {
	orders    map[string]*secondary.OrderRecord
	createErr error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*secondary.OrderRecord)}
}

func cloneOrderRecord(r *secondary.OrderRecord) *secondary.OrderRecord {
	out := *r
	out.Items = make([]secondary.OrderItemRecord, len(r.Items))
	copy(out.Items, r.Items)
	return &out
}

func (m *mockOrderRepo) Create(ctx context.Context, order *secondary.OrderRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if order.ID == "" {
		return fmt.Errorf("order ID must be pre-populated")
	}
	for _, existing := range m.orders {
		if existing.Number == order.Number {
			return fmt.Errorf("duplicate order number %d", order.Number)
		}
	}
	m.orders[order.ID] = cloneOrderRecord(order)
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*secondary.OrderRecord, error) {
	record, ok := m.orders[id]
	if !ok {
		return nil, secondary.ErrNotFound
	}
	return cloneOrderRecord(record), nil
}

func (m *mockOrderRepo) List(ctx context.Context, filters secondary.OrderFilters) ([]*secondary.OrderRecord, error) {
	var records []*secondary.OrderRecord
	for _, record := range m.orders {
		if filters.Status != "" && filters.Status != "All" && record.Status != filters.Status {
			continue
		}
		records = append(records, cloneOrderRecord(record))
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].Number > records[j].Number
	})
	if filters.Limit > 0 && len(records) > filters.Limit {
		records = records[:filters.Limit]
	}
	return records, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id string, status string, updatedAt time.Time) error {
	record, ok := m.orders[id]
	if !ok {
		return secondary.ErrNotFound
	}
	record.Status = status
	record.UpdatedAt = updatedAt
	return nil
}

func (m *mockOrderRepo) AppendItems(ctx context.Context, id string, items []secondary.OrderItemRecord, updatedAt time.Time) error {
	record, ok := m.orders[id]
	if !ok {
		return secondary.ErrNotFound
	}
	record.Items = append(record.Items, items...)
	record.UpdatedAt = updatedAt
	return nil
}

func (m *mockOrderRepo) DeleteAll(ctx context.Context) error {
	m.orders = make(map[string]*secondary.OrderRecord)
	return nil
}

// mockCategoryRepo implements secondary.CategoryRepository in memory.
type mockCategoryRepo struct {
	categories map[string]*secondary.CategoryRecord
	itemCounts map[string]int
	createErr  error
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]*secondary.CategoryRecord)}
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *secondary.CategoryRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	clone := *category
	m.categories[category.ID] = &clone
	return nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*secondary.CategoryRecord, error) {
	record, ok := m.categories[id]
	if !ok {
		return nil, secondary.ErrNotFound
	}
	clone := *record
	return &clone, nil
}

func (m *mockCategoryRepo) GetByName(ctx context.Context, name string) (*secondary.CategoryRecord, error) {
	for _, record := range m.categories {
		if record.Name == name {
			clone := *record
			return &clone, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *secondary.CategoryRecord) error {
	clone := *category
	m.categories[category.ID] = &clone
	return nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepo) List(ctx context.Context, filters secondary.CategoryFilters) ([]*secondary.CategoryRecord, error) {
	var records []*secondary.CategoryRecord
	for _, record := range m.categories {
		if !filters.IncludeInactive && !record.Active {
			continue
		}
		clone := *record
		records = append(records, &clone)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

func (m *mockCategoryRepo) CountItems(ctx context.Context, categoryID string) (int, error) {
	return m.itemCounts[categoryID], nil
}

func (m *mockCategoryRepo) DeleteAll(ctx context.Context) error {
	m.categories = make(map[string]*secondary.CategoryRecord)
	return nil
}

// mockItemRepo implements secondary.ItemRepository in memory.
type mockItemRepo struct {
	items     map[string]*secondary.ItemRecord
	createErr error
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{items: make(map[string]*secondary.ItemRecord)}
}

func (m *mockItemRepo) Create(ctx context.Context, item *secondary.ItemRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	clone := *item
	m.items[item.ID] = &clone
	return nil
}

func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*secondary.ItemRecord, error) {
	record, ok := m.items[id]
	if !ok {
		return nil, secondary.ErrNotFound
	}
	clone := *record
	return &clone, nil
}

func (m *mockItemRepo) Update(ctx context.Context, item *secondary.ItemRecord) error {
	clone := *item
	m.items[item.ID] = &clone
	return nil
}

func (m *mockItemRepo) List(ctx context.Context, filters secondary.ItemFilters) ([]*secondary.ItemRecord, error) {
	var records []*secondary.ItemRecord
	for _, record := range m.items {
		if filters.CategoryID != "" && record.CategoryID != filters.CategoryID {
			continue
		}
		if !filters.IncludeInactive && !record.Active {
			continue
		}
		clone := *record
		records = append(records, &clone)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}
