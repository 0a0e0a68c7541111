// Package app contains the application services implementing the primary
// ports. Services orchestrate the functional core and the repositories;
// business rules themselves live in internal/core.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Blessan-Alex/street-feast-rom/internal/core/menu"
	"github.com/Blessan-Alex/street-feast-rom/internal/core/order"
	"github.com/Blessan-Alex/street-feast-rom/internal/ports/primary"
	"github.com/Blessan-Alex/street-feast-rom/internal/ports/secondary"
)

// draftKey is the KV slot holding the single in-progress draft.
const draftKey = "order_draft"

// orderCounterName names the monotonic order-number counter. The seed makes
// the first issued number 1001.
const (
	orderCounterName = "order_number"
	orderCounterSeed = 1000
)

// OrderServiceImpl implements the OrderService interface.
type OrderServiceImpl struct {
	orderRepo secondary.OrderRepository
	counters  secondary.CounterStore
	kv        secondary.KVStore
	now       func() time.Time
	newID     func() string
}

// NewOrderService creates a new OrderService with injected dependencies.
func NewOrderService(
	orderRepo secondary.OrderRepository,
	counters secondary.CounterStore,
	kv secondary.KVStore,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
		counters:  counters,
		kv:        kv,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// GetDraft returns the current draft, creating the empty default if none is
// stored yet.
func (s *OrderServiceImpl) GetDraft(ctx context.Context) (*primary.Draft, error) {
	d, err := s.loadDraft(ctx)
	if err != nil {
		return nil, err
	}
	return draftToDTO(d), nil
}

// SetDraftFields shallow-merges type and chef note updates into the draft.
func (s *OrderServiceImpl) SetDraftFields(ctx context.Context, req primary.SetDraftFieldsRequest) (*primary.Draft, error) {
	d, err := s.loadDraft(ctx)
	if err != nil {
		return nil, err
	}

	patch := order.FieldsPatch{ChefNote: req.ChefNote}
	if req.Type != nil {
		typ, ok := order.ParseType(*req.Type)
		if !ok {
			return nil, fmt.Errorf("invalid order type %q", *req.Type)
		}
		patch.Type = &typ
	}

	d = order.ApplyFieldsPatch(d, patch)
	if err := s.saveDraft(ctx, d); err != nil {
		return nil, err
	}
	return draftToDTO(d), nil
}

// AddDraftLine appends a fully-formed line. The caller supplies the menu
// item snapshot; the service assigns the line ID.
func (s *OrderServiceImpl) AddDraftLine(ctx context.Context, req primary.AddDraftLineRequest) (*primary.Draft, error) {
	line, err := s.buildLine(req)
	if err != nil {
		return nil, err
	}

	d, err := s.loadDraft(ctx)
	if err != nil {
		return nil, err
	}

	d = order.AddLine(d, line)
	if err := s.saveDraft(ctx, d); err != nil {
		return nil, err
	}
	return draftToDTO(d), nil
}

// UpdateDraftLine merges a partial update into the matching line. A missing
// line ID is a silent no-op.
func (s *OrderServiceImpl) UpdateDraftLine(ctx context.Context, req primary.UpdateDraftLineRequest) (*primary.Draft, error) {
	if req.Qty != nil && *req.Qty < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	d, err := s.loadDraft(ctx)
	if err != nil {
		return nil, err
	}

	d = order.UpdateLine(d, req.LineID, order.LinePatch{
		Size: req.Size,
		Note: req.Note,
		Qty:  req.Qty,
	})
	if err := s.saveDraft(ctx, d); err != nil {
		return nil, err
	}
	return draftToDTO(d), nil
}

// RemoveDraftLine removes the matching line. A miss is a silent no-op.
func (s *OrderServiceImpl) RemoveDraftLine(ctx context.Context, lineID string) (*primary.Draft, error) {
	d, err := s.loadDraft(ctx)
	if err != nil {
		return nil, err
	}

	d = order.RemoveLine(d, lineID)
	if err := s.saveDraft(ctx, d); err != nil {
		return nil, err
	}
	return draftToDTO(d), nil
}

// ClearDraft resets the draft to the empty default.
func (s *OrderServiceImpl) ClearDraft(ctx context.Context) error {
	if err := s.kv.Remove(ctx, draftKey); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

// PlaceDraft materializes the draft into a numbered order. The order and
// its line snapshots are written in one repository transaction, and the
// draft is cleared only after the write succeeds.
func (s *OrderServiceImpl) PlaceDraft(ctx context.Context) (*primary.PlaceDraftResult, error) {
	d, err := s.loadDraft(ctx)
	if err != nil {
		return nil, err
	}

	if guard := order.CanPlaceDraft(order.PlaceContext{LineCount: len(d.Lines)}); !guard.Allowed {
		return &primary.PlaceDraftResult{Reason: guard.Reason}, nil
	}

	number, err := s.counters.Next(ctx, orderCounterName, orderCounterSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate order number: %w", err)
	}

	placed := order.BuildOrder(d, s.newID(), number, s.now())
	record := placedToRecord(placed)
	if err := s.orderRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err := s.kv.Remove(ctx, draftKey); err != nil {
		return nil, fmt.Errorf("failed to clear draft: %w", err)
	}

	return &primary.PlaceDraftResult{OK: true, Order: recordToOrder(record)}, nil
}

// UpdateStatus applies a lifecycle transition. An illegal transition is a
// rejection result, not an error; the order is left untouched.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, req primary.UpdateStatusRequest) (*primary.UpdateStatusResult, error) {
	target, ok := order.ParseStatus(req.Target)
	if !ok {
		return nil, fmt.Errorf("unknown status %q", req.Target)
	}

	record, err := s.getRecord(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	current, ok := order.ParseStatus(record.Status)
	if !ok {
		return nil, fmt.Errorf("order %s has unknown status %q", record.ID, record.Status)
	}

	if guard := order.CanApplyTransition(current, target); !guard.Allowed {
		return &primary.UpdateStatusResult{Reason: guard.Reason, Order: recordToOrder(record)}, nil
	}

	result := order.ApplyStatusTransition(target, s.now())
	if err := s.orderRepo.UpdateStatus(ctx, record.ID, string(result.NewStatus), result.UpdatedAt); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, primary.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	record.Status = string(result.NewStatus)
	record.UpdatedAt = result.UpdatedAt
	return &primary.UpdateStatusResult{OK: true, Order: recordToOrder(record)}, nil
}

// AddItems appends item snapshots to an existing order. Terminal orders are
// frozen and reject the append.
func (s *OrderServiceImpl) AddItems(ctx context.Context, req primary.AddItemsRequest) (*primary.AddItemsResult, error) {
	record, err := s.getRecord(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	status, ok := order.ParseStatus(record.Status)
	if !ok {
		return nil, fmt.Errorf("order %s has unknown status %q", record.ID, record.Status)
	}

	guard := order.CanAddItems(order.AppendContext{Status: status, ItemCount: len(req.Items)})
	if !guard.Allowed {
		return &primary.AddItemsResult{Reason: guard.Reason, Order: recordToOrder(record)}, nil
	}

	items := make([]secondary.OrderItemRecord, 0, len(req.Items))
	for _, it := range req.Items {
		line, err := s.buildLine(it)
		if err != nil {
			return nil, err
		}
		items = append(items, lineToRecord(line))
	}

	updatedAt := s.now()
	if err := s.orderRepo.AppendItems(ctx, record.ID, items, updatedAt); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, primary.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to add items: %w", err)
	}

	updated, err := s.getRecord(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	return &primary.AddItemsResult{OK: true, Order: recordToOrder(updated)}, nil
}

// GetOrder retrieves a single order by ID.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, orderID string) (*primary.Order, error) {
	record, err := s.getRecord(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return recordToOrder(record), nil
}

// ListOrders retrieves orders newest first, optionally filtered by status.
func (s *OrderServiceImpl) ListOrders(ctx context.Context, filters primary.OrderFilters) ([]*primary.Order, error) {
	records, err := s.orderRepo.List(ctx, secondary.OrderFilters{
		Status: filters.Status,
		Limit:  filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*primary.Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, recordToOrder(record))
	}
	return orders, nil
}

// ResetOrders clears all orders and the draft. The order-number counter
// keeps its position unless resetCounter is set, so numbers are never
// reused by accident.
func (s *OrderServiceImpl) ResetOrders(ctx context.Context, resetCounter bool) error {
	if err := s.orderRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to reset orders: %w", err)
	}
	if err := s.kv.Remove(ctx, draftKey); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	if resetCounter {
		if err := s.counters.Reset(ctx, orderCounterName); err != nil {
			return fmt.Errorf("failed to reset order counter: %w", err)
		}
	}
	return nil
}

// buildLine validates a line request and turns it into a draft line with a
// fresh ID.
func (s *OrderServiceImpl) buildLine(req primary.AddDraftLineRequest) (order.DraftLine, error) {
	if req.Name == "" {
		return order.DraftLine{}, fmt.Errorf("item name is required")
	}
	veg, ok := menu.ParseVegFlag(req.Veg)
	if !ok {
		return order.DraftLine{}, fmt.Errorf("invalid veg flag %q", req.Veg)
	}
	if req.Qty < 1 {
		return order.DraftLine{}, fmt.Errorf("quantity must be at least 1")
	}
	return order.DraftLine{
		ID:           s.newID(),
		ItemID:       req.ItemID,
		NameSnapshot: req.Name,
		VegSnapshot:  veg,
		Size:         req.Size,
		Note:         req.Note,
		Qty:          req.Qty,
	}, nil
}

func (s *OrderServiceImpl) getRecord(ctx context.Context, orderID string) (*secondary.OrderRecord, error) {
	record, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, primary.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return record, nil
}

// storedDraft is the KV serialization of the draft.
type storedDraft struct {
	Type     string       `json:"type"`
	ChefNote string       `json:"chef_note,omitempty"`
	Lines    []storedLine `json:"lines,omitempty"`
}

type storedLine struct {
	ID     string `json:"id"`
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
	Veg    string `json:"veg"`
	Size   string `json:"size,omitempty"`
	Note   string `json:"note,omitempty"`
	Qty    int    `json:"qty"`
}

func (s *OrderServiceImpl) loadDraft(ctx context.Context) (order.Draft, error) {
	raw, err := s.kv.Get(ctx, draftKey)
	if err != nil {
		return order.Draft{}, fmt.Errorf("failed to load draft: %w", err)
	}
	if raw == nil {
		return order.NewDraft(), nil
	}

	var stored storedDraft
	if err := json.Unmarshal(raw, &stored); err != nil {
		return order.Draft{}, fmt.Errorf("failed to decode draft: %w", err)
	}

	typ, ok := order.ParseType(stored.Type)
	if !ok {
		typ = order.TypeDineIn
	}
	d := order.Draft{Type: typ, ChefNote: stored.ChefNote}
	for _, l := range stored.Lines {
		veg, ok := menu.ParseVegFlag(l.Veg)
		if !ok {
			veg = menu.Veg
		}
		d.Lines = append(d.Lines, order.DraftLine{
			ID:           l.ID,
			ItemID:       l.ItemID,
			NameSnapshot: l.Name,
			VegSnapshot:  veg,
			Size:         l.Size,
			Note:         l.Note,
			Qty:          l.Qty,
		})
	}
	return d, nil
}

func (s *OrderServiceImpl) saveDraft(ctx context.Context, d order.Draft) error {
	stored := storedDraft{Type: string(d.Type), ChefNote: d.ChefNote}
	for _, l := range d.Lines {
		stored.Lines = append(stored.Lines, storedLine{
			ID:     l.ID,
			ItemID: l.ItemID,
			Name:   l.NameSnapshot,
			Veg:    string(l.VegSnapshot),
			Size:   l.Size,
			Note:   l.Note,
			Qty:    l.Qty,
		})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.kv.Set(ctx, draftKey, raw); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func draftToDTO(d order.Draft) *primary.Draft {
	dto := &primary.Draft{Type: string(d.Type), ChefNote: d.ChefNote}
	for _, l := range d.Lines {
		dto.Lines = append(dto.Lines, lineToDTO(l))
	}
	return dto
}

func lineToDTO(l order.DraftLine) primary.OrderItem {
	return primary.OrderItem{
		ID:     l.ID,
		ItemID: l.ItemID,
		Name:   l.NameSnapshot,
		Veg:    string(l.VegSnapshot),
		Size:   l.Size,
		Note:   l.Note,
		Qty:    l.Qty,
	}
}

func lineToRecord(l order.DraftLine) secondary.OrderItemRecord {
	return secondary.OrderItemRecord{
		ID:     l.ID,
		ItemID: l.ItemID,
		Name:   l.NameSnapshot,
		Veg:    string(l.VegSnapshot),
		Size:   l.Size,
		Note:   l.Note,
		Qty:    l.Qty,
	}
}

func placedToRecord(p order.Placed) *secondary.OrderRecord {
	record := &secondary.OrderRecord{
		ID:        p.ID,
		Number:    p.Number,
		Type:      string(p.Type),
		ChefNote:  p.ChefNote,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, l := range p.Items {
		record.Items = append(record.Items, lineToRecord(l))
	}
	return record
}

func recordToOrder(record *secondary.OrderRecord) *primary.Order {
	o := &primary.Order{
		ID:        record.ID,
		Number:    record.Number,
		Type:      record.Type,
		ChefNote:  record.ChefNote,
		Status:    record.Status,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
	for _, item := range record.Items {
		o.Items = append(o.Items, primary.OrderItem(item))
	}
	return o
}
