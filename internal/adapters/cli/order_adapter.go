// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Blessan-Alex/street-feast-rom/internal/core/order"
	"github.com/Blessan-Alex/street-feast-rom/internal/ports/primary"
)

// OrderAdapter is a thin adapter that translates CLI operations to
// OrderService calls. It depends only on the OrderService interface,
// enabling easy testing with mocks.
type OrderAdapter struct {
	service primary.OrderService
	out     io.Writer
}

// NewOrderAdapter creates a new OrderAdapter with the given service.
func NewOrderAdapter(service primary.OrderService, out io.Writer) *OrderAdapter {
	return &OrderAdapter{
		service: service,
		out:     out,
	}
}

// ShowDraft prints the current draft.
func (a *OrderAdapter) ShowDraft(ctx context.Context) error {
	draft, err := a.service.GetDraft(ctx)
	if err != nil {
		return fmt.Errorf("failed to get draft: %w", err)
	}

	fmt.Fprintf(a.out, "\nDraft order (%s)\n", draft.Type)
	if draft.ChefNote != "" {
		fmt.Fprintf(a.out, "Chef note: %s\n", draft.ChefNote)
	}
	if len(draft.Lines) == 0 {
		fmt.Fprintln(a.out, "No items yet")
		fmt.Fprintln(a.out)
		return nil
	}

	printItemTable(a.out, draft.Lines)
	fmt.Fprintln(a.out)
	return nil
}

// SetDraftFields updates the draft's type and/or chef note. Empty strings
// mean "leave unchanged".
func (a *OrderAdapter) SetDraftFields(ctx context.Context, orderType, chefNote string) error {
	req := primary.SetDraftFieldsRequest{}
	if orderType != "" {
		req.Type = &orderType
	}
	if chefNote != "" {
		req.ChefNote = &chefNote
	}

	draft, err := a.service.SetDraftFields(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Draft updated (%s)\n", draft.Type)
	return nil
}

// AddDraftLine appends a line to the draft.
func (a *OrderAdapter) AddDraftLine(ctx context.Context, req primary.AddDraftLineRequest) error {
	draft, err := a.service.AddDraftLine(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Added %dx %s (%d items in draft)\n", req.Qty, req.Name, len(draft.Lines))
	return nil
}

// UpdateDraftLine merges a partial update into a draft line. A qty of 0
// means "leave unchanged"; size and note follow the set flags.
func (a *OrderAdapter) UpdateDraftLine(ctx context.Context, lineID string, size, note *string, qty int) error {
	req := primary.UpdateDraftLineRequest{LineID: lineID, Size: size, Note: note}
	if qty > 0 {
		req.Qty = &qty
	}

	if _, err := a.service.UpdateDraftLine(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Line %s updated\n", lineID)
	return nil
}

// RemoveDraftLine removes a line from the draft.
func (a *OrderAdapter) RemoveDraftLine(ctx context.Context, lineID string) error {
	if _, err := a.service.RemoveDraftLine(ctx, lineID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Line %s removed\n", lineID)
	return nil
}

// ClearDraft resets the draft.
func (a *OrderAdapter) ClearDraft(ctx context.Context) error {
	if err := a.service.ClearDraft(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "✓ Draft cleared")
	return nil
}

// Place materializes the draft into a numbered order.
func (a *OrderAdapter) Place(ctx context.Context) error {
	result, err := a.service.PlaceDraft(ctx)
	if err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}

	if !result.OK {
		fmt.Fprintf(a.out, "✗ %s\n", result.Reason)
		return nil
	}

	o := result.Order
	fmt.Fprintf(a.out, "✓ Order #%d placed (%s, %d items)\n", o.Number, o.Type, len(o.Items))
	return nil
}

// List prints orders newest first, optionally filtered by status.
func (a *OrderAdapter) List(ctx context.Context, status string, limit int) error {
	orders, err := a.service.ListOrders(ctx, primary.OrderFilters{Status: status, Limit: limit})
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-8s %-12s %-12s %-6s %s\n", "NUMBER", "STATUS", "TYPE", "ITEMS", "PLACED")
	fmt.Fprintln(a.out, strings.Repeat("─", 64))
	for _, o := range orders {
		fmt.Fprintf(a.out, "#%-7d %-21s %-12s %-6d %s\n",
			o.Number, statusLabel(o.Status), o.Type, len(o.Items), o.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(a.out)
	return nil
}

// Show prints a single order with its items.
func (a *OrderAdapter) Show(ctx context.Context, orderID string) error {
	o, err := a.service.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nOrder #%d (%s)\n", o.Number, o.ID)
	fmt.Fprintf(a.out, "Status:  %s\n", statusLabel(o.Status))
	fmt.Fprintf(a.out, "Type:    %s\n", o.Type)
	if o.ChefNote != "" {
		fmt.Fprintf(a.out, "Note:    %s\n", o.ChefNote)
	}
	fmt.Fprintf(a.out, "Placed:  %s\n", o.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.out, "Updated: %s\n", o.UpdatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(a.out)

	printItemTable(a.out, o.Items)

	if next := order.AllowedTransitions(order.Status(o.Status)); len(next) > 0 {
		labels := make([]string, len(next))
		for i, s := range next {
			labels[i] = string(s)
		}
		fmt.Fprintf(a.out, "\nNext: %s\n", strings.Join(labels, ", "))
	}
	fmt.Fprintln(a.out)
	return nil
}

// Next prints the transitions available from an order's current status.
func (a *OrderAdapter) Next(ctx context.Context, orderID string) error {
	o, err := a.service.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	next := order.AllowedTransitions(order.Status(o.Status))
	if len(next) == 0 {
		fmt.Fprintf(a.out, "Order #%d is %s; no further transitions\n", o.Number, statusLabel(o.Status))
		return nil
	}

	labels := make([]string, len(next))
	for i, s := range next {
		labels[i] = string(s)
	}
	fmt.Fprintf(a.out, "Order #%d (%s) can move to: %s\n", o.Number, statusLabel(o.Status), strings.Join(labels, ", "))
	return nil
}

// UpdateStatus moves an order through its lifecycle.
func (a *OrderAdapter) UpdateStatus(ctx context.Context, orderID, target string) error {
	result, err := a.service.UpdateStatus(ctx, primary.UpdateStatusRequest{OrderID: orderID, Target: target})
	if err != nil {
		return err
	}

	if !result.OK {
		fmt.Fprintf(a.out, "✗ %s\n", result.Reason)
		return nil
	}

	fmt.Fprintf(a.out, "✓ Order #%d is now %s\n", result.Order.Number, statusLabel(result.Order.Status))
	return nil
}

// AddItems appends lines to a placed order.
func (a *OrderAdapter) AddItems(ctx context.Context, orderID string, items []primary.AddDraftLineRequest) error {
	result, err := a.service.AddItems(ctx, primary.AddItemsRequest{OrderID: orderID, Items: items})
	if err != nil {
		return err
	}

	if !result.OK {
		fmt.Fprintf(a.out, "✗ %s\n", result.Reason)
		return nil
	}

	fmt.Fprintf(a.out, "✓ Order #%d now has %d items\n", result.Order.Number, len(result.Order.Items))
	return nil
}

// Reset clears all orders and the draft.
func (a *OrderAdapter) Reset(ctx context.Context, resetCounter bool) error {
	if err := a.service.ResetOrders(ctx, resetCounter); err != nil {
		return err
	}

	if resetCounter {
		fmt.Fprintln(a.out, "✓ Orders cleared, numbering restarts at 1001")
	} else {
		fmt.Fprintln(a.out, "✓ Orders cleared")
	}
	return nil
}

func printItemTable(out io.Writer, items []primary.OrderItem) {
	fmt.Fprintf(out, "%-10s %-24s %-8s %-8s %-4s %s\n", "LINE", "ITEM", "VEG", "SIZE", "QTY", "NOTE")
	for _, item := range items {
		fmt.Fprintf(out, "%-10s %-24s %-8s %-8s %-4d %s\n",
			shortID(item.ID), item.Name, vegLabel(item.Veg), item.Size, item.Qty, item.Note)
	}
}

// shortID trims a UUID to its first segment for table display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func vegLabel(veg string) string {
	if veg == "NonVeg" {
		return color.New(color.FgRed).Sprint("Non-Veg")
	}
	return color.New(color.FgGreen).Sprint("Veg")
}

// statusLabel renders a lifecycle status with its color. The width of the
// invisible escape codes is why List pads the status column wider.
func statusLabel(status string) string {
	switch order.Status(status) {
	case order.StatusCreated:
		return color.New(color.FgHiBlue).Sprint(status)
	case order.StatusAccepted:
		return color.New(color.FgCyan).Sprint(status)
	case order.StatusInKitchen:
		return color.New(color.FgYellow).Sprint(status)
	case order.StatusPrepared:
		return color.New(color.FgHiMagenta).Sprint(status)
	case order.StatusDelivered:
		return color.New(color.FgHiGreen).Sprint(status)
	case order.StatusClosed:
		return color.New(color.FgHiBlack).Sprint(status)
	case order.StatusCanceled:
		return color.New(color.FgRed).Sprint(status)
	}
	return status
}
