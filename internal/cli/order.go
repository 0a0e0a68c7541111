package cli

import (
	"github.com/spf13/cobra"

	"github.com/Blessan-Alex/street-feast-rom/internal/ports/primary"
	"github.com/Blessan-Alex/street-feast-rom/internal/wire"
)

// OrderCmd returns the order command group.
func OrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place and track orders",
	}

	cmd.AddCommand(orderPlaceCmd())
	cmd.AddCommand(orderListCmd())
	cmd.AddCommand(orderShowCmd())
	cmd.AddCommand(orderStatusCmd())
	cmd.AddCommand(orderNextCmd())
	cmd.AddCommand(orderAddItemsCmd())
	return cmd
}

func orderPlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place",
		Short: "Place the current draft as an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.OrderAdapter().Place(cmd.Context())
		},
	}
}

func orderListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			limit, _ := cmd.Flags().GetInt("limit")
			return wire.OrderAdapter().List(cmd.Context(), status, limit)
		},
	}
	cmd.Flags().String("status", "", "filter by status (All for everything)")
	cmd.Flags().Int("limit", 0, "show at most this many orders")
	return cmd
}

func orderShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [order-id]",
		Short: "Show an order with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.OrderAdapter().Show(cmd.Context(), args[0])
		},
	}
}

func orderStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [order-id] [target]",
		Short: "Move an order through its lifecycle",
		Long: `Apply a lifecycle transition to an order.

Valid targets depend on the current status; 'order next' lists them. An
order that cannot make the requested move is left untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.OrderAdapter().UpdateStatus(cmd.Context(), args[0], args[1])
		},
	}
}

func orderNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next [order-id]",
		Short: "Show the transitions available for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.OrderAdapter().Next(cmd.Context(), args[0])
		},
	}
}

func orderAddItemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-items [order-id] [item-id]",
		Short: "Append a menu item to a placed order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, _ := cmd.Flags().GetString("size")
			note, _ := cmd.Flags().GetString("note")
			qty, _ := cmd.Flags().GetInt("qty")

			req, err := buildLineRequest(cmd, args[1], size, note, qty)
			if err != nil {
				return err
			}
			return wire.OrderAdapter().AddItems(cmd.Context(), args[0], []primary.AddDraftLineRequest{req})
		},
	}
	cmd.Flags().String("size", "", "size label for items with variants")
	cmd.Flags().String("note", "", "note for this line")
	cmd.Flags().Int("qty", 1, "quantity")
	return cmd
}
