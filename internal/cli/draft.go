package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Blessan-Alex/street-feast-rom/internal/ports/primary"
	"github.com/Blessan-Alex/street-feast-rom/internal/wire"
)

// DraftCmd returns the draft command group. The draft is the single
// in-progress order being assembled before placement.
func DraftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Assemble the in-progress order",
	}

	cmd.AddCommand(draftShowCmd())
	cmd.AddCommand(draftSetCmd())
	cmd.AddCommand(draftAddCmd())
	cmd.AddCommand(draftUpdateCmd())
	cmd.AddCommand(draftRemoveCmd())
	cmd.AddCommand(draftClearCmd())
	return cmd
}

func draftShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.OrderAdapter().ShowDraft(cmd.Context())
		},
	}
}

func draftSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the draft's type or chef note",
		RunE: func(cmd *cobra.Command, args []string) error {
			orderType, _ := cmd.Flags().GetString("type")
			note, _ := cmd.Flags().GetString("note")
			if orderType == "" && note == "" {
				return fmt.Errorf("must specify at least --type or --note")
			}
			return wire.OrderAdapter().SetDraftFields(cmd.Context(), orderType, note)
		},
	}
	cmd.Flags().String("type", "", "DineIn, Parcel or Delivery")
	cmd.Flags().String("note", "", "chef note for the whole order")
	return cmd
}

func draftAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [item-id]",
		Short: "Add a menu item to the draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, _ := cmd.Flags().GetString("size")
			note, _ := cmd.Flags().GetString("note")
			qty, _ := cmd.Flags().GetInt("qty")

			req, err := buildLineRequest(cmd, args[0], size, note, qty)
			if err != nil {
				return err
			}
			return wire.OrderAdapter().AddDraftLine(cmd.Context(), req)
		},
	}
	cmd.Flags().String("size", "", "size label for items with variants")
	cmd.Flags().String("note", "", "note for this line")
	cmd.Flags().Int("qty", 1, "quantity")
	return cmd
}

// buildLineRequest looks up the menu item and snapshots its name and veg
// flag into a line request, validating the size choice against the item.
func buildLineRequest(cmd *cobra.Command, itemID, size, note string, qty int) (primary.AddDraftLineRequest, error) {
	item, err := wire.MenuService().GetItem(cmd.Context(), itemID)
	if err != nil {
		return primary.AddDraftLineRequest{}, err
	}

	if len(item.Sizes) == 0 && size != "" {
		return primary.AddDraftLineRequest{}, fmt.Errorf("%s has no size variants", item.Name)
	}
	if len(item.Sizes) > 0 {
		found := false
		for _, s := range item.Sizes {
			if s == size {
				found = true
				break
			}
		}
		if !found {
			return primary.AddDraftLineRequest{}, fmt.Errorf("pick a size for %s: %v", item.Name, item.Sizes)
		}
	}

	return primary.AddDraftLineRequest{
		ItemID: item.ID,
		Name:   item.Name,
		Veg:    item.Veg,
		Size:   size,
		Note:   note,
		Qty:    qty,
	}, nil
}

func draftUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [line-id]",
		Short: "Update a draft line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var size, note *string
			if cmd.Flags().Changed("size") {
				v, _ := cmd.Flags().GetString("size")
				size = &v
			}
			if cmd.Flags().Changed("note") {
				v, _ := cmd.Flags().GetString("note")
				note = &v
			}
			qty, _ := cmd.Flags().GetInt("qty")

			return wire.OrderAdapter().UpdateDraftLine(cmd.Context(), args[0], size, note, qty)
		},
	}
	cmd.Flags().String("size", "", "new size label")
	cmd.Flags().String("note", "", "new line note")
	cmd.Flags().Int("qty", 0, "new quantity")
	return cmd
}

func draftRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [line-id]",
		Short: "Remove a draft line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.OrderAdapter().RemoveDraftLine(cmd.Context(), args[0])
		},
	}
}

func draftClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.OrderAdapter().ClearDraft(cmd.Context())
		},
	}
}
