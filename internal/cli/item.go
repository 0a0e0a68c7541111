package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Blessan-Alex/street-feast-rom/internal/ports/primary"
	"github.com/Blessan-Alex/street-feast-rom/internal/wire"
)

// ItemCmd returns the item command group.
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage menu items",
	}

	cmd.AddCommand(itemCreateCmd())
	cmd.AddCommand(itemListCmd())
	cmd.AddCommand(itemUpdateCmd())
	return cmd
}

func itemCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a menu item",
		Long: `Create a menu item in a category.

The --veg flag accepts Veg, NonVeg or Both. Both creates two items, a
"(Veg)" and a "(Non-Veg)" variant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, _ := cmd.Flags().GetString("category")
			veg, _ := cmd.Flags().GetString("veg")
			sizes, _ := cmd.Flags().GetStringSlice("sizes")

			return wire.MenuAdapter().CreateItem(cmd.Context(), primary.CreateItemRequest{
				CategoryID: categoryID,
				Name:       args[0],
				Sizes:      sizes,
				Veg:        veg,
			})
		},
	}
	cmd.Flags().String("category", "", "category ID (required)")
	cmd.Flags().String("veg", "Veg", "Veg, NonVeg or Both")
	cmd.Flags().StringSlice("sizes", nil, "size labels, e.g. Half,Full")
	cmd.MarkFlagRequired("category")
	return cmd
}

func itemListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menu items",
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, _ := cmd.Flags().GetString("category")
			includeInactive, _ := cmd.Flags().GetBool("all")
			return wire.MenuAdapter().ListItems(cmd.Context(), categoryID, includeInactive)
		},
	}
	cmd.Flags().String("category", "", "only items in this category")
	cmd.Flags().Bool("all", false, "include inactive items")
	return cmd
}

func itemUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [item-id]",
		Short: "Update a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := primary.UpdateItemRequest{ItemID: args[0]}

			if cmd.Flags().Changed("name") {
				name, _ := cmd.Flags().GetString("name")
				req.Name = &name
			}
			if cmd.Flags().Changed("sizes") {
				sizes, _ := cmd.Flags().GetStringSlice("sizes")
				req.Sizes = &sizes
			}
			if cmd.Flags().Changed("veg") {
				veg, _ := cmd.Flags().GetString("veg")
				if strings.EqualFold(veg, "Both") {
					return fmt.Errorf("Both is only valid at creation time; pick Veg or NonVeg")
				}
				req.Veg = &veg
			}
			if cmd.Flags().Changed("active") {
				active, _ := cmd.Flags().GetBool("active")
				req.Active = &active
			}

			return wire.MenuAdapter().UpdateItem(cmd.Context(), req)
		},
	}
	cmd.Flags().String("name", "", "new item name")
	cmd.Flags().StringSlice("sizes", nil, "replacement size labels")
	cmd.Flags().String("veg", "", "Veg or NonVeg")
	cmd.Flags().Bool("active", true, "set the active flag")
	return cmd
}
