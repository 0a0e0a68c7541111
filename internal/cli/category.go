// Package cli wires the cobra command tree. Commands parse arguments and
// flags, then delegate to the adapters in internal/adapters/cli.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Blessan-Alex/street-feast-rom/internal/wire"
)

// CategoryCmd returns the category command group.
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage menu categories",
	}

	cmd.AddCommand(categoryCreateCmd())
	cmd.AddCommand(categoryListCmd())
	cmd.AddCommand(categoryUpdateCmd())
	cmd.AddCommand(categoryDeleteCmd())
	return cmd
}

func categoryCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.MenuAdapter().CreateCategory(cmd.Context(), args[0])
		},
	}
}

func categoryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			includeInactive, _ := cmd.Flags().GetBool("all")
			return wire.MenuAdapter().ListCategories(cmd.Context(), includeInactive)
		},
	}
	cmd.Flags().Bool("all", false, "include inactive categories")
	return cmd
}

func categoryUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [category-id]",
		Short: "Rename or toggle a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")

			var active *bool
			if cmd.Flags().Changed("active") {
				v, _ := cmd.Flags().GetBool("active")
				active = &v
			}

			return wire.MenuAdapter().UpdateCategory(cmd.Context(), args[0], name, active)
		},
	}
	cmd.Flags().String("name", "", "new category name")
	cmd.Flags().Bool("active", true, "set the active flag")
	return cmd
}

func categoryDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [category-id]",
		Short: "Delete a category and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return wire.MenuAdapter().DeleteCategory(cmd.Context(), args[0], force)
		},
	}
	cmd.Flags().Bool("force", false, "delete even when the category has items")
	return cmd
}
