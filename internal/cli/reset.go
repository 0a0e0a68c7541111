package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Blessan-Alex/street-feast-rom/internal/wire"
)

// ResetCmd returns the reset command.
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear stored data",
		Long: `Clear stored data selectively.

--orders removes orders and the draft but keeps the numbering, so new
orders continue where the old ones left off. --counter restarts numbering
at 1001. --menu removes categories and items. --all does everything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, _ := cmd.Flags().GetBool("orders")
			menu, _ := cmd.Flags().GetBool("menu")
			counter, _ := cmd.Flags().GetBool("counter")
			all, _ := cmd.Flags().GetBool("all")

			if all {
				orders, menu, counter = true, true, true
			}
			if !orders && !menu && !counter {
				return fmt.Errorf("specify what to reset: --orders, --menu, --counter or --all")
			}

			ctx := cmd.Context()
			if orders || counter {
				if err := wire.OrderAdapter().Reset(ctx, counter); err != nil {
					return err
				}
			}
			if menu {
				if err := wire.MenuAdapter().Reset(ctx); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("orders", false, "clear orders and the draft")
	cmd.Flags().Bool("menu", false, "clear categories and items")
	cmd.Flags().Bool("counter", false, "restart order numbering (implies --orders)")
	cmd.Flags().Bool("all", false, "clear everything")
	return cmd
}
