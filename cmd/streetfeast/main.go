package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Blessan-Alex/street-feast-rom/internal/cli"
	"github.com/Blessan-Alex/street-feast-rom/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "streetfeast",
		Short:   "Street Feast - restaurant order management",
		Version: version.String(),
		Long: `Street Feast is a single-operator CLI for a restaurant admin desk.
It manages the menu catalog, assembles draft orders, and tracks placed
orders through their kitchen lifecycle.`,
	}

	// Menu catalog
	rootCmd.AddCommand(cli.CategoryCmd())
	rootCmd.AddCommand(cli.ItemCmd())
	rootCmd.AddCommand(cli.MenuCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	// Orders
	rootCmd.AddCommand(cli.DraftCmd())
	rootCmd.AddCommand(cli.OrderCmd())

	// Session
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())

	// Maintenance
	rootCmd.AddCommand(cli.ResetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
