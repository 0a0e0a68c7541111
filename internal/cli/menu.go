package cli

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Blessan-Alex/street-feast-rom/internal/db"
	"github.com/Blessan-Alex/street-feast-rom/internal/wire"
)

// MenuCmd returns the menu command group.
func MenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Bulk menu operations",
	}

	cmd.AddCommand(menuImportCmd())
	return cmd
}

func menuImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file.csv]",
		Short: "Validate and import a menu CSV",
		Long: `Validate a menu CSV upload and report per-row errors.

Without --apply nothing is written; with --apply a fully valid file creates
categories on demand and the items each row describes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apply, _ := cmd.Flags().GetBool("apply")

			headers, records, err := readCSVFile(args[0])
			if err != nil {
				return err
			}
			return wire.MenuAdapter().ImportCSV(cmd.Context(), headers, records, apply)
		},
	}
	cmd.Flags().Bool("apply", false, "create the categories and items after validation")
	return cmd
}

// readCSVFile parses a CSV file into its header row and data rows. Rows may
// have a variable field count; validation handles short rows.
func readCSVFile(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	return rows[0], rows[1:], nil
}

// SeedCmd returns the seed command.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample menu",
		Long:  "Insert the built-in sample categories and items. Running it again refreshes the same records.",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			if err := db.SeedMenu(database); err != nil {
				return err
			}
			fmt.Println("✓ Sample menu loaded")
			return nil
		},
	}
}
