//go:build ignore

package main

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Exports the menu back into the import CSV format, so a catalog can be
// edited in a spreadsheet and re-imported.
//
// Usage: go run scripts/export_menu_csv.go -db ~/.streetfeast/streetfeast.db > menu.csv

func main() {
	dbPath := flag.String("db", "", "path to the streetfeast database")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "missing -db flag")
		os.Exit(1)
	}

	db, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT c.name, i.name, i.veg, i.sizes
		FROM items i
		JOIN categories c ON c.id = i.category_id
		WHERE i.active = 1 AND c.active = 1
		ORDER BY c.created_at, i.created_at`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query failed: %v\n", err)
		os.Exit(1)
	}
	defer rows.Close()

	w := csv.NewWriter(os.Stdout)
	w.Write([]string{"Category", "Item Name", "Veg / Non-Veg", "Portions (Half / Full)", "Flavours / Toppings"})

	for rows.Next() {
		var category, item, veg, sizesJSON string
		if err := rows.Scan(&category, &item, &veg, &sizesJSON); err != nil {
			fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
			os.Exit(1)
		}

		var sizes []string
		if err := json.Unmarshal([]byte(sizesJSON), &sizes); err != nil {
			fmt.Fprintf(os.Stderr, "bad sizes for %s: %v\n", item, err)
			os.Exit(1)
		}

		if veg == "NonVeg" {
			veg = "Non-Veg"
		}
		w.Write([]string{category, item, veg, strings.Join(sizes, ", "), ""})
	}
	if err := rows.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "iteration failed: %v\n", err)
		os.Exit(1)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
}
