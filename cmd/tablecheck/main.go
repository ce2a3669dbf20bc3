package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/config"
	"github.com/kvsecontent/Teacher-Dashboard-Backend/app/sheets"
)

// tablecheck fetches one named sheet and prints its shape. Handy for
// verifying spreadsheet coordinates and API-key access from the shell.
func main() {
	table := flag.String("table", "Students", "sheet name to fetch")
	cellRange := flag.String("range", "", "optional cell range, e.g. A:G")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	store := sheets.NewClient(cfg.SheetsBaseURL, cfg.SpreadsheetID, cfg.GoogleAPIKey, cfg.HTTPTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	defer cancel()

	rows, err := store.Table(ctx, *table, *cellRange)
	if err != nil {
		log.Fatal("Fetch failed: ", err)
	}

	if len(rows) == 0 {
		fmt.Printf("%s: empty sheet\n", *table)
		return
	}
	fmt.Printf("%s: %d data rows, header %v\n", *table, len(rows)-1, rows[0])
}
