package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pfrederiksen/pokedata/internal/scraper"
	"github.com/pfrederiksen/pokedata/internal/standings"
)

// Parses a saved copy of the standings page and prints the rows that the
// standings command would write, without touching the network.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/preview-standings.go <standings.html>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening page: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	res, err := scraper.Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing page: %v\n", err)
		os.Exit(1)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	header := table.Row{}
	for _, col := range standings.Columns() {
		header = append(header, col)
	}
	t.AppendHeader(header)
	for _, row := range res.Rows {
		t.AppendRow(table.Row(row.Values()))
	}
	t.Render()

	fmt.Printf("\n%d rows, %d skipped (fewer than 8 cells)\n", len(res.Rows), res.Skipped)
}
