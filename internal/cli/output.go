package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pfrederiksen/pokedata/internal/logger"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// GroupSummary is one generation's line in the pokedex summary.
type GroupSummary struct {
	Name         string `json:"name"`
	First        int    `json:"first"`
	Last         int    `json:"last"`
	Attempted    int    `json:"attempted"`
	Written      int    `json:"written"`
	Failed       int    `json:"failed"`
	StatsMissing int    `json:"stats_missing,omitempty"`
}

// OutputResult contains data to be output
type OutputResult struct {
	Command   string          `json:"command"`
	StartedAt time.Time       `json:"started_at"`
	Duration  string          `json:"duration"`
	Groups    []GroupSummary  `json:"groups,omitempty"`
	Rows      int             `json:"rows"`
	Skipped   int             `json:"skipped,omitempty"`
	Files     []string        `json:"files"`
	Metrics   logger.Snapshot `json:"metrics"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if len(result.Groups) > 0 {
		fmt.Fprintln(w, "Pokémon per generation:")
		writeGroupTable(w, result.Groups)
	} else {
		fmt.Fprintf(w, "Rows written: %d\n", result.Rows)
		if result.Skipped > 0 {
			fmt.Fprintf(w, "Rows skipped (fewer than 8 cells): %d\n", result.Skipped)
		}
	}

	fmt.Fprintln(w, "\nFiles created:")
	for _, f := range result.Files {
		fmt.Fprintf(w, "- %s\n", f)
	}

	if verbose {
		fmt.Fprintf(w, "\nDuration: %s\n", result.Duration)
		if names := result.Metrics.CounterNames(); len(names) > 0 {
			fmt.Fprintln(w, "Counters:")
			for _, name := range names {
				fmt.Fprintf(w, "  %s: %d\n", name, result.Metrics.Counters[name])
			}
		}
		for _, name := range result.Metrics.TimingNames() {
			stats := result.Metrics.Timings[name]
			fmt.Fprintf(w, "Timing %s: count=%d avg=%s min=%s max=%s\n",
				name, stats.Count, stats.Average, stats.Min, stats.Max)
		}
	}

	return nil
}

func writeGroupTable(w io.Writer, groups []GroupSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Group", "IDs", "Attempted", "Written", "Failed"})

	var attempted, written, failed int
	for _, g := range groups {
		t.AppendRow(table.Row{g.Name, fmt.Sprintf("%d-%d", g.First, g.Last), g.Attempted, g.Written, g.Failed})
		attempted += g.Attempted
		written += g.Written
		failed += g.Failed
	}

	t.AppendFooter(table.Row{"Total", "", attempted, written, failed})
	t.Render()
}
