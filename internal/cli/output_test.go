package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/pokedata/internal/logger"
)

func sampleResult() *OutputResult {
	metrics := logger.NewMetrics()
	metrics.AddCounter(logger.CounterFetched, 250)
	metrics.AddCounter(logger.CounterFetchFailed, 1)
	metrics.RecordTiming(logger.TimingFetch, 120*time.Millisecond)
	metrics.RecordTiming(logger.TimingStandings, 80*time.Millisecond)

	return &OutputResult{
		Command:   "pokedex",
		StartedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		Duration:  "1m2s",
		Groups: []GroupSummary{
			{Name: "Generación 1", First: 1, Last: 151, Attempted: 151, Written: 150, Failed: 1},
			{Name: "Generación 2", First: 152, Last: 251, Attempted: 100, Written: 100},
		},
		Rows:    250,
		Files:   []string{"pokemons_por_generacion.xlsx", "pokemon_generación_1.csv", "pokemon_generación_2.csv"},
		Metrics: metrics.Snapshot(),
	}
}

func TestWriteOutput_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Pokémon per generation:",
		"Generación 1",
		"1-151",
		"152-251",
		"Files created:",
		"- pokemon_generación_2.csv",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Counters:") {
		t.Errorf("non-verbose output should not list counters:\n%s", out)
	}
}

func TestWriteOutput_TextVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, true); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Duration: 1m2s", "pokedex.fetched: 250", "pokedex.fetch_failed: 1", "Timing pokeapi.fetch"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
	fetchAt := strings.Index(out, "Timing pokeapi.fetch")
	standingsAt := strings.Index(out, "Timing standings.fetch")
	if fetchAt < 0 || standingsAt < fetchAt {
		t.Errorf("timings not listed in name order:\n%s", out)
	}
}

func TestWriteOutput_TextStandings(t *testing.T) {
	result := &OutputResult{Command: "standings", Rows: 64, Skipped: 2, Files: []string{"estadisticas_pokemon_2024_saopaulo.csv"}}

	var buf bytes.Buffer
	if err := WriteOutput(&buf, result, FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Rows written: 64") || !strings.Contains(out, "Rows skipped (fewer than 8 cells): 2") {
		t.Errorf("unexpected standings output:\n%s", out)
	}
	if strings.Contains(out, "Pokémon per generation") {
		t.Errorf("standings output should not include a group table:\n%s", out)
	}
}

func TestWriteOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	var decoded OutputResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Rows != 250 || len(decoded.Groups) != 2 || len(decoded.Files) != 3 {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Metrics.Counters[logger.CounterFetched] != 250 {
		t.Errorf("metrics counters = %v", decoded.Metrics.Counters)
	}
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	if err := WriteOutput(&bytes.Buffer{}, sampleResult(), OutputFormat("yaml"), false); err == nil {
		t.Error("WriteOutput() with unknown format expected error, got nil")
	}
}
