package pokedex

import (
	"fmt"

	"github.com/pfrederiksen/pokedata/internal/config"
	"github.com/pfrederiksen/pokedata/internal/export"
	"github.com/pfrederiksen/pokedata/internal/logger"
)

// Report summarises a completed pokedex run.
type Report struct {
	Groups []GroupResult
	Files  []string
}

// Run collects every configured group with fetcher and writes the exports
// into cfg.OutputDir.
func Run(cfg config.Config, fetcher Fetcher, log *logger.Logger, metrics *logger.Metrics) (*Report, error) {
	if err := config.ValidateGroups(cfg.Pokedex.Groups); err != nil {
		return nil, fmt.Errorf("invalid groups: %w", err)
	}

	exp, err := export.New(cfg.OutputDir)
	if err != nil {
		return nil, err
	}

	collector := NewCollector(fetcher, cfg.Pokedex.Delay, log, metrics)
	results, err := collector.Collect(cfg.Pokedex.Groups)
	if err != nil {
		return &Report{Groups: results}, fmt.Errorf("collecting groups: %w", err)
	}

	collector.log.Info("Writing exports", logger.Fields{"dir": exp.Dir(), "groups": len(results)})
	files, err := Write(exp, cfg.Pokedex.WorkbookName, results)
	return &Report{Groups: results, Files: files}, err
}
