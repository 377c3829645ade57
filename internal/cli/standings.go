package cli

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/pokedata/internal/export"
	"github.com/pfrederiksen/pokedata/internal/logger"
	"github.com/pfrederiksen/pokedata/internal/scraper"
	"github.com/pfrederiksen/pokedata/internal/standings"
	"github.com/spf13/cobra"
)

var (
	flagURL       string
	flagUserAgent string
)

func newStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Scrape tournament standings into a CSV file",
		Long: `Fetches the tournament standings page once and writes every day-two
player to estadisticas_pokemon_2024_saopaulo.csv, top cut first. Top-cut
players are also day-two rows on the page; each player appears once in
the CSV. Rows with fewer than 8 cells are skipped. Any non-200 response
aborts the run.`,
		Args: cobra.NoArgs,
		RunE: runStandings,
	}

	cmd.Flags().StringVar(&flagURL, "url", "", "Standings page URL (default limitlesstcg São Paulo 2024, or $STANDINGS_URL)")
	cmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "User-Agent header (default Mozilla/5.0, or $STANDINGS_USER_AGENT)")

	return cmd
}

func runStandings(cmd *cobra.Command, args []string) error {
	env, err := prepare(cmd)
	if err != nil {
		return err
	}

	if flagURL != "" {
		env.cfg.Standings.URL = flagURL
	}
	if flagUserAgent != "" {
		env.cfg.Standings.UserAgent = flagUserAgent
	}

	sc := scraper.New(env.cfg.Standings)
	env.log.Info("Fetching standings", logger.Fields{"url": sc.URL()})

	startedAt := time.Now().UTC()
	res, err := sc.FetchStandings()
	env.metrics.RecordTiming(logger.TimingStandings, time.Since(startedAt))
	if err != nil {
		env.log.Error("Standings fetch failed", logger.Fields{"url": sc.URL()}, err)
		return fmt.Errorf("fetching standings: %w", err)
	}

	env.metrics.AddCounter(logger.CounterStandingRows, int64(len(res.Rows)))
	env.metrics.AddCounter(logger.CounterStandingSkipped, int64(res.Skipped))
	if res.Skipped > 0 {
		env.log.Info("Skipped short standings rows", logger.Fields{"count": res.Skipped})
	}

	exp, err := export.New(env.cfg.OutputDir)
	if err != nil {
		return err
	}
	tbl, err := standings.Table(res.Rows)
	if err != nil {
		return err
	}
	path, err := exp.WriteCSV(env.cfg.Standings.FileName, tbl)
	if err != nil {
		env.log.Error("Writing standings failed", logger.Fields{"file": env.cfg.Standings.FileName}, err)
		return err
	}

	env.log.Info("Scraping complete", logger.Fields{"dir": exp.Dir(), "file": path, "rows": len(res.Rows)})

	result := &OutputResult{
		Command:   "standings",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt).Round(time.Millisecond).String(),
		Rows:      len(res.Rows),
		Skipped:   res.Skipped,
		Files:     []string{path},
		Metrics:   env.metrics.Snapshot(),
	}
	return WriteOutput(cmd.OutOrStdout(), result, env.format, flagVerbose)
}
