package cli

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/pokedata/internal/config"
	"github.com/pfrederiksen/pokedata/internal/logger"
	"github.com/pfrederiksen/pokedata/internal/pokeapi"
	"github.com/pfrederiksen/pokedata/internal/pokedex"
	"github.com/spf13/cobra"
)

var (
	flagGroupsFile string
	flagBaseURL    string
	flagDelay      time.Duration
)

func newPokedexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pokedex",
		Short: "Fetch every Pokémon from PokeAPI, grouped by generation",
		Long: `Fetches each Pokémon ID from PokeAPI one request at a time and writes
pokemons_por_generacion.xlsx (one sheet per generation) plus one
pokemon_<generation>.csv per generation. IDs that fail are logged and skipped.`,
		Args: cobra.NoArgs,
		RunE: runPokedex,
	}

	cmd.Flags().StringVar(&flagGroupsFile, "groups", "", "YAML file replacing the built-in generation table")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", "", "PokeAPI base URL (default https://pokeapi.co/api/v2, or $POKEAPI_BASE_URL)")
	cmd.Flags().DurationVar(&flagDelay, "delay", 0, "Pause after every request (default 100ms, or $POKEAPI_DELAY)")

	return cmd
}

func runPokedex(cmd *cobra.Command, args []string) error {
	env, err := prepare(cmd)
	if err != nil {
		return err
	}

	if flagGroupsFile != "" {
		groups, err := config.LoadGroups(flagGroupsFile)
		if err != nil {
			return err
		}
		env.cfg.Pokedex.Groups = groups
	}
	if flagBaseURL != "" {
		env.cfg.Pokedex.BaseURL = flagBaseURL
	}
	if cmd.Flags().Changed("delay") {
		if flagDelay < 0 {
			return fmt.Errorf("--delay must not be negative")
		}
		env.cfg.Pokedex.Delay = flagDelay
	}

	env.log.Debug("Starting pokedex run", logger.Fields{
		"base_url": env.cfg.Pokedex.BaseURL,
		"groups":   len(env.cfg.Pokedex.Groups),
		"delay":    env.cfg.Pokedex.Delay.String(),
		"out_dir":  env.cfg.OutputDir,
	})

	client := pokeapi.NewClient(pokeapi.Config{BaseURL: env.cfg.Pokedex.BaseURL})

	startedAt := time.Now().UTC()
	report, err := pokedex.Run(env.cfg, client, env.log, env.metrics)
	if err != nil {
		env.log.Error("Pokedex run failed", nil, err)
		return fmt.Errorf("running pokedex: %w", err)
	}

	env.log.Info("All data saved", logger.Fields{"files": len(report.Files)})

	result := &OutputResult{
		Command:   "pokedex",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt).Round(time.Millisecond).String(),
		Groups:    summarizeGroups(report.Groups),
		Files:     report.Files,
		Metrics:   env.metrics.Snapshot(),
	}
	for _, g := range result.Groups {
		result.Rows += g.Written
	}

	return WriteOutput(cmd.OutOrStdout(), result, env.format, flagVerbose)
}

func summarizeGroups(results []pokedex.GroupResult) []GroupSummary {
	summaries := make([]GroupSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, GroupSummary{
			Name:         r.Group.Name,
			First:        r.Group.First,
			Last:         r.Group.Last,
			Attempted:    r.Attempted,
			Written:      r.Written(),
			Failed:       r.Failed(),
			StatsMissing: r.StatsMissing,
		})
	}
	return summaries
}
