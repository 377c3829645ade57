package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pfrederiksen/pokedata/internal/config"
	"github.com/pfrederiksen/pokedata/internal/logger"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagOutDir   string
	flagFormat   string
	flagLogLevel string
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pokedata",
		Short: "Collect Pokémon data into spreadsheet and CSV exports",
		Long: `A CLI tool that collects Pokémon data.

  pokedex    fetch every Pokémon from PokeAPI, grouped by generation
  standings  scrape the São Paulo 2024 regional standings`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&flagOutDir, "out-dir", "", "Directory for output files (default: current directory, or $POKEDATA_OUT_DIR)")
	flags.StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flags.BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and detailed summary")

	cmd.AddCommand(newPokedexCmd(), newStandingsCmd())

	return cmd
}

// runEnv is the resolved state shared by every subcommand.
type runEnv struct {
	cfg     config.Config
	format  OutputFormat
	log     *logger.Logger
	metrics *logger.Metrics
}

// prepare resolves configuration and logging from the environment and the
// persistent flags.
func prepare(cmd *cobra.Command) (*runEnv, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	level, err := logger.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagOutDir != "" {
		cfg.OutputDir = flagOutDir
	}

	log := logger.New(level, cmd.ErrOrStderr())
	logger.SetDefault(log)

	return &runEnv{
		cfg:     cfg,
		format:  format,
		log:     log,
		metrics: logger.NewMetrics(),
	}, nil
}

// Execute runs the CLI
func Execute() {
	os.Exit(exitCode(NewRootCmd().Execute()))
}

// exitCode logs err through the default logger, which by then writes where
// the failed command was logging, and maps it to a process exit code.
func exitCode(err error) int {
	if err != nil {
		logger.Error("Command failed", nil, err)
		return ExitError
	}
	return ExitSuccess
}
