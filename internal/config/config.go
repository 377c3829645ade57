package config

import "time"

// Config holds runtime configuration for a pokedata run.
type Config struct {
	OutputDir string
	Pokedex   PokedexConfig
	Standings StandingsConfig
}

// PokedexConfig controls the PokeAPI pipeline.
type PokedexConfig struct {
	BaseURL      string
	Delay        time.Duration
	Groups       []Group
	WorkbookName string
}

// StandingsConfig controls the tournament standings scrape.
type StandingsConfig struct {
	URL       string
	UserAgent string
	FileName  string
}

// Default returns the built-in configuration: outputs in the current
// directory, the public PokeAPI, and the nine generations.
func Default() Config {
	return Config{
		OutputDir: defaultOutputDir,
		Pokedex: PokedexConfig{
			BaseURL:      defaultPokeAPIBaseURL,
			Delay:        defaultDelay,
			Groups:       DefaultGroups(),
			WorkbookName: defaultWorkbookName,
		},
		Standings: StandingsConfig{
			URL:       defaultStandingsURL,
			UserAgent: defaultUserAgent,
			FileName:  defaultStandingsFileName,
		},
	}
}

// Load reads an optional .env file and applies environment overrides on top
// of Default.
func Load() (Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.OutputDir = envOrDefault(envOutputDir, cfg.OutputDir)
	cfg.Pokedex.BaseURL = envOrDefault(envPokeAPIBaseURL, cfg.Pokedex.BaseURL)
	cfg.Pokedex.Delay = durationEnvOrDefault(envPokeAPIDelay, cfg.Pokedex.Delay)
	cfg.Standings.URL = envOrDefault(envStandingsURL, cfg.Standings.URL)
	cfg.Standings.UserAgent = envOrDefault(envStandingsUserAgent, cfg.Standings.UserAgent)
	return cfg, nil
}
