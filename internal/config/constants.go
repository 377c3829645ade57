package config

import "time"

const (
	envOutputDir          = "POKEDATA_OUT_DIR"
	envPokeAPIBaseURL     = "POKEAPI_BASE_URL"
	envPokeAPIDelay       = "POKEAPI_DELAY"
	envStandingsURL       = "STANDINGS_URL"
	envStandingsUserAgent = "STANDINGS_USER_AGENT"

	dotEnvFile = ".env"

	defaultOutputDir         = "."
	defaultPokeAPIBaseURL    = "https://pokeapi.co/api/v2"
	defaultDelay             = 100 * time.Millisecond
	defaultWorkbookName      = "pokemons_por_generacion.xlsx"
	defaultStandingsURL      = "https://labs.limitlesstcg.com/0009/standings"
	defaultUserAgent         = "Mozilla/5.0"
	defaultStandingsFileName = "estadisticas_pokemon_2024_saopaulo.csv"
)
