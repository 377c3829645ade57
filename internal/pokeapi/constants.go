package pokeapi

import "time"

const (
	defaultBaseURL     = "https://pokeapi.co/api/v2"
	defaultHTTPTimeout = 30 * time.Second
	userAgent          = "pokedata/1.0 (github.com/pfrederiksen/pokedata)"

	pokemonPath = "/pokemon/{id}/"

	// Centimetre/hectogram units to metres/kilograms.
	unitScale = 10

	officialArtwork = "official-artwork"
)
