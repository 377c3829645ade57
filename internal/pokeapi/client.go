package pokeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pfrederiksen/pokedata/internal/pokemon"
)

// Config controls how the client reaches PokeAPI.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches single Pokémon by ID.
type Client struct {
	http *resty.Client
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New().SetTimeout(defaultHTTPTimeout)
	}

	rc.SetBaseURL(normalizeBaseURL(cfg.BaseURL)).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &Client{http: rc}
}

// FetchPokemon retrieves and shapes the Pokémon with the given ID.
func (c *Client) FetchPokemon(id int) (pokemon.Record, error) {
	resp, err := c.http.R().
		SetPathParam("id", strconv.Itoa(id)).
		Get(pokemonPath)
	if err != nil {
		return pokemon.Record{}, fmt.Errorf("fetching pokemon %d: %w", id, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return pokemon.Record{}, &StatusError{ID: id, StatusCode: resp.StatusCode()}
	}

	var payload pokemonResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return pokemon.Record{}, &ShapeError{ID: id, Field: "body", Err: err}
	}

	return mapPokemon(id, payload)
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
