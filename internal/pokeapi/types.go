package pokeapi

import "encoding/json"

// Pointer and slice fields stay nil when the key is absent from the payload,
// which is how required fields are detected.
type pokemonResponse struct {
	ID        *int              `json:"id"`
	Name      *string           `json:"name"`
	Height    *int              `json:"height"`
	Weight    *int              `json:"weight"`
	Types     []typeSlot        `json:"types"`
	Stats     []statEntry       `json:"stats"`
	Abilities []abilitySlot     `json:"abilities"`
	Moves     []json.RawMessage `json:"moves"`
	Sprites   *spritesResponse  `json:"sprites"`
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type statEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     namedResource `json:"stat"`
}

type abilitySlot struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  namedResource `json:"ability"`
}

type spritesResponse struct {
	FrontDefault *string                    `json:"front_default"`
	Other        map[string]artworkResponse `json:"other"`
}

type artworkResponse struct {
	FrontDefault *string `json:"front_default"`
}
