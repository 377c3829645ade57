package pokeapi

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pfrederiksen/pokedata/internal/pokemon"
)

const bulbasaurJSON = `{
	"id": 1,
	"name": "bulbasaur",
	"height": 7,
	"weight": 69,
	"types": [
		{"slot": 2, "type": {"name": "poison", "url": "https://pokeapi.co/api/v2/type/4/"}},
		{"slot": 1, "type": {"name": "grass", "url": "https://pokeapi.co/api/v2/type/12/"}}
	],
	"stats": [
		{"base_stat": 45, "effort": 0, "stat": {"name": "speed"}},
		{"base_stat": 65, "effort": 1, "stat": {"name": "special-attack"}},
		{"base_stat": 45, "effort": 0, "stat": {"name": "hp"}},
		{"base_stat": 49, "effort": 0, "stat": {"name": "defense"}},
		{"base_stat": 65, "effort": 0, "stat": {"name": "special-defense"}},
		{"base_stat": 49, "effort": 0, "stat": {"name": "attack"}}
	],
	"abilities": [
		{"slot": 1, "is_hidden": false, "ability": {"name": "overgrow"}},
		{"slot": 3, "is_hidden": true, "ability": {"name": "chlorophyll"}}
	],
	"moves": [{"move": {"name": "razor-wind"}}, {"move": {"name": "swords-dance"}}, {"move": {"name": "cut"}}],
	"sprites": {
		"front_default": "https://raw.example/sprites/1.png",
		"other": {
			"official-artwork": {"front_default": "https://raw.example/artwork/1.png"}
		}
	}
}`

func decode(t *testing.T, raw string) pokemonResponse {
	t.Helper()
	var p pokemonResponse
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return p
}

func TestMapPokemon(t *testing.T) {
	got, err := mapPokemon(1, decode(t, bulbasaurJSON))
	if err != nil {
		t.Fatalf("mapPokemon() error = %v", err)
	}

	want := pokemon.Record{
		ID:            1,
		Name:          "bulbasaur",
		PrimaryType:   "grass",
		SecondaryType: "poison",
		Height:        0.7,
		Weight:        6.9,
		Stats: map[pokemon.Stat]int{
			pokemon.StatHP:             45,
			pokemon.StatAttack:         49,
			pokemon.StatDefense:        49,
			pokemon.StatSpecialAttack:  65,
			pokemon.StatSpecialDefense: 65,
			pokemon.StatSpeed:          45,
		},
		Moves:     3,
		Abilities: []string{"overgrow", "chlorophyll"},
		Image:     "https://raw.example/artwork/1.png",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mapPokemon() mismatch (-want +got):\n%s", diff)
	}

	// Stat cells follow display order regardless of payload order.
	values := got.Values()
	if diff := cmp.Diff([]any{45, 49, 49, 65, 65, 45}, values[6:12]); diff != "" {
		t.Errorf("stat cells mismatch (-want +got):\n%s", diff)
	}
}

func TestMapPokemon_UnitConversion(t *testing.T) {
	tests := []struct {
		height, weight int
	}{
		{7, 69},
		{10, 1000},
		{1, 1},
		{145, 9999},
		{0, 0},
	}

	for _, tt := range tests {
		p := decode(t, bulbasaurJSON)
		p.Height = &tt.height
		p.Weight = &tt.weight

		got, err := mapPokemon(1, p)
		if err != nil {
			t.Fatalf("mapPokemon() error = %v", err)
		}
		if got.Height != float64(tt.height)/10 {
			t.Errorf("Height = %v, want %v", got.Height, float64(tt.height)/10)
		}
		if got.Weight != float64(tt.weight)/10 {
			t.Errorf("Weight = %v, want %v", got.Weight, float64(tt.weight)/10)
		}
	}
}

func TestMapTypes(t *testing.T) {
	slot := func(n int, name string) typeSlot {
		return typeSlot{Slot: n, Type: namedResource{Name: name}}
	}

	tests := []struct {
		name          string
		slots         []typeSlot
		wantPrimary   string
		wantSecondary string
	}{
		{"none", []typeSlot{}, "", ""},
		{"single", []typeSlot{slot(1, "electric")}, "electric", ""},
		{"pair", []typeSlot{slot(1, "fire"), slot(2, "flying")}, "fire", "flying"},
		{"out of order", []typeSlot{slot(2, "flying"), slot(1, "fire")}, "fire", "flying"},
		{"extra ignored", []typeSlot{slot(1, "a"), slot(2, "b"), slot(3, "c")}, "a", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, secondary := mapTypes(tt.slots)
			if primary != tt.wantPrimary || secondary != tt.wantSecondary {
				t.Errorf("mapTypes() = (%q, %q), want (%q, %q)", primary, secondary, tt.wantPrimary, tt.wantSecondary)
			}
		})
	}
}

func TestMapStats_DropsUnknownKeepsMissing(t *testing.T) {
	stats := mapStats([]statEntry{
		{BaseStat: 10, Stat: namedResource{Name: "hp"}},
		{BaseStat: 99, Stat: namedResource{Name: "accuracy"}},
		{BaseStat: 20, Stat: namedResource{Name: "speed"}},
	})

	want := map[pokemon.Stat]int{pokemon.StatHP: 10, pokemon.StatSpeed: 20}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("mapStats() mismatch (-want +got):\n%s", diff)
	}
}

func TestMapPokemon_ImageAbsent(t *testing.T) {
	tests := []struct {
		name    string
		sprites string
	}{
		{"no sprites", `null`},
		{"no other", `{"front_default": "x"}`},
		{"no artwork", `{"other": {"home": {"front_default": "x"}}}`},
		{"null artwork url", `{"other": {"official-artwork": {"front_default": null}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `{"id": 25, "name": "pikachu", "height": 4, "weight": 60, "types": [], "stats": [], "abilities": [], "moves": [], "sprites": ` + tt.sprites + `}`
			got, err := mapPokemon(25, decode(t, raw))
			if err != nil {
				t.Fatalf("mapPokemon() error = %v", err)
			}
			if got.Image != "" {
				t.Errorf("Image = %q, want empty", got.Image)
			}
		})
	}
}

func TestMapPokemon_ShapeErrors(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		requested int
		wantField string
	}{
		{"missing id", `{"name": "x", "height": 1, "weight": 1, "types": [], "stats": [], "abilities": [], "moves": []}`, 1, "id"},
		{"missing name", `{"id": 1, "height": 1, "weight": 1, "types": [], "stats": [], "abilities": [], "moves": []}`, 1, "name"},
		{"missing height", `{"id": 1, "name": "x", "weight": 1, "types": [], "stats": [], "abilities": [], "moves": []}`, 1, "height"},
		{"missing weight", `{"id": 1, "name": "x", "height": 1, "types": [], "stats": [], "abilities": [], "moves": []}`, 1, "weight"},
		{"missing types", `{"id": 1, "name": "x", "height": 1, "weight": 1, "stats": [], "abilities": [], "moves": []}`, 1, "types"},
		{"missing stats", `{"id": 1, "name": "x", "height": 1, "weight": 1, "types": [], "abilities": [], "moves": []}`, 1, "stats"},
		{"missing abilities", `{"id": 1, "name": "x", "height": 1, "weight": 1, "types": [], "stats": [], "moves": []}`, 1, "abilities"},
		{"missing moves", `{"id": 1, "name": "x", "height": 1, "weight": 1, "types": [], "stats": [], "abilities": []}`, 1, "moves"},
		{"id mismatch", `{"id": 2, "name": "x", "height": 1, "weight": 1, "types": [], "stats": [], "abilities": [], "moves": []}`, 1, "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapPokemon(tt.requested, decode(t, tt.raw))

			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("mapPokemon() error = %v, want *ShapeError", err)
			}
			if shapeErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", shapeErr.Field, tt.wantField)
			}
			if shapeErr.ID != tt.requested {
				t.Errorf("ID = %d, want %d", shapeErr.ID, tt.requested)
			}
		})
	}
}
