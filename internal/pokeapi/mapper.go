package pokeapi

import (
	"fmt"
	"sort"

	"github.com/pfrederiksen/pokedata/internal/pokemon"
)

func mapPokemon(requested int, p pokemonResponse) (pokemon.Record, error) {
	if field := missingField(p); field != "" {
		return pokemon.Record{}, &ShapeError{ID: requested, Field: field}
	}
	if *p.ID != requested {
		return pokemon.Record{}, &ShapeError{
			ID:    requested,
			Field: "id",
			Err:   fmt.Errorf("payload has id %d", *p.ID),
		}
	}

	primary, secondary := mapTypes(p.Types)

	return pokemon.Record{
		ID:            *p.ID,
		Name:          *p.Name,
		PrimaryType:   primary,
		SecondaryType: secondary,
		Height:        float64(*p.Height) / unitScale,
		Weight:        float64(*p.Weight) / unitScale,
		Stats:         mapStats(p.Stats),
		Moves:         len(p.Moves),
		Abilities:     mapAbilities(p.Abilities),
		Image:         officialArtworkURL(p.Sprites),
	}, nil
}

// missingField returns the first required field absent from p, or "".
func missingField(p pokemonResponse) string {
	switch {
	case p.ID == nil:
		return "id"
	case p.Name == nil:
		return "name"
	case p.Height == nil:
		return "height"
	case p.Weight == nil:
		return "weight"
	case p.Types == nil:
		return "types"
	case p.Stats == nil:
		return "stats"
	case p.Abilities == nil:
		return "abilities"
	case p.Moves == nil:
		return "moves"
	}
	return ""
}

func mapTypes(slots []typeSlot) (string, string) {
	ordered := make([]typeSlot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Slot < ordered[j].Slot
	})

	var primary, secondary string
	if len(ordered) > 0 {
		primary = ordered[0].Type.Name
	}
	if len(ordered) > 1 {
		secondary = ordered[1].Type.Name
	}
	return primary, secondary
}

// mapStats keeps only the recognized stats. Unrecognized names are dropped.
func mapStats(entries []statEntry) map[pokemon.Stat]int {
	stats := make(map[pokemon.Stat]int, len(pokemon.Stats))
	for _, e := range entries {
		s := pokemon.Stat(e.Stat.Name)
		if s.Recognized() {
			stats[s] = e.BaseStat
		}
	}
	return stats
}

func mapAbilities(slots []abilitySlot) []string {
	names := make([]string, 0, len(slots))
	for _, a := range slots {
		names = append(names, a.Ability.Name)
	}
	return names
}

func officialArtworkURL(sprites *spritesResponse) string {
	if sprites == nil {
		return ""
	}
	artwork, ok := sprites.Other[officialArtwork]
	if !ok || artwork.FrontDefault == nil {
		return ""
	}
	return *artwork.FrontDefault
}
