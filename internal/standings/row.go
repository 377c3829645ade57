package standings

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/pokedata/internal/table"
)

// DeckSeparator joins the deck's Pokémon names into one cell.
const DeckSeparator = ", "

// Row is one player's line in the final standings.
type Row struct {
	Position string   `json:"position"`
	Player   string   `json:"player"`
	Points   string   `json:"points"`
	Record   string   `json:"record"`
	OPW      string   `json:"opw"`
	OOPW     string   `json:"oopw"`
	Deck     []string `json:"deck"`
}

// Columns returns the export column names in order.
func Columns() []string {
	return []string{"Posición", "Jugador", "Puntos", "Record", "OPW%", "OOPW%", "Pokémon del Deck"}
}

// DeckString returns the deck names joined with DeckSeparator.
func (r Row) DeckString() string {
	return strings.Join(r.Deck, DeckSeparator)
}

// Values returns the row's cells in Columns order.
func (r Row) Values() []any {
	return []any{r.Position, r.Player, r.Points, r.Record, r.OPW, r.OOPW, r.DeckString()}
}

// Table converts rows into an export table, preserving order.
func Table(rows []*Row) (*table.Table, error) {
	t := table.New(Columns()...)
	for i, r := range rows {
		if err := t.Append(r.Values()); err != nil {
			return nil, fmt.Errorf("adding standings row %d (%s): %w", i+1, r.Player, err)
		}
	}
	return t, nil
}
