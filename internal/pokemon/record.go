package pokemon

import "strings"

// Stat is a PokeAPI base stat key.
type Stat string

const (
	StatHP             Stat = "hp"
	StatAttack         Stat = "attack"
	StatDefense        Stat = "defense"
	StatSpecialAttack  Stat = "special-attack"
	StatSpecialDefense Stat = "special-defense"
	StatSpeed          Stat = "speed"
)

// Stats lists the recognized stats in display order.
var Stats = []Stat{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

var statColumns = map[Stat]string{
	StatHP:             "HP",
	StatAttack:         "Ataque",
	StatDefense:        "Defensa",
	StatSpecialAttack:  "Ataque Especial",
	StatSpecialDefense: "Defensa Especial",
	StatSpeed:          "Velocidad",
}

// Recognized reports whether s is one of the six exported stats.
func (s Stat) Recognized() bool {
	_, ok := statColumns[s]
	return ok
}

// Column returns the export column name for s.
func (s Stat) Column() string {
	return statColumns[s]
}

// AbilitySeparator joins ability names into one cell.
const AbilitySeparator = ", "

// Record is one Pokémon flattened for export. Empty SecondaryType,
// PrimaryType or Image and absent Stats entries are written as missing cells.
type Record struct {
	ID            int
	Name          string
	PrimaryType   string
	SecondaryType string
	Height        float64 // metres
	Weight        float64 // kilograms
	Stats         map[Stat]int
	Moves         int
	Abilities     []string
	Image         string
}

// Columns returns the export column names in order.
func Columns() []string {
	cols := []string{"id", "nombre", "tipo_1", "tipo_2", "altura", "peso"}
	for _, s := range Stats {
		cols = append(cols, s.Column())
	}
	return append(cols, "movimientos", "habilidades", "imagen")
}

// Values returns the record's cells in Columns order.
func (r Record) Values() []any {
	values := []any{
		r.ID,
		r.Name,
		optional(r.PrimaryType),
		optional(r.SecondaryType),
		r.Height,
		r.Weight,
	}
	for _, s := range Stats {
		if v, ok := r.Stats[s]; ok {
			values = append(values, v)
		} else {
			values = append(values, nil)
		}
	}
	return append(values,
		r.Moves,
		strings.Join(r.Abilities, AbilitySeparator),
		optional(r.Image),
	)
}

// MissingStats returns the recognized stats absent from the record, in
// display order.
func (r Record) MissingStats() []Stat {
	var missing []Stat
	for _, s := range Stats {
		if _, ok := r.Stats[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
