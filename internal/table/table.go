// Package table is the in-memory tabular form handed to the writers: a fixed
// column schema and ordered rows of typed cells.
package table

import (
	"fmt"
	"math"
	"strconv"
)

// Table is an ordered collection of rows sharing one column schema. A nil
// cell marks a missing value.
type Table struct {
	Columns []string
	Rows    [][]any
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Append adds a row. The row must have exactly one value per column.
func (t *Table) Append(values []any) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.Columns))
	}
	row := make([]any, len(values))
	copy(row, values)
	t.Rows = append(t.Rows, row)
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Strings returns the header followed by every row formatted with FormatCell.
func (t *Table) Strings() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	header := make([]string, len(t.Columns))
	copy(header, t.Columns)
	out = append(out, header)

	for _, row := range t.Rows {
		out = append(out, FormatRow(row))
	}
	return out
}

// FormatRow formats every cell of row.
func FormatRow(row []any) []string {
	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = FormatCell(v)
	}
	return cells
}

// FormatCell renders one cell as CSV text. Missing cells are empty, and
// whole floats keep a single decimal so 1 m reads as "1.0".
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return strconv.FormatFloat(val, 'f', 1, 64)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
