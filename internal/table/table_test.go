package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppend(t *testing.T) {
	tbl := New("id", "nombre")

	if err := tbl.Append([]any{1, "bulbasaur"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := tbl.Append([]any{2}); err == nil {
		t.Error("Append() with too few values expected error, got nil")
	}
	if err := tbl.Append([]any{3, "venusaur", "extra"}); err == nil {
		t.Error("Append() with too many values expected error, got nil")
	}

	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestAppend_CopiesRow(t *testing.T) {
	tbl := New("a")
	row := []any{"before"}
	if err := tbl.Append(row); err != nil {
		t.Fatal(err)
	}
	row[0] = "after"

	if tbl.Rows[0][0] != "before" {
		t.Errorf("stored row changed with caller's slice: %v", tbl.Rows[0][0])
	}
}

func TestNew_CopiesColumns(t *testing.T) {
	cols := []string{"a", "b"}
	tbl := New(cols...)
	cols[0] = "z"

	if tbl.Columns[0] != "a" {
		t.Errorf("Columns[0] = %q, want a", tbl.Columns[0])
	}
}

func TestStrings(t *testing.T) {
	tbl := New("id", "tipo_2", "altura")
	_ = tbl.Append([]any{1, nil, 0.7})
	_ = tbl.Append([]any{6, "flying", 1.7})

	want := [][]string{
		{"id", "tipo_2", "altura"},
		{"1", "", "0.7"},
		{"6", "flying", "1.7"},
	}
	if diff := cmp.Diff(want, tbl.Strings()); diff != "" {
		t.Errorf("Strings() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Ataque Especial", "Ataque Especial"},
		{"int", 151, "151"},
		{"int64", int64(-3), "-3"},
		{"whole float", 1.0, "1.0"},
		{"fraction", 0.7, "0.7"},
		{"large fraction", 999.9, "999.9"},
		{"zero", 0.0, "0.0"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.in); got != tt.want {
				t.Errorf("FormatCell(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
