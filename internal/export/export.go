package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/pokedata/internal/table"
	"github.com/xuri/excelize/v2"
)

// Exporter writes tables into one output directory.
type Exporter struct {
	dir string
}

// Sheet is one named workbook sheet.
type Sheet struct {
	Name  string
	Table *table.Table
}

// New creates an Exporter for dir, creating the directory if needed.
func New(dir string) (*Exporter, error) {
	if dir == "" {
		dir = "."
	}

	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Exporter{dir: dir}, nil
}

// Dir returns the resolved output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Path returns the full path of an output file.
func (e *Exporter) Path(name string) string {
	return filepath.Join(e.dir, name)
}

// WriteCSV writes t to name as UTF-8 CSV with a header row and returns the
// path written.
func (e *Exporter) WriteCSV(name string, t *table.Table) (string, error) {
	path := e.Path(name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(t.Strings()); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	return path, nil
}

// WriteWorkbook writes one XLSX file with a sheet per entry, in order, and
// returns the path written. Numeric cells stay numeric; missing cells are
// left blank.
func (e *Exporter) WriteWorkbook(name string, sheets []Sheet) (string, error) {
	if len(sheets) == 0 {
		return "", errors.New("workbook needs at least one sheet")
	}

	path := e.Path(name)

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				return "", fmt.Errorf("naming sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return "", fmt.Errorf("adding sheet %q: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet); err != nil {
			return "", err
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", name, err)
	}
	return path, nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	header := make([]any, len(sheet.Table.Columns))
	for i, col := range sheet.Table.Columns {
		header[i] = col
	}

	rows := append([][]any{header}, sheet.Table.Rows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return fmt.Errorf("writing sheet %q row %d: %w", sheet.Name, i+1, err)
		}
	}
	return nil
}

// ReadCSV reads a CSV file written by WriteCSV back into a header and rows.
func ReadCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("reading %s: missing header", path)
	}

	return records[0], records[1:], nil
}
