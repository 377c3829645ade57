package pokedex

import (
	"fmt"

	"github.com/pfrederiksen/pokedata/internal/export"
)

// Write produces the workbook (one sheet per group, in order) followed by one
// CSV per group. It returns the paths written, workbook first.
func Write(exp *export.Exporter, workbookName string, results []GroupResult) ([]string, error) {
	sheets := make([]export.Sheet, 0, len(results))
	for _, r := range results {
		sheets = append(sheets, export.Sheet{Name: r.Group.Name, Table: r.Table})
	}

	workbook, err := exp.WriteWorkbook(workbookName, sheets)
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	files := []string{workbook}
	for _, r := range results {
		path, err := exp.WriteCSV(r.Group.CSVFileName(), r.Table)
		if err != nil {
			return files, fmt.Errorf("writing csv for %s: %w", r.Group, err)
		}
		files = append(files, path)
	}

	return files, nil
}
