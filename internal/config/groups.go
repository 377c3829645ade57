package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v2"
)

// Workbook sheet naming rules. Sheet names compare case-insensitively.
const (
	maxSheetNameLength = 31
	sheetNameForbidden = `:\/?*[]`
)

// Group is a named, inclusive range of Pokédex IDs. Each group becomes one
// workbook sheet and one CSV file.
type Group struct {
	Name  string `yaml:"name"`
	First int    `yaml:"first"`
	Last  int    `yaml:"last"`
}

// Size returns the number of IDs in the group.
func (g Group) Size() int {
	return g.Last - g.First + 1
}

// IDs returns every ID in the group in ascending order.
func (g Group) IDs() []int {
	ids := make([]int, 0, g.Size())
	for id := g.First; id <= g.Last; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (g Group) String() string {
	return fmt.Sprintf("%s (IDs %d-%d)", g.Name, g.First, g.Last)
}

// CSVFileName derives the group's CSV file name, e.g. "Generación 1" becomes
// "pokemon_generación_1.csv".
func (g Group) CSVFileName() string {
	return "pokemon_" + strings.ReplaceAll(strings.ToLower(g.Name), " ", "_") + ".csv"
}

// DefaultGroups returns the nine Pokémon generations. A fresh slice is
// returned on every call.
func DefaultGroups() []Group {
	return []Group{
		{Name: "Generación 1", First: 1, Last: 151},
		{Name: "Generación 2", First: 152, Last: 251},
		{Name: "Generación 3", First: 252, Last: 386},
		{Name: "Generación 4", First: 387, Last: 493},
		{Name: "Generación 5", First: 494, Last: 649},
		{Name: "Generación 6", First: 650, Last: 721},
		{Name: "Generación 7", First: 722, Last: 809},
		{Name: "Generación 8", First: 810, Last: 905},
		{Name: "Generación 9", First: 906, Last: 1025},
	}
}

type groupsFile struct {
	Groups []Group `yaml:"groups"`
}

// LoadGroups reads group definitions from a YAML file of the form:
//
//	groups:
//	  - name: Generación 1
//	    first: 1
//	    last: 151
func LoadGroups(path string) ([]Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading groups file: %w", err)
	}
	return ParseGroups(data)
}

// ParseGroups decodes and validates YAML group definitions.
func ParseGroups(data []byte) ([]Group, error) {
	var file groupsFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("parsing groups: %w", err)
	}
	if err := ValidateGroups(file.Groups); err != nil {
		return nil, err
	}
	return file.Groups, nil
}

// ValidateGroups checks that groups are non-empty, have positive, ordered
// bounds and names usable as both a workbook sheet and a CSV file. Two
// groups may not share a sheet name (compared case-insensitively) or a CSV
// file name.
func ValidateGroups(groups []Group) error {
	if len(groups) == 0 {
		return errors.New("no groups defined")
	}

	sheets := make(map[string]Group, len(groups))
	files := make(map[string]Group, len(groups))
	for i, g := range groups {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return fmt.Errorf("group %d: name is required", i+1)
		}
		if err := checkSheetName(g.Name); err != nil {
			return fmt.Errorf("group %q: %w", g.Name, err)
		}

		sheet := strings.ToLower(name)
		if prev, ok := sheets[sheet]; ok {
			return fmt.Errorf("group %q: duplicate name, already used by %s", g.Name, prev)
		}
		sheets[sheet] = g

		file := g.CSVFileName()
		if prev, ok := files[file]; ok {
			return fmt.Errorf("group %q: file name %s already used by %s", g.Name, file, prev)
		}
		files[file] = g

		if g.First < 1 {
			return fmt.Errorf("group %q: first ID must be positive, got %d", name, g.First)
		}
		if g.Last < g.First {
			return fmt.Errorf("group %q: last ID %d is before first ID %d", name, g.Last, g.First)
		}
	}
	return nil
}

func checkSheetName(name string) error {
	if n := utf8.RuneCountInString(name); n > maxSheetNameLength {
		return fmt.Errorf("name is %d characters, sheet names allow at most %d", n, maxSheetNameLength)
	}
	if strings.ContainsAny(name, sheetNameForbidden) {
		return fmt.Errorf("name contains one of %s, not allowed in sheet names", sheetNameForbidden)
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return errors.New("name may not start or end with an apostrophe")
	}
	return nil
}
