// Package patterns holds the named starting patterns the CLI can seed a
// simulation with.
package patterns

import (
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/sparse-gol/model"
)

// Table maps a pattern name to its initial cells. It is read-only once built.
type Table map[string][]model.Cell

// Default returns the built-in patterns
func Default() Table {
	return Table{
		"rpentomino": {
			{X: 3, Y: 2},
			{X: 2, Y: 3},
			{X: 3, Y: 3},
			{X: 3, Y: 4},
			{X: 4, Y: 4},
		},
		// a block plus a glider heading away from it
		"glider": {
			{X: -2, Y: -2},
			{X: -1, Y: -2},
			{X: -2, Y: -1},
			{X: -1, Y: -1},
			{X: 1, Y: 1},
			{X: 2, Y: 1},
			{X: 3, Y: 1},
			{X: 3, Y: 2},
			{X: 2, Y: 3},
		},
		"square": {
			{X: 1, Y: 1},
			{X: 2, Y: 1},
			{X: 1, Y: 2},
			{X: 2, Y: 2},
		},
	}
}

// Lookup returns the generation seeded by the named pattern
func (t Table) Lookup(name string) (model.Generation, bool) {
	cells, ok := t[name]
	if !ok {
		return model.Generation{}, false
	}
	return model.NewGeneration(cells...), true
}

// Names returns the pattern names in sorted order
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Merge returns a new table holding t's patterns overridden by other's
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	for name, cells := range t {
		merged[name] = slices.Clone(cells)
	}
	for name, cells := range other {
		merged[name] = slices.Clone(cells)
	}
	return merged
}

// Parse decodes a YAML document mapping names to lists of [x, y] pairs
func Parse(data []byte) (Table, error) {
	var raw map[string][][]int
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "[Parse] failed to unmarshal patterns")
	}

	table := make(Table, len(raw))
	for name, pairs := range raw {
		if name == "" {
			return nil, errors.New("[Parse] pattern with empty name")
		}
		cells := make([]model.Cell, 0, len(pairs))
		for i, pair := range pairs {
			if len(pair) != 2 {
				return nil, errors.Errorf("[Parse] pattern %q cell %d: want [x, y], got %v", name, i, pair)
			}
			cells = append(cells, model.Cell{X: pair[0], Y: pair[1]})
		}
		table[name] = cells
	}
	return table, nil
}

// LoadFile reads a YAML pattern file
func LoadFile(filename string) (Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}

	table, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to parse file: %+v", filename)
	}
	return table, nil
}
