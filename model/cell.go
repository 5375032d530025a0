package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"
)

// Cell is a coordinate on the unbounded plane
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy)
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Same reports whether two cells have equal coordinates
func Same(a, b Cell) bool {
	return a.X == b.X && a.Y == b.Y
}

// Generation is an immutable set of living cells. The zero value is the
// empty generation.
type Generation struct {
	cells []Cell
	alive map[Cell]struct{}
}

// NewGeneration builds a generation from the given cells. Duplicates collapse
// and the first-seen order is kept; the input slice is not retained.
func NewGeneration(cells ...Cell) Generation {
	g := Generation{
		cells: make([]Cell, 0, len(cells)),
		alive: make(map[Cell]struct{}, len(cells)),
	}
	for _, c := range cells {
		if _, ok := g.alive[c]; ok {
			continue
		}
		g.alive[c] = struct{}{}
		g.cells = append(g.cells, c)
	}
	return g
}

// Contains reports whether the cell is alive in the generation
func Contains(g Generation, c Cell) bool {
	return g.Contains(c)
}

// Contains reports whether the cell is alive
func (g Generation) Contains(c Cell) bool {
	_, ok := g.alive[c]
	return ok
}

// Len returns the number of living cells
func (g Generation) Len() int {
	return len(g.cells)
}

// Cells returns a copy of the living cells in stored order
func (g Generation) Cells() []Cell {
	return slices.Clone(g.cells)
}

// Equal reports set equality; order is ignored
func (g Generation) Equal(other Generation) bool {
	if g.Len() != other.Len() {
		return false
	}
	for _, c := range g.cells {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Translate returns a new generation with every cell offset by (dx, dy)
func (g Generation) Translate(dx, dy int) Generation {
	moved := make([]Cell, len(g.cells))
	for i, c := range g.cells {
		moved[i] = c.Add(dx, dy)
	}
	return NewGeneration(moved...)
}

// Hash returns an MD5 digest of the cell set. Two generations with the same
// cells hash equally regardless of order.
func (g Generation) Hash() string {
	sorted := g.Cells()
	slices.SortFunc(sorted, compareCells)

	var (
		h   = md5.New()
		buf [16]byte
	)
	for _, c := range sorted {
		binary.BigEndian.PutUint64(buf[:8], uint64(int64(c.X)))
		binary.BigEndian.PutUint64(buf[8:], uint64(int64(c.Y)))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// compareCells orders by X then Y, matching candidate enumeration
func compareCells(a, b Cell) int {
	if a.X != b.X {
		if a.X < b.X {
			return -1
		}
		return 1
	}
	if a.Y < b.Y {
		return -1
	}
	if a.Y > b.Y {
		return 1
	}
	return 0
}
