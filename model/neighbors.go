package model

import "github.com/sheikhrachel/sparse-gol/rules"

// NeighborsOf returns the 8 cells surrounding c. The plane has no edges, so
// the result always has exactly 8 entries.
func NeighborsOf(c Cell) []Cell {
	box := GridBoundedByCorners(c.Add(-1, -1), c.Add(1, 1))
	neighbors := box[:0]
	for _, n := range box {
		if !Same(n, c) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// LivingNeighbors returns the neighbors of c that are alive in g
func LivingNeighbors(c Cell, g Generation) []Cell {
	var living []Cell
	for _, n := range NeighborsOf(c) {
		if g.Contains(n) {
			living = append(living, n)
		}
	}
	return living
}

// countLivingNeighbors is LivingNeighbors without the allocation
func countLivingNeighbors(c Cell, g Generation) (count int) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Contains(c.Add(dx, dy)) {
				count++
			}
		}
	}
	return
}

// WillBeAlive reports whether c is alive in the generation after g under
// Conway's rules
func WillBeAlive(c Cell, g Generation) bool {
	return rules.ApplyConwayRules(len(LivingNeighbors(c, g)), g.Contains(c))
}
