package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborsOf(t *testing.T) {
	got := NeighborsOf(Cell{X: 0, Y: 0})
	assert.Equal(t, []Cell{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}, got)

	far := Cell{X: -1000, Y: 250}
	neighbors := NeighborsOf(far)
	require.Len(t, neighbors, 8)
	assert.NotContains(t, neighbors, far)
}

func TestLivingNeighbors(t *testing.T) {
	g := NewGeneration(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 1}, Cell{X: 5, Y: 5}, Cell{X: -1, Y: 0})

	living := LivingNeighbors(Cell{X: 0, Y: 0}, g)
	assert.ElementsMatch(t, []Cell{{1, 1}, {-1, 0}}, living)
	assert.Equal(t, len(living), countLivingNeighbors(Cell{X: 0, Y: 0}, g))

	assert.Empty(t, LivingNeighbors(Cell{X: 0, Y: 0}, NewGeneration()))
}

func TestWillBeAlive(t *testing.T) {
	center := Cell{X: 0, Y: 0}
	ring := NeighborsOf(center)

	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"dead with 2 stays dead", 2, false, false},
		{"dead with 3 is born", 3, false, true},
		{"dead with 4 stays dead", 4, false, false},
		{"alive with 1 dies", 1, true, false},
		{"alive with 2 survives", 2, true, true},
		{"alive with 3 survives", 3, true, true},
		{"alive with 4 dies", 4, true, false},
		{"alive with 8 dies", 8, true, false},
		{"alive alone dies", 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := append([]Cell(nil), ring[:tt.neighbors]...)
			if tt.alive {
				cells = append(cells, center)
			}
			assert.Equal(t, tt.want, WillBeAlive(center, NewGeneration(cells...)))
		})
	}
}
