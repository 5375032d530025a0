package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterateZero(t *testing.T) {
	h := Iterate(square, 0)
	require.Len(t, h, 1)
	assert.Equal(t, square.Cells(), h[0].Cells())
}

func TestIterateNegativeIsZero(t *testing.T) {
	h := Iterate(blinker, -5)
	require.Len(t, h, 1)
	assert.True(t, h[0].Equal(blinker))
}

func TestIterateLengthAndSteps(t *testing.T) {
	h := Iterate(rpentomino, 5)
	require.Len(t, h, 6)

	assert.True(t, h[0].Equal(rpentomino))
	for i := 1; i < len(h); i++ {
		assert.True(t, h[i].Equal(CalculateNext(h[i-1])), "generation %d", i)
	}
	assert.True(t, h.Final().Equal(h[5]))
}

func TestIterateSnapshotsAreIndependent(t *testing.T) {
	cells := []Cell{{0, 0}, {1, 0}, {2, 0}}
	h := Iterate(NewGeneration(cells...), 2)
	cells[0] = Cell{50, 50}

	assert.False(t, h[0].Contains(Cell{50, 50}))
	assert.True(t, h[0].Equal(h[2]))
	assert.False(t, h[0].Equal(h[1]))
}

func TestHistoryPopulations(t *testing.T) {
	h := Iterate(NewGeneration(Cell{0, 0}, Cell{1, 0}), 1)
	assert.Equal(t, []int{2, 0}, h.Populations())
	assert.Equal(t, 0, History(nil).Final().Len())
}

func TestHistoryPeriod(t *testing.T) {
	tests := []struct {
		name       string
		history    History
		wantStart  int
		wantPeriod int
		wantOK     bool
	}{
		{"still life", Iterate(square, 3), 0, 1, true},
		{"oscillator", Iterate(blinker, 3), 0, 2, true},
		{"spaceship never repeats in place", Iterate(glider, 8), 0, 0, false},
		{"single generation", Iterate(square, 0), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, period, ok := tt.history.Period()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantPeriod, period)
		})
	}
}
