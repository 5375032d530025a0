package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	for gen, pop := range []int{5, 6, 7, 2} {
		s.Update(gen, pop, pop*2)
	}
	s.Finish()

	assert.Equal(t, 3, s.TotalGenerations)
	assert.Equal(t, 2, s.FinalPopulation)
	assert.Equal(t, 7, s.PeakPopulation)
	assert.Equal(t, 14, s.BoundingBoxSize)
	assert.InDelta(t, 5.0, s.AveragePopulation, 1e-9)

	var buf bytes.Buffer
	s.Print(&buf)
	assert.Contains(t, buf.String(), "Generations: 3 | Final: 2 | Peak: 7 | Avg Pop: 5.0")
	assert.Contains(t, buf.String(), "Largest bounding box: 14 cells")
}
