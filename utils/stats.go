package utils

import (
	"fmt"
	"io"
	"time"
)

// Stats summarizes a simulation run
type Stats struct {
	TotalGenerations  int
	AveragePopulation float64
	PeakPopulation    int
	FinalPopulation   int
	BoundingBoxSize   int
	StartTime         time.Time
	Elapsed           time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation. The generation index is zero based, so the
// initial state is generation 0.
func (s *Stats) Update(generation int, population int, boundingBoxSize int) {
	s.TotalGenerations = generation
	s.FinalPopulation = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	s.BoundingBoxSize = max(s.BoundingBoxSize, boundingBoxSize)

	// Running mean over generations 0..generation
	s.AveragePopulation += (float64(population) - s.AveragePopulation) / float64(generation+1)
}

// Finish stamps the elapsed time
func (s *Stats) Finish() {
	s.Elapsed = time.Since(s.StartTime)
}

// Print writes a short summary
func (s *Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "Generations: %d | Final: %d | Peak: %d | Avg Pop: %.1f\n",
		s.TotalGenerations, s.FinalPopulation, s.PeakPopulation, s.AveragePopulation)
	fmt.Fprintf(w, "Largest bounding box: %d cells | Runtime: %s\n",
		s.BoundingBoxSize, s.Elapsed.Round(time.Microsecond))
}
