package model

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-gol/rules"
	"github.com/sheikhrachel/sparse-gol/utils"
)

// CalculateNext computes the generation after g. Only the box around g
// expanded by one cell is searched, since a cell can only come alive next to
// an existing one. Every candidate is judged against g itself.
func CalculateNext(g Generation) Generation {
	box := CornersOf(g).Expand(1)

	var next []Cell
	for _, c := range GridBoundedByCorners(box.BottomLeft, box.TopRight) {
		if WillBeAlive(c, g) {
			next = append(next, c)
		}
	}
	return NewGeneration(next...)
}

// Stepper advances generations with a configurable rule, optional candidate
// grid pooling and optional parallel evaluation. Its output matches
// CalculateNext for the Conway rule in every mode.
type Stepper struct {
	rule    rules.Rule
	pool    *GridPool
	workers int
}

// NewStepper builds a stepper from the config
func NewStepper(config utils.Config) (*Stepper, error) {
	rule, err := rules.ParseRule(config.Rule)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewStepper] invalid rule: %+v", config.Rule)
	}

	s := &Stepper{rule: rule, workers: 1}
	if config.UseMemoryPool {
		s.pool = NewGridPool()
	}
	if config.UseParallel {
		s.workers = config.Workers
		if s.workers <= 0 {
			s.workers = runtime.NumCPU()
		}
	}
	return s, nil
}

// Rule returns the rule the stepper applies
func (s *Stepper) Rule() rules.Rule {
	return s.rule
}

// Next computes the generation after g
func (s *Stepper) Next(g Generation) Generation {
	box := CornersOf(g).Expand(1)

	var candidates []Cell
	if s.pool != nil {
		candidates = s.pool.Get(min(box.Area(), maxGridPrealloc))
	} else {
		candidates = make([]Cell, 0, min(box.Area(), maxGridPrealloc))
	}
	candidates = appendGrid(candidates, box.BottomLeft, box.TopRight)

	var next []Cell
	if s.workers > 1 && len(candidates) > s.workers {
		next = s.evaluateParallel(candidates, g)
	} else {
		next = s.evaluate(candidates, g, nil)
	}

	GridToPool(candidates, s.pool)
	return NewGeneration(next...)
}

// Iterate runs the stepper n times, see Iterate
func (s *Stepper) Iterate(initial Generation, iterations int) History {
	return iterate(initial, iterations, s.Next)
}

// evaluate appends the candidates that survive under the rule to alive
func (s *Stepper) evaluate(candidates []Cell, g Generation, alive []Cell) []Cell {
	for _, c := range candidates {
		if s.rule.Apply(countLivingNeighbors(c, g), g.Contains(c)) {
			alive = append(alive, c)
		}
	}
	return alive
}

// evaluateParallel splits the candidates into contiguous chunks, one per
// worker. Chunks are joined in order, so the result equals evaluate's.
func (s *Stepper) evaluateParallel(candidates []Cell, g Generation) []Cell {
	var (
		eg             errgroup.Group
		cellsPerWorker = (len(candidates) + s.workers - 1) / s.workers // Ceiling division
		results        = make([][]Cell, s.workers)
	)

	for i := range s.workers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(candidates))
		)
		if start >= len(candidates) {
			break
		}

		eg.Go(func() error {
			results[i] = s.evaluate(candidates[start:end], g, nil)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in parallel processing: %v\n", err)
		return s.evaluate(candidates, g, nil)
	}

	var alive []Cell
	for _, chunk := range results {
		alive = append(alive, chunk...)
	}
	return alive
}
