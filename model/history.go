package model

// History holds every generation of a run; index 0 is the initial state and
// index i the state after i steps
type History []Generation

// Iterate applies CalculateNext the given number of times and records each
// generation. A negative count is treated as zero.
func Iterate(initial Generation, iterations int) History {
	return iterate(initial, iterations, CalculateNext)
}

func iterate(initial Generation, iterations int, step func(Generation) Generation) History {
	iterations = max(iterations, 0)

	history := make(History, 0, iterations+1)
	current := NewGeneration(initial.cells...)
	history = append(history, current)
	for range iterations {
		current = step(current)
		history = append(history, current)
	}
	return history
}

// Final returns the last generation, or the empty one for an empty history
func (h History) Final() Generation {
	if len(h) == 0 {
		return Generation{}
	}
	return h[len(h)-1]
}

// Populations returns the live cell count of each generation
func (h History) Populations() []int {
	counts := make([]int, len(h))
	for i, g := range h {
		counts[i] = g.Len()
	}
	return counts
}

// Period finds the first generation that repeats an earlier one. It returns
// the index of the earlier generation and the distance between the two.
// Translated copies (spaceships) do not count as repeats.
func (h History) Period() (start, period int, ok bool) {
	seen := make(map[string]int, len(h))
	for i, g := range h {
		hash := g.Hash()
		if first, found := seen[hash]; found {
			return first, i - first, true
		}
		seen[hash] = i
	}
	return 0, 0, false
}
