package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Rule describes a Life-like automaton by the neighbor counts that give
// birth to a dead cell and the counts that keep a live cell alive
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is the standard B3/S23 rule
var Conway = Rule{
	Birth:   [9]bool{3: true},
	Survive: [9]bool{2: true, 3: true},
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Apply reports whether a cell with the given number of living neighbors
// is alive in the next generation
func (r Rule) Apply(neighbors int, alive bool) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

// String renders the rule in B/S notation, e.g. "B3/S23"
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString("B")
	for n, ok := range r.Birth {
		if ok {
			b.WriteString(strconv.Itoa(n))
		}
	}
	b.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

// ParseRule parses B/S notation ("B3/S23", case-insensitive, either half may
// come first). An empty string yields Conway
func ParseRule(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Conway, nil
	}

	parts := strings.Split(strings.ToUpper(s), "/")
	if len(parts) != 2 {
		return Rule{}, errors.Errorf("[ParseRule] expected B.../S... notation, got: %+v", s)
	}

	var (
		r                  Rule
		seenBirth, seenSur bool
	)
	for _, part := range parts {
		if part == "" {
			return Rule{}, errors.Errorf("[ParseRule] empty rule half in: %+v", s)
		}
		var counts *[9]bool
		switch part[0] {
		case 'B':
			if seenBirth {
				return Rule{}, errors.Errorf("[ParseRule] duplicate birth half in: %+v", s)
			}
			seenBirth, counts = true, &r.Birth
		case 'S':
			if seenSur {
				return Rule{}, errors.Errorf("[ParseRule] duplicate survival half in: %+v", s)
			}
			seenSur, counts = true, &r.Survive
		default:
			return Rule{}, errors.Errorf("[ParseRule] unknown rule half %q in: %+v", part, s)
		}
		if err := parseCounts(part[1:], counts); err != nil {
			return Rule{}, errors.Wrapf(err, "[ParseRule] failed to parse: %+v", s)
		}
	}
	return r, nil
}

func parseCounts(digits string, counts *[9]bool) error {
	for _, d := range digits {
		if d < '0' || d > '8' {
			return errors.Errorf("neighbor count %q out of range 0-8", d)
		}
		counts[d-'0'] = true
	}
	return nil
}
