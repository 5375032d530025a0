package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/patterns"
	"github.com/sheikhrachel/sparse-gol/utils"
)

var errUsage = errors.New("usage")

// parseFlags parses flags wherever they appear, so "square 3 -stats" works
// as well as "-stats square 3". Everything else is returned in order
func parseFlags(flags *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flags.Parse(args); err != nil {
			return nil, errors.Wrap(err, "[parseFlags] failed to parse flags")
		}
		if flags.NArg() == 0 {
			return positional, nil
		}
		positional = append(positional, flags.Arg(0))
		args = flags.Args()[1:]
	}
}

// loadPatterns returns the built-in table, merged with the pattern file when
// one is given
func loadPatterns(filename string) (patterns.Table, error) {
	table := patterns.Default()
	if filename == "" {
		return table, nil
	}

	extra, err := patterns.LoadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadPatterns] failed to load: %+v", filename)
	}
	return table.Merge(extra), nil
}

// parseArgs resolves the positional pattern name and iteration count
func parseArgs(args []string, table patterns.Table) (model.Generation, int, error) {
	if len(args) != 2 {
		return model.Generation{}, 0, errors.Wrapf(errUsage, "[parseArgs] want 2 arguments, got %d", len(args))
	}

	initial, ok := table.Lookup(args[0])
	if !ok {
		return model.Generation{}, 0, errors.Wrapf(errUsage, "[parseArgs] unknown pattern: %+v", args[0])
	}

	iterations, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return model.Generation{}, 0, errors.Wrapf(errUsage, "[parseArgs] invalid iteration count: %+v", args[1])
	}
	if iterations < 0 {
		return model.Generation{}, 0, errors.Wrapf(errUsage, "[parseArgs] negative iteration count: %d", iterations)
	}

	return initial, iterations, nil
}

// runSimulation iterates the stepper and gathers run statistics
func runSimulation(stepper *model.Stepper, initial model.Generation, iterations int) (model.History, *utils.Stats) {
	stats := utils.NewStats()
	history := stepper.Iterate(initial, iterations)
	for generation, g := range history {
		stats.Update(generation, g.Len(), model.CornersOf(g).Area())
	}
	stats.Finish()
	return history, stats
}

// displayCycleInfo reports whether the run settled into a repeating state
func displayCycleInfo(w io.Writer, history model.History) {
	start, period, ok := history.Period()
	switch {
	case history.Final().Len() == 0:
		fmt.Fprintln(w, "Status: Extinct")
	case ok:
		fmt.Fprintf(w, "Status: Cycle of period %d from generation %d\n", period, start)
	default:
		fmt.Fprintln(w, "Status: Active")
	}
}
