package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	usageLine = "Usage: sparse-gol <pattern> <iterations>"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive the CLI
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("sparse-gol", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		configFile   = flags.String("config", "", "Path to a JSON or YAML configuration file")
		patternsFile = flags.String("patterns", "", "Path to a YAML file of extra patterns")
		showStats    = flags.Bool("stats", false, "Print a run summary to stderr")
		listPatterns = flags.Bool("list", false, "List known patterns and exit")
	)
	positional, err := parseFlags(flags, args)
	if err != nil {
		fmt.Fprintln(stdout, usageLine)
		return exitUsage
	}

	config := utils.DefaultConfig()
	if *configFile != "" {
		if config, err = utils.LoadConfig(*configFile); err != nil {
			fmt.Fprintln(stderr, "Error loading config:", err)
			return exitError
		}
	}

	table, err := loadPatterns(*patternsFile)
	if err != nil {
		fmt.Fprintln(stderr, "Error loading patterns:", err)
		return exitError
	}

	if *listPatterns {
		for _, name := range table.Names() {
			fmt.Fprintln(stdout, name)
		}
		return exitOK
	}

	initial, iterations, err := parseArgs(positional, table)
	if err != nil {
		fmt.Fprintln(stdout, usageLine)
		return exitUsage
	}

	stepper, err := model.NewStepper(config)
	if err != nil {
		fmt.Fprintln(stderr, "Error configuring simulation:", err)
		return exitError
	}

	history, stats := runSimulation(stepper, initial, iterations)

	renderer := model.NewTerminalRenderer(config.AliveGlyph, config.DeadGlyph)
	renderer.Out = stdout
	if err = renderer.DisplayHistory(history); err != nil {
		fmt.Fprintln(stderr, "Error writing output:", errors.Wrap(err, "[run] failed to render history"))
		return exitError
	}

	if *showStats {
		stats.Print(stderr)
	}
	if config.DetectCycles {
		displayCycleInfo(stderr, history)
	}
	return exitOK
}
