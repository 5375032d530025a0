package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a simulation run
type Config struct {
	AliveGlyph    string `json:"alive_glyph" yaml:"alive_glyph"`
	DeadGlyph     string `json:"dead_glyph" yaml:"dead_glyph"`
	Rule          string `json:"rule" yaml:"rule"`
	UseParallel   bool   `json:"use_parallel" yaml:"use_parallel"`
	UseMemoryPool bool   `json:"use_memory_pool" yaml:"use_memory_pool"`
	Workers       int    `json:"workers" yaml:"workers"`
	DetectCycles  bool   `json:"detect_cycles" yaml:"detect_cycles"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		AliveGlyph:    "▣",
		DeadGlyph:     "▢",
		Rule:          "B3/S23",
		UseParallel:   false,
		UseMemoryPool: true,
		Workers:       0, // 0 means one worker per CPU when parallel
		DetectCycles:  false,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by
// extension. Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
