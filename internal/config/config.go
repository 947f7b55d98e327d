// Package config loads YAML run configuration for the fieldpath CLIs,
// following the teacher corpus's own shape for server/tool configuration
// (defaults filled in code, overridden by an optional YAML file on disk).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Query describes a single start/end search request.
type Query struct {
	Start [3]int `yaml:"start"` // x, y, t (t ignored for 2D fields)
	End   [3]int `yaml:"end"`
}

// Run holds everything cmd/pathfind needs to load a field and execute one
// or more queries against it.
type Run struct {
	// GridPath is the input cost grid: a PNG (grayscale) or a
	// whitespace-separated text matrix, selected by file extension.
	GridPath string `yaml:"grid_path"`

	// Algorithm is one of "astar", "dijkstra", "fringe".
	Algorithm string `yaml:"algorithm"`

	// Temporal switches FindPath2D (false) for FindRouteTemporal (true).
	// Reach only applies when Temporal is true. TimeAxis is parsed but
	// cmd/pathfind does not read it: a temporal run loads the grid as a
	// one-frame volume with time on axis 0.
	Temporal bool `yaml:"temporal"`
	TimeAxis int  `yaml:"time_axis"` // which physical array axis is time (0,1,2)
	Reach    int  `yaml:"reach"`

	// Queries is the batch of start/end pairs to solve. Single-query runs
	// use a one-element slice.
	Queries []Query `yaml:"queries"`

	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// DefaultRun returns a Run with sensible defaults, mirroring the teacher
// corpus's DefaultLoginServer-style constructor.
func DefaultRun() Run {
	return Run{
		Algorithm: "astar",
		Temporal:  false,
		TimeAxis:  2,
		Reach:     1,
		LogLevel:  "info",
	}
}

// LoadRun loads a Run from a YAML file at path. A missing file is not an
// error: DefaultRun is returned unchanged, matching the teacher's
// LoadLoginServer behavior of tolerating an absent config on first run.
func LoadRun(path string) (Run, error) {
	cfg := DefaultRun()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
