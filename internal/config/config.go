// Package config loads the experiment parameters of gridcolor from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridcolor/coloring"
	"github.com/katalvlaran/gridcolor/internal/logging"
	"github.com/katalvlaran/gridcolor/render"
	"github.com/katalvlaran/gridcolor/resolver"
)

// ErrInvalidConfig wraps every validation failure of an Experiment.
var ErrInvalidConfig = errors.New("config: invalid experiment")

// Experiment holds everything one gridcolor run needs.
type Experiment struct {
	Rows          int      `yaml:"rows"`
	Cols          int      `yaml:"cols"`
	Colors        int      `yaml:"colors"`
	ClusterSize   int      `yaml:"cluster_size"`
	Strategies    []string `yaml:"strategies"`
	Schedule      string   `yaml:"schedule"`
	Seed          int64    `yaml:"seed"`
	MaxIterations int      `yaml:"max_iterations"`
	Workers       int      `yaml:"workers"`
	Renderer      string   `yaml:"renderer"`
	LogLevel      string   `yaml:"log_level"`
	MetricsFile   string   `yaml:"metrics_file"`
}

// Default returns the classic experiment: a 50×50 grid, four colours,
// clusters of five, both strategies, snapshot schedule.
func Default() Experiment {
	return Experiment{
		Rows:          50,
		Cols:          50,
		Colors:        4,
		ClusterSize:   coloring.DefaultClusterSize,
		Strategies:    []string{coloring.Random.String(), coloring.Clustered.String()},
		Schedule:      resolver.Snapshot.String(),
		Seed:          coloring.DefaultSeed,
		MaxIterations: resolver.DefaultMaxIterations,
		Workers:       1,
		Renderer:      render.NameText,
		LogLevel:      "info",
	}
}

// Load reads the YAML file at path over Default. Keys absent from the file
// keep their default value; unknown keys are rejected.
func Load(path string) (Experiment, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges and names. Every error wraps ErrInvalidConfig.
func (e Experiment) Validate() error {
	switch {
	case e.Rows <= 0 || e.Cols <= 0:
		return fmt.Errorf("%w: rows=%d, cols=%d must be positive", ErrInvalidConfig, e.Rows, e.Cols)
	case e.Colors < 1:
		return fmt.Errorf("%w: colors=%d must be at least 1", ErrInvalidConfig, e.Colors)
	case e.ClusterSize <= 0:
		return fmt.Errorf("%w: cluster_size=%d must be positive", ErrInvalidConfig, e.ClusterSize)
	case len(e.Strategies) == 0:
		return fmt.Errorf("%w: no strategies", ErrInvalidConfig)
	case e.MaxIterations < 0:
		return fmt.Errorf("%w: max_iterations=%d cannot be negative", ErrInvalidConfig, e.MaxIterations)
	case e.Workers < 1:
		return fmt.Errorf("%w: workers=%d must be at least 1", ErrInvalidConfig, e.Workers)
	}
	if _, err := e.ParsedStrategies(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	sched, err := resolver.ParseSchedule(e.Schedule)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if sched == resolver.InPlace && e.Workers > 1 {
		return fmt.Errorf("%w: schedule %s runs on a single worker", ErrInvalidConfig, sched)
	}
	switch e.Renderer {
	case render.NameText, render.NameMermaid, render.NameNone:
	default:
		return fmt.Errorf("%w: renderer %q", ErrInvalidConfig, e.Renderer)
	}
	if _, err := logging.ParseLevel(e.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// ParsedStrategies converts Strategies to coloring.Strategy values in order.
func (e Experiment) ParsedStrategies() ([]coloring.Strategy, error) {
	out := make([]coloring.Strategy, 0, len(e.Strategies))
	for _, name := range e.Strategies {
		s, err := coloring.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
