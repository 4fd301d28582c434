// Package experiment runs the configured initialise → resolve → render
// pipeline once per colouring strategy.
package experiment

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridcolor/coloring"
	"github.com/katalvlaran/gridcolor/gridgraph"
	"github.com/katalvlaran/gridcolor/internal/config"
	"github.com/katalvlaran/gridcolor/internal/logging"
	"github.com/katalvlaran/gridcolor/metrics"
	"github.com/katalvlaran/gridcolor/render"
	"github.com/katalvlaran/gridcolor/resolver"
)

// Outcome is the result of one strategy's run. Final is the repaired colouring.
type Outcome struct {
	Strategy         coloring.Strategy
	InitialConflicts int
	Result           *resolver.Result
	Final            *coloring.Coloring
}

// Summary returns the one-line report printed after each run.
func (o Outcome) Summary() string {
	name := titleCase(o.Strategy.String())
	if o.Result.Converged {
		return fmt.Sprintf("%s Distribution: Resolved in %d iterations.", name, o.Result.Iterations)
	}

	return fmt.Sprintf("%s Distribution: stopped after %d iterations with %d conflicting nodes.",
		name, o.Result.Iterations, o.Result.Remaining)
}

// Runner wires a validated Experiment to its collaborators.
// Renderer, Logger and Metrics are optional; Out receives renders and
// summaries and defaults to io.Discard.
type Runner struct {
	Config   config.Experiment
	Renderer render.Renderer
	Logger   *slog.Logger
	Metrics  *metrics.Collector
	Out      io.Writer
}

// Run executes every configured strategy in order on a freshly built grid.
// Strategy j seeds both initialisation and repair with Config.Seed+j.
func (r *Runner) Run() ([]Outcome, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}
	strategies, err := r.Config.ParsedStrategies()
	if err != nil {
		return nil, err
	}
	schedule, err := resolver.ParseSchedule(r.Config.Schedule)
	if err != nil {
		return nil, err
	}

	log := r.Logger
	if log == nil {
		log = logging.NewNop()
	}
	out := r.Out
	if out == nil {
		out = io.Discard
	}
	rnd := r.Renderer
	if rnd == nil {
		rnd = render.None{}
	}

	outcomes := make([]Outcome, 0, len(strategies))
	for j, strategy := range strategies {
		o, err := r.runOne(strategy, schedule, r.Config.Seed+int64(j), log)
		if err != nil {
			return outcomes, err
		}
		title := titleCase(strategy.String()) + " Color Distribution"
		if err := rnd.Render(out, o.Final, title); err != nil {
			return outcomes, fmt.Errorf("render %s: %w", strategy, err)
		}
		if _, err := fmt.Fprintln(out, o.Summary()); err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, o)
	}

	return outcomes, nil
}

func (r *Runner) runOne(strategy coloring.Strategy, schedule resolver.Schedule, seed int64, log *slog.Logger) (Outcome, error) {
	cfg := r.Config
	log = log.With("strategy", strategy.String(), "seed", seed)

	grid, err := gridgraph.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return Outcome{}, err
	}
	col, err := coloring.New(grid)
	if err != nil {
		return Outcome{}, err
	}
	if err := coloring.Assign(col, cfg.Colors, strategy,
		coloring.WithSeed(seed), coloring.WithClusterSize(cfg.ClusterSize)); err != nil {
		return Outcome{}, err
	}
	initial := col.ConflictCount()
	log.Info("experiment started", "rows", cfg.Rows, "cols", cfg.Cols, "colors", cfg.Colors,
		"schedule", schedule.String(), "initial_conflicts", initial)

	var metricsHook func(resolver.IterationStats)
	if r.Metrics != nil {
		metricsHook = r.Metrics.IterationHook(strategy.String())
	}
	hook := func(s resolver.IterationStats) {
		log.Debug("iteration", "iteration", s.Iteration, "conflicts", s.Conflicts,
			"recolored", s.Recolored, "deferred", s.Deferred)
		if metricsHook != nil {
			metricsHook(s)
		}
	}

	res, err := resolver.Resolve(col, cfg.Colors,
		resolver.WithSeed(seed),
		resolver.WithSchedule(schedule),
		resolver.WithMaxIterations(cfg.MaxIterations),
		resolver.WithWorkers(cfg.Workers),
		resolver.WithOnIteration(hook),
	)
	if err != nil {
		return Outcome{}, err
	}
	if r.Metrics != nil {
		r.Metrics.ObserveRun(strategy.String(), res)
	}

	if res.Converged {
		log.Info("experiment finished", "iterations", res.Iterations, "recolored", res.Recolored)
	} else {
		log.Warn("iteration cap reached", "iterations", res.Iterations,
			"remaining", res.Remaining, "regions", len(col.ConflictRegions()))
	}

	return Outcome{Strategy: strategy, InitialConflicts: initial, Result: res, Final: col}, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
