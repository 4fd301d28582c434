// Package metrics records resolver outcomes as Prometheus metrics.
//
// A Collector owns its metric vectors and registers them on a caller-chosen
// prometheus.Registerer, so tests and the CLI can use private registries.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/gridcolor/resolver"
)

// Outcome label values of gridcolor_runs_total.
const (
	OutcomeConverged = "converged"
	OutcomeCapped    = "capped"
)

// Collector groups the gridcolor_* metrics.
type Collector struct {
	runs       *prometheus.CounterVec
	iterations *prometheus.CounterVec
	recolors   *prometheus.CounterVec
	perRun     *prometheus.HistogramVec
	remaining  *prometheus.GaugeVec
}

// NewCollector creates the metric vectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridcolor_runs_total",
				Help: "Total number of resolver runs by outcome",
			},
			[]string{"strategy", "outcome"},
		),
		iterations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridcolor_iterations_total",
				Help: "Total number of completed resolver iterations",
			},
			[]string{"strategy"},
		),
		recolors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridcolor_recolorings_total",
				Help: "Total number of node recolourings",
			},
			[]string{"strategy"},
		),
		perRun: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gridcolor_iterations_per_run",
				Help:    "Iterations needed per resolver run",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
			[]string{"strategy"},
		),
		remaining: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gridcolor_remaining_conflicts",
				Help: "Conflicting nodes left after the last run",
			},
			[]string{"strategy"},
		),
	}
	if reg == nil {
		return c, nil
	}
	for _, col := range []prometheus.Collector{c.runs, c.iterations, c.recolors, c.perRun, c.remaining} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("NewCollector: %w", err)
		}
	}

	return c, nil
}

// IterationHook returns a resolver hook that counts iterations and
// recolourings for strategy as they happen.
func (c *Collector) IterationHook(strategy string) func(resolver.IterationStats) {
	iter := c.iterations.WithLabelValues(strategy)
	rec := c.recolors.WithLabelValues(strategy)

	return func(s resolver.IterationStats) {
		iter.Inc()
		rec.Add(float64(s.Recolored))
	}
}

// ObserveRun records the final result of one run.
func (c *Collector) ObserveRun(strategy string, res *resolver.Result) {
	if res == nil {
		return
	}
	outcome := OutcomeCapped
	if res.Converged {
		outcome = OutcomeConverged
	}
	c.runs.WithLabelValues(strategy, outcome).Inc()
	c.perRun.WithLabelValues(strategy).Observe(float64(res.Iterations))
	c.remaining.WithLabelValues(strategy).Set(float64(res.Remaining))
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("WriteText: gather: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("WriteText: %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
