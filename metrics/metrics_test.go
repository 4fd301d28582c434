package metrics_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcolor/coloring"
	"github.com/katalvlaran/gridcolor/gridgraph"
	"github.com/katalvlaran/gridcolor/metrics"
	"github.com/katalvlaran/gridcolor/resolver"
)

func TestCollector_HookAndRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	hook := col.IterationHook("random")
	hook(resolver.IterationStats{Iteration: 1, Conflicts: 4, Recolored: 3, Deferred: 1})
	hook(resolver.IterationStats{Iteration: 2, Conflicts: 2, Recolored: 2})
	col.ObserveRun("random", &resolver.Result{Iterations: 2, Converged: true})
	col.ObserveRun("clustered", &resolver.Result{Iterations: 1000, Remaining: 7})
	col.ObserveRun("clustered", nil)

	n, err := testutil.GatherAndCount(reg, "gridcolor_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	out := buf.String()
	for _, want := range []string{
		`gridcolor_iterations_total{strategy="random"} 2`,
		`gridcolor_recolorings_total{strategy="random"} 5`,
		`gridcolor_runs_total{outcome="converged",strategy="random"} 1`,
		`gridcolor_runs_total{outcome="capped",strategy="clustered"} 1`,
		`gridcolor_remaining_conflicts{strategy="clustered"} 7`,
		`gridcolor_iterations_per_run_count{strategy="clustered"} 1`,
		"# TYPE gridcolor_iterations_per_run histogram",
	} {
		assert.Contains(t, out, want)
	}
}

func TestCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	_, err = metrics.NewCollector(reg)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}

func TestCollector_WithResolver(t *testing.T) {
	gg, err := gridgraph.New(2, 2)
	require.NoError(t, err)
	c, err := coloring.FromColors(gg, []int{1, 1, 1, 1})
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	col, err := metrics.NewCollector(reg)
	require.NoError(t, err)
	res, err := resolver.Resolve(c, 1, resolver.WithMaxIterations(3), resolver.WithOnIteration(col.IterationHook("random")))
	require.NoError(t, err)
	col.ObserveRun("random", res)

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	assert.Contains(t, buf.String(), `gridcolor_iterations_total{strategy="random"} 3`)
	assert.Contains(t, buf.String(), `gridcolor_recolorings_total{strategy="random"} 0`)
	assert.Contains(t, buf.String(), `gridcolor_remaining_conflicts{strategy="random"} 4`)
}

func TestCollector_Unregistered(t *testing.T) {
	col, err := metrics.NewCollector(nil)
	require.NoError(t, err)
	col.IterationHook("random")(resolver.IterationStats{Recolored: 1})
	col.ObserveRun("random", &resolver.Result{Converged: true})
}
