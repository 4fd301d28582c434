package coloring_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcolor/coloring"
)

func TestAssign_RandomInRange(t *testing.T) {
	for _, k := range []int{1, 2, 4, 7} {
		c, err := coloring.New(mustGrid(t, 6, 9))
		require.NoError(t, err)

		require.NoError(t, coloring.Assign(c, k, coloring.Random, coloring.WithSeed(int64(k))))
		for i := 0; i < c.Len(); i++ {
			assert.GreaterOrEqual(t, c.Color(i), 1)
			assert.LessOrEqual(t, c.Color(i), k)
		}
	}
}

func TestAssign_RandomDeterministic(t *testing.T) {
	grid := mustGrid(t, 5, 5)
	a, _ := coloring.New(grid)
	b, _ := coloring.New(grid)

	require.NoError(t, coloring.Assign(a, 4, coloring.Random, coloring.WithSeed(42)))
	require.NoError(t, coloring.Assign(b, 4, coloring.Random, coloring.WithRand(rand.New(rand.NewSource(42)))))
	assert.Equal(t, a.Colors(), b.Colors())

	// no RNG option falls back to DefaultSeed, not the global source
	d1, _ := coloring.New(grid)
	d2, _ := coloring.New(grid)
	require.NoError(t, coloring.Assign(d1, 4, coloring.Random))
	require.NoError(t, coloring.Assign(d2, 4, coloring.Random, coloring.WithSeed(coloring.DefaultSeed)))
	assert.Equal(t, d1.Colors(), d2.Colors())
}

func TestAssign_Clustered(t *testing.T) {
	c, err := coloring.New(mustGrid(t, 3, 3))
	require.NoError(t, err)

	require.NoError(t, coloring.Assign(c, 2, coloring.Clustered, coloring.WithClusterSize(2)))
	assert.Equal(t, []int{1, 1, 2, 2, 1, 1, 2, 2, 1}, c.Colors())
}

func TestAssign_ClusteredFormula(t *testing.T) {
	cases := []struct{ rows, cols, size, k int }{
		{5, 5, 5, 4},
		{4, 6, 3, 3},
		{2, 7, 1, 5},
		{3, 3, 20, 2},
	}
	for _, tc := range cases {
		c, _ := coloring.New(mustGrid(t, tc.rows, tc.cols))
		require.NoError(t, coloring.Assign(c, tc.k, coloring.Clustered, coloring.WithClusterSize(tc.size)))
		for i := 0; i < c.Len(); i++ {
			assert.Equal(t, (i/tc.size)%tc.k+1, c.Color(i), "node %d", i)
		}
	}
}

func TestAssign_ClusteredDefaultSize(t *testing.T) {
	c, _ := coloring.New(mustGrid(t, 2, 6))
	require.NoError(t, coloring.Assign(c, 4, coloring.Clustered))
	assert.Equal(t, []int{1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3}, c.Colors())
}

func TestAssign_Errors(t *testing.T) {
	grid := mustGrid(t, 2, 2)
	cases := []struct {
		name     string
		nilC     bool
		k        int
		strategy coloring.Strategy
		opts     []coloring.Option
		want     error
	}{
		{"NilColoring", true, 2, coloring.Random, nil, coloring.ErrNilColoring},
		{"ZeroColorsRandom", false, 0, coloring.Random, nil, coloring.ErrInvalidColorCount},
		{"NegativeColorsClustered", false, -1, coloring.Clustered, nil, coloring.ErrInvalidColorCount},
		{"ZeroClusterSize", false, 2, coloring.Clustered, []coloring.Option{coloring.WithClusterSize(0)}, coloring.ErrInvalidClusterSize},
		{"NegativeClusterSize", false, 2, coloring.Clustered, []coloring.Option{coloring.WithClusterSize(-3)}, coloring.ErrInvalidClusterSize},
		{"UnknownStrategy", false, 2, coloring.Strategy(9), nil, coloring.ErrUnknownStrategy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c *coloring.Coloring
			if !tc.nilC {
				c, _ = coloring.FromColors(grid, []int{7, 7, 7, 7})
			}
			err := coloring.Assign(c, tc.k, tc.strategy, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			if c != nil {
				assert.Equal(t, []int{7, 7, 7, 7}, c.Colors(), "colours must be untouched on error")
			}
		})
	}
}

func TestAssign_RandomIgnoresClusterSize(t *testing.T) {
	c, _ := coloring.New(mustGrid(t, 2, 2))
	assert.NoError(t, coloring.Assign(c, 3, coloring.Random, coloring.WithClusterSize(0)))
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { coloring.WithRand(nil) })
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]coloring.Strategy{
		"random":     coloring.Random,
		"RANDOM":     coloring.Random,
		" clustered": coloring.Clustered,
		"cluster":    coloring.Clustered,
	} {
		got, err := coloring.ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := coloring.ParseStrategy("stripes")
	assert.ErrorIs(t, err, coloring.ErrUnknownStrategy)

	assert.Equal(t, "random", coloring.Random.String())
	assert.Equal(t, "clustered", coloring.Clustered.String())
	assert.Equal(t, "Strategy(9)", coloring.Strategy(9).String())
}
