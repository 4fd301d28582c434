package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcolor/coloring"
	"github.com/katalvlaran/gridcolor/gridgraph"
)

// mustGrid builds a rows×cols grid or fails the test.
func mustGrid(t testing.TB, rows, cols int) *gridgraph.Grid {
	t.Helper()
	gg, err := gridgraph.New(rows, cols)
	require.NoError(t, err)

	return gg
}

// fixture2x2 is
//
//	1 1
//	2 3
//
// with a single conflicting edge 0–1.
func fixture2x2(t *testing.T) *coloring.Coloring {
	t.Helper()
	c, err := coloring.FromColors(mustGrid(t, 2, 2), []int{1, 1, 2, 3})
	require.NoError(t, err)

	return c
}

func TestNew(t *testing.T) {
	_, err := coloring.New(nil)
	assert.ErrorIs(t, err, coloring.ErrNilGrid)

	c, err := coloring.New(mustGrid(t, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())
	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, coloring.Unassigned, c.Color(i))
	}
}

func TestFromColors_LengthMismatch(t *testing.T) {
	_, err := coloring.FromColors(mustGrid(t, 2, 2), []int{1, 2, 3})
	assert.ErrorIs(t, err, coloring.ErrLengthMismatch)
}

func TestConflictQueries(t *testing.T) {
	c := fixture2x2(t)

	assert.True(t, c.InConflict(0))
	assert.True(t, c.InConflict(1))
	assert.False(t, c.InConflict(2))
	assert.False(t, c.InConflict(3))

	assert.Equal(t, []int{0, 1}, c.Conflicts())
	assert.Equal(t, 2, c.ConflictCount())
	assert.Equal(t, []gridgraph.Edge{{U: 0, V: 1}}, c.ConflictEdges())
	assert.False(t, c.IsProper())
	assert.Equal(t, [][]int{{0, 1}}, c.ConflictRegions())
	assert.Equal(t, [][]int{{0, 1}, {2}, {3}}, c.ColorRegions())
	assert.Equal(t, []int{2, 1, 1}, c.Histogram(3))
	assert.Nil(t, c.Histogram(0))

	c.SetColor(1, 2)
	assert.True(t, c.IsProper())
	assert.Empty(t, c.Conflicts())
	assert.Len(t, c.ColorRegions(), 4)
}

func TestCloneEqual(t *testing.T) {
	c := fixture2x2(t)
	cp := c.Clone()
	assert.True(t, c.Equal(cp))

	cp.SetColor(3, 1)
	assert.False(t, c.Equal(cp), "clone must not share colour storage")
	assert.Equal(t, 3, c.Color(3))
	assert.False(t, c.Equal(nil))

	colors := c.Colors()
	colors[0] = 9
	assert.Equal(t, 1, c.Color(0), "Colors must return a copy")
}

func TestNodesAndCoreExport(t *testing.T) {
	c := fixture2x2(t)

	nodes := c.Nodes()
	require.Len(t, nodes, 4)
	assert.Equal(t, coloring.Node{Index: 2, Row: 1, Col: 0, Color: 2}, nodes[2])

	g := c.ToCoreGraph()
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	v, err := g.Vertex("1,1")
	require.NoError(t, err)
	assert.Equal(t, 3, v.Metadata["color"])
	assert.Equal(t, 3, v.Metadata["index"])
}
