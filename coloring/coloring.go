package coloring

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gridcolor/core"
	"github.com/katalvlaran/gridcolor/gridgraph"
)

// New returns an all-Unassigned colouring over grid.
// Returns ErrNilGrid if grid is nil.
// Complexity: O(V).
func New(grid *gridgraph.Grid) (*Coloring, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}

	return &Coloring{grid: grid, colors: make([]int, grid.Order())}, nil
}

// FromColors returns a colouring over grid with the given colours copied in.
// Intended for fixtures and replaying saved states.
func FromColors(grid *gridgraph.Grid, colors []int) (*Coloring, error) {
	c, err := New(grid)
	if err != nil {
		return nil, err
	}
	if len(colors) != len(c.colors) {
		return nil, fmt.Errorf("FromColors: got %d colors for %d nodes: %w",
			len(colors), len(c.colors), ErrLengthMismatch)
	}
	copy(c.colors, colors)

	return c, nil
}

// Grid returns the underlying grid.
func (c *Coloring) Grid() *gridgraph.Grid { return c.grid }

// Len returns the number of nodes.
func (c *Coloring) Len() int { return len(c.colors) }

// Color returns the current colour of node i.
func (c *Coloring) Color(i int) int { return c.colors[i] }

// SetColor sets the colour of node i.
func (c *Coloring) SetColor(i, color int) { c.colors[i] = color }

// Colors returns a copy of all colours in node order.
func (c *Coloring) Colors() []int {
	out := make([]int, len(c.colors))
	copy(out, c.colors)

	return out
}

// Clone returns an independent copy sharing the same (immutable) grid.
func (c *Coloring) Clone() *Coloring {
	return &Coloring{grid: c.grid, colors: c.Colors()}
}

// Equal reports whether both colourings cover the same grid shape with identical colours.
func (c *Coloring) Equal(other *Coloring) bool {
	if other == nil || c.grid.Rows != other.grid.Rows || c.grid.Cols != other.grid.Cols {
		return false
	}
	for i, col := range c.colors {
		if other.colors[i] != col {
			return false
		}
	}

	return true
}

// InConflict reports whether some neighbour of node i has the same colour.
// Complexity: O(deg(i)).
func (c *Coloring) InConflict(i int) bool {
	col := c.colors[i]
	for _, j := range c.grid.Neighbors(i) {
		if c.colors[j] == col {
			return true
		}
	}

	return false
}

// Conflicts returns the indices of all nodes in conflict, ascending.
// Complexity: O(V·d).
func (c *Coloring) Conflicts() []int {
	var out []int
	for i := range c.colors {
		if c.InConflict(i) {
			out = append(out, i)
		}
	}

	return out
}

// ConflictCount returns the number of nodes in conflict.
func (c *Coloring) ConflictCount() int {
	n := 0
	for i := range c.colors {
		if c.InConflict(i) {
			n++
		}
	}

	return n
}

// ConflictEdges returns the grid edges whose endpoints share a colour.
func (c *Coloring) ConflictEdges() []gridgraph.Edge {
	var out []gridgraph.Edge
	for _, e := range c.grid.Edges() {
		if c.colors[e.U] == c.colors[e.V] {
			out = append(out, e)
		}
	}

	return out
}

// IsProper reports whether no edge joins two nodes of the same colour.
func (c *Coloring) IsProper() bool {
	for i := range c.colors {
		if c.InConflict(i) {
			return false
		}
	}

	return true
}

// ConflictRegions groups conflicting nodes into 4-connected regions.
func (c *Coloring) ConflictRegions() [][]int {
	return c.grid.Components(c.InConflict)
}

// ColorRegions returns the monochrome regions: maximal 4-connected sets of
// nodes sharing one colour. A proper colouring has exactly V regions.
// Regions are ordered by their lowest node index.
// Complexity: O(K·V·4) for K distinct colours.
func (c *Coloring) ColorRegions() [][]int {
	done := make(map[int]bool)
	var regions [][]int
	for _, col := range c.colors {
		if done[col] {
			continue
		}
		done[col] = true
		want := col
		regions = append(regions, c.grid.Components(func(j int) bool { return c.colors[j] == want })...)
	}
	sort.Slice(regions, func(a, b int) bool { return regions[a][0] < regions[b][0] })

	return regions
}

// Histogram returns node counts per colour; index c−1 holds colour c for
// c in [1, k]. Colours outside that range are not counted.
func (c *Coloring) Histogram(k int) []int {
	if k < 1 {
		return nil
	}
	out := make([]int, k)
	for _, col := range c.colors {
		if col >= 1 && col <= k {
			out[col-1]++
		}
	}

	return out
}

// Nodes returns a reporter view of every node in index order.
func (c *Coloring) Nodes() []Node {
	out := make([]Node, len(c.colors))
	for i, col := range c.colors {
		r, cc := c.grid.Coordinate(i)
		out[i] = Node{Index: i, Row: r, Col: cc, Color: col}
	}

	return out
}

// ToCoreGraph exports the colouring as a *core.Graph: the grid export
// (vertices "r,c" with row/col/index metadata) plus a "color" entry per vertex.
// Complexity: O(V + E).
func (c *Coloring) ToCoreGraph() *core.Graph {
	g := c.grid.ToCoreGraph()
	for i, col := range c.colors {
		_ = g.SetMetadata(c.grid.VertexID(i), "color", col)
	}

	return g
}
