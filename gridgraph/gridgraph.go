package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridcolor/core"
)

// vertexIDFmt is the "r,c" scheme used when exporting to core.Graph.
const vertexIDFmt = "%d,%d"

// New builds a rows×cols grid graph with 4-connectivity and no wraparound.
// Returns ErrInvalidDimension (wrapped with the offending values) if either
// dimension is not positive.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New: rows=%d, cols=%d: %w", rows, cols, ErrInvalidDimension)
	}

	n := rows * cols
	gg := &Grid{
		Rows:      rows,
		Cols:      cols,
		adjacency: make([][]int, n),
	}
	// One backing array for all neighbour lists.
	backing := make([]int, 0, 4*n)
	for i := 0; i < n; i++ {
		r, c := i/cols, i%cols
		start := len(backing)
		for _, d := range conn4 {
			nr, nc := r+d[0], c+d[1]
			if !gg.InBounds(nr, nc) {
				continue
			}
			backing = append(backing, nr*cols+nc)
		}
		gg.adjacency[i] = backing[start:len(backing):len(backing)]
		if deg := len(gg.adjacency[i]); deg > gg.maxDegree {
			gg.maxDegree = deg
		}
	}
	gg.edgeCount = rows*(cols-1) + cols*(rows-1)

	return gg, nil
}

// Order returns the number of nodes, Rows×Cols.
func (gg *Grid) Order() int {
	return gg.Rows * gg.Cols
}

// Neighbors returns the neighbours of node i in ascending index order.
// The slice is shared with the grid and must not be modified.
// Complexity: O(1).
func (gg *Grid) Neighbors(i int) []int {
	return gg.adjacency[i]
}

// Degree returns the number of neighbours of node i.
func (gg *Grid) Degree(i int) int {
	return len(gg.adjacency[i])
}

// MaxDegree returns the largest node degree in the grid (at most 4).
func (gg *Grid) MaxDegree() int {
	return gg.maxDegree
}

// EdgeCount returns the number of undirected edges,
// rows·(cols−1) + cols·(rows−1).
func (gg *Grid) EdgeCount() int {
	return gg.edgeCount
}

// Edges returns every undirected edge once, with U < V, sorted by (U, V).
// Complexity: O(R×C).
func (gg *Grid) Edges() []Edge {
	out := make([]Edge, 0, gg.edgeCount)
	for u, nbrs := range gg.adjacency {
		for _, v := range nbrs {
			if v > u {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (gg *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Rows && col >= 0 && col < gg.Cols
}

// Index maps (row, col) to the row-major index row×Cols + col.
// Complexity: O(1).
func (gg *Grid) Index(row, col int) int {
	return row*gg.Cols + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (gg *Grid) Coordinate(i int) (row, col int) {
	return i / gg.Cols, i % gg.Cols
}

// VertexID returns the "r,c" identifier node i carries in ToCoreGraph.
func (gg *Grid) VertexID(i int) string {
	r, c := gg.Coordinate(i)
	return fmt.Sprintf(vertexIDFmt, r, c)
}

// ToCoreGraph converts the grid into an undirected *core.Graph.
// Each node becomes a vertex "r,c" with metadata {row, col, index};
// edges follow Edges() order.
// Complexity: O(R×C + E).
func (gg *Grid) ToCoreGraph() *core.Graph {
	g := core.NewGraph()
	ids := make([]string, gg.Order())
	for i := range ids {
		ids[i] = gg.VertexID(i)
		r, c := gg.Coordinate(i)
		_ = g.AddVertex(ids[i])
		_ = g.SetMetadata(ids[i], "row", r)
		_ = g.SetMetadata(ids[i], "col", c)
		_ = g.SetMetadata(ids[i], "index", i)
	}
	for _, e := range gg.Edges() {
		_, _ = g.AddEdge(ids[e.U], ids[e.V])
	}

	return g
}
