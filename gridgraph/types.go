package gridgraph

import "errors"

// ErrInvalidDimension indicates a non-positive row or column count.
var ErrInvalidDimension = errors.New("gridgraph: rows and cols must be positive")

// conn4 lists the (dRow, dCol) offsets of the 4-neighbourhood, ordered so
// that neighbour indices come out ascending: up, left, right, down.
var conn4 = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Edge is an undirected grid edge between node indices U < V.
type Edge struct {
	U, V int
}

// Grid is an immutable Rows×Cols grid graph with 4-connectivity.
// adjacency[i] holds the neighbours of node i in ascending order.
type Grid struct {
	Rows, Cols int
	adjacency  [][]int
	maxDegree  int
	edgeCount  int
}
