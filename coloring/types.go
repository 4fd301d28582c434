package coloring

import (
	"errors"

	"github.com/katalvlaran/gridcolor/gridgraph"
)

// Sentinel errors for colouring operations.
var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("coloring: grid is nil")

	// ErrNilColoring indicates an operation received a nil *Coloring.
	ErrNilColoring = errors.New("coloring: coloring is nil")

	// ErrInvalidColorCount indicates a colour count K < 1.
	ErrInvalidColorCount = errors.New("coloring: color count must be at least 1")

	// ErrInvalidClusterSize indicates a non-positive cluster size for the clustered strategy.
	ErrInvalidClusterSize = errors.New("coloring: cluster size must be positive")

	// ErrLengthMismatch indicates a colour slice whose length differs from the grid order.
	ErrLengthMismatch = errors.New("coloring: colors length does not match grid order")

	// ErrUnknownStrategy indicates an unsupported initial-assignment strategy.
	ErrUnknownStrategy = errors.New("coloring: unknown strategy")
)

// Unassigned is the colour of a node no strategy has touched yet.
const Unassigned = 0

// Coloring is a colour assignment over a grid. The grid is shared and
// immutable; colors is owned by the Coloring and mutated in place.
// A Coloring is not safe for concurrent mutation.
type Coloring struct {
	grid   *gridgraph.Grid
	colors []int
}

// Node is a read-only view of one grid node for reporters.
type Node struct {
	Index int
	Row   int
	Col   int
	Color int
}
