// Package coloring holds the mutable per-node colour assignment over a
// gridgraph.Grid and the strategies that produce the initial assignment.
//
// What:
//
//   - Coloring pairs an immutable *gridgraph.Grid with one int colour per
//     node. Colours are 1…K once assigned; 0 means "not yet assigned".
//   - A node is in conflict when any neighbour shares its colour.
//     Conflicts, ConflictEdges, ConflictRegions and IsProper inspect this.
//   - Assign fills the colouring with one of two strategies:
//     Random    - each node independently uniform in [1, K];
//     Clustered - node i gets ((i div clusterSize) mod K) + 1, i.e.
//     contiguous runs of row-major indices share a colour.
//   - Nodes and ToCoreGraph expose coordinates, colours and edges to any
//     rendering backend.
//
// Determinism:
//
//	All randomness flows through an explicit *rand.Rand (WithSeed/WithRand).
//	Without one, Random draws from a source seeded with DefaultSeed, never
//	from the process-wide generator.
//
// Errors:
//
//   - ErrNilGrid:            New called with a nil grid.
//   - ErrNilColoring:        Assign called with a nil colouring.
//   - ErrInvalidColorCount:  K < 1.
//   - ErrInvalidClusterSize: clustered strategy with clusterSize ≤ 0.
//   - ErrUnknownStrategy:    unsupported Strategy value or name.
//   - ErrLengthMismatch:     FromColors given the wrong number of colours.
//
// All validation happens before the first mutation.
package coloring
