// Package gridgraph builds the undirected m×n grid graph the colouring
// simulation runs on.
//
// What:
//
//   - Grid has Rows·Cols nodes addressed by row-major index 0 … Rows·Cols−1.
//   - Edges connect each node to its up/down/left/right in-bounds neighbours
//     (4-connectivity, no wraparound). Interior nodes have degree 4, border
//     nodes 3, corners 2 (fewer on 1-wide grids).
//   - Neighbour lists are precomputed once; the Grid is immutable afterwards.
//   - Components groups a subset of nodes into 4-connected regions.
//   - ToCoreGraph exports the grid as a *core.Graph for generic consumers.
//
// Complexity:
//
//   - New:          O(R×C), Memory: O(R×C).
//   - Neighbors:    O(1), returns the precomputed slice.
//   - Components:   O(R×C×4), Memory: O(R×C).
//   - ToCoreGraph:  O(R×C + E).
//
// Errors:
//
//   - ErrInvalidDimension: rows ≤ 0 or cols ≤ 0.
package gridgraph
