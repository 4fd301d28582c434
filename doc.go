// Package gridcolor simulates greedy colour-conflict repair on a 2D grid.
//
// Nodes of an m×n grid are coloured (randomly or in row-major clusters), then
// every node that shares a colour with a neighbour is recoloured from the
// colours its neighbours leave free, until the colouring is proper or an
// iteration cap stops the run.
//
// Packages, leaves first:
//
//	core/      - thread-safe string-keyed graph used for exports
//	gridgraph/ - immutable 4-connected grid with O(1) neighbour lookup
//	coloring/  - per-node colours, conflict queries, initial strategies
//	resolver/  - the repair loop (snapshot or in-place schedule)
//	render/    - text, Mermaid and no-op views of a colouring
//	metrics/   - Prometheus counters fed by resolver hooks
//
// The gridcolor command in cmd/gridcolor runs one experiment per strategy:
//
//	go run ./cmd/gridcolor -m 50 -n 50 -k 4 --strategy random --strategy clustered
//
// Quick ASCII example of a 2×2 grid whose top row is in conflict:
//
//	1───1
//	│   │
//	2───3
package gridcolor
