// Package core provides the thread-safe, in-memory Graph that the rest of
// gridcolor uses as its general graph collaborator.
//
// The Graph G = (V,E) is intentionally small:
//
//   - String-identified vertices carrying a free-form Metadata map
//     (row, col, color, ... for exported colorings).
//   - Undirected edges by default (WithDirected switches the default),
//     mirrored in the adjacency index so HasEdge works both ways.
//   - No parallel edges; self-loops only with WithLoops.
//   - Collision-free edge IDs ("e1", "e2", …) from an atomic counter.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert -> muEdgeAdj.
//
// Determinism:
//
//	Vertices()    - sorted lexicographically
//	Edges()       - sorted by edge sequence number
//	NeighborIDs() - unique, sorted lexicographically
//
// Core Methods:
//
//	AddVertex(id string) error                        // O(1)
//	HasVertex(id string) bool                         // O(1)
//	Vertex(id string) (*Vertex, error)                // O(1)
//	SetMetadata(id, key string, value any) error      // O(1)
//	AddEdge(from, to string) (edgeID string, err error) // O(1) amortized
//	HasEdge(from, to string) bool                     // O(1)
//	Neighbors(id string) ([]*Edge, error)             // O(d·log d)
//	NeighborIDs(id string) ([]string, error)          // O(d·log d)
//	Degree(id string) (int, error)                    // O(d)
//	Vertices() []string, Edges() []*Edge              // sorted snapshots
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
