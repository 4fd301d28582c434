// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
//
// Determinism:
//   - Neighbors() sorts by edge sequence number.
//   - NeighborIDs() returns unique IDs sorted lex asc.
package core

import "sort"

// Neighbors returns all edges incident to id.
// Neighborhood policy:
//   - Directed edges: only outgoing (e.From == id).
//   - Undirected edges: every incident edge, self-loops once.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate existence (ErrVertexNotFound), collect edges from adjacencyList[id].
//   - Stage 4: Sort by creation order.
//
// Complexity: Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacencyList[id]))
	for _, eid := range g.adjacencyList[id] {
		e := g.edges[eid]
		if e.IsNil() {
			continue
		}
		if e.Directed && e.From != id {
			continue
		}
		out = append(out, e)
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted lexicographically.
// For directed edges only outgoing neighbors are included.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
//
// Complexity: Time O(d + k log k), Space O(k).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
			continue
		}
		if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency guarantees that adjacencyList[id] is initialized.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]string)
	}
}
