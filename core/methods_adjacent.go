// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id, sorted by Edge.ID ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the degree of id.
//
// Notes:
//   - Returned pointers reference live catalog edges; treat them as immutable.
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

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return edgeLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the vertex IDs adjacent to id, sorted lexicographically ascending.
//
// Errors:
//   - Same as Neighbors.
//
// Complexity:
//   - Time O(d log d), Space O(d).
//
// AI-Hints:
//   - Use NeighborIDs when building traversal frontiers; the order is stable across runs.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
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

	ids := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency lazily creates the adjacency bucket for id.
// Caller must hold muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
}
