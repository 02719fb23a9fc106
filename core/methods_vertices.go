// File: methods_vertices.go
// Role: Vertex lifecycle, attribute access and per-vertex degree queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
//
// AI-Hints (file):
//   - Vertices() is a stable enumeration surface; rely on it for reproducible outputs.
//   - Degree() counts distinct neighbors; Strength() sums incident weights exactly.
package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, allocate Vertex and register it.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Lock order is muVert -> muEdgeAdj to avoid lock inversion across vertex/edge code paths.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// SetAttributes replaces the attribute record of an existing vertex.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist (attributes never create vertices).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) SetAttributes(id string, attrs Attributes) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Attrs = attrs

	return nil
}

// Attributes returns a copy of the vertex's attribute record.
func (g *Graph) Attributes(id string) (Attributes, error) {
	if id == "" {
		return Attributes{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Attributes{}, ErrVertexNotFound
	}

	return v.Attrs, nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// Determinism:
//   - Deterministic output order (lex asc).
//
// Complexity:
//   - Time O(V log V), Space O(V).
//
// AI-Hints:
//   - Use Vertices() for reproducible traversal seeds and stable test assertions.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of distinct neighbors of id.
// With no parallel edges and no loops this equals the number of incident edges.
//
// Errors:
//   - ErrEmptyVertexID: if id is empty.
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}

// Strength returns the weighted degree of id: the exact sum of incident edge weights.
// An isolated vertex has strength 0.
//
// Errors:
//   - ErrEmptyVertexID: if id is empty.
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (g *Graph) Strength(id string) (decimal.Decimal, error) {
	if id == "" {
		return decimal.Zero, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return decimal.Zero, ErrVertexNotFound
	}
	sum := decimal.Zero
	for _, eid := range g.adjacency[id] {
		sum = sum.Add(g.edges[eid].Weight)
	}

	return sum, nil
}
