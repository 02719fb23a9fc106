// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/GetEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc (numeric order of the counter).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - AddEdge rejects loops, parallel edges and negative weights; zero weights are valid contacts.
//   - Repeated contacts must be summed before AddEdge (see package contact).

package core

import (
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to carrying weight.
//
// Steps:
//  1. Validate IDs, weight sign, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the parallel-edge constraint.
//  4. Generate eid atomically, store the edge and mirror adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrNegativeWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight decimal.Decimal) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight.IsNegative() {
		return "", ErrNegativeWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	ensureAdjacency(g, from)
	ensureAdjacency(g, to)
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether an edge joins a and b (in either order).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Weight returns the weight of the edge joining a and b.
// Returns ErrEdgeNotFound when no such edge exists.
func (g *Graph) Weight(a, b string) (decimal.Decimal, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacency[a][b]
	if !ok {
		return decimal.Zero, ErrEdgeNotFound
	}

	return g.edges[eid].Weight, nil
}

// GetEdge returns a copy of the edge with the given ID.
func (g *Graph) GetEdge(edgeID string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns all edges sorted by their numeric ID suffix ascending
// (insertion order). Returned pointers are live; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge ID "e<N>".
// Caller must hold muEdgeAdj write lock.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeLess orders "e<N>" identifiers by N; shorter IDs have smaller N.
func edgeLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
