// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only snapshot facade over the graph catalog.
// Policy:
//   - No algorithms here; Stats() only counts and sums.
// AI-HINT (file):
//   - Stats() is an O(V+E) snapshot; use it for log lines and quick admissions.

package core

import "github.com/shopspring/decimal"

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	// VertexCount is |V|.
	VertexCount int

	// EdgeCount is |E|.
	EdgeCount int

	// IsolatedCount is the number of vertices with degree 0.
	IsolatedCount int

	// TotalWeight is Σ w(e) over all edges (total contact seconds).
	TotalWeight decimal.Decimal
}

// Stats returns a consistent snapshot of counts and the total edge weight.
//
// Implementation:
//   - Stage 1: Acquire muVert then muEdgeAdj read locks (global lock order).
//   - Stage 2: Count isolated vertices from adjacency bucket sizes.
//   - Stage 3: Sum edge weights exactly.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	st := &GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		TotalWeight: decimal.Zero,
	}
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			st.IsolatedCount++
		}
	}
	for _, e := range g.edges {
		st.TotalWeight = st.TotalWeight.Add(e.Weight)
	}

	return st
}
