// File: view.go
// Role: Derived graph views that keep topology but reinterpret weights.
// Determinism:
//   - Vertices and edges are copied in sorted order, so edge IDs of the view
//     follow the source's Edges() order.

package core

import "github.com/shopspring/decimal"

// UnitWeightView returns a deep copy of g with every edge weight replaced by 1.
// Attributes are copied; the source graph is not modified.
//
// The view is used where the analysis must ignore contact durations
// (unweighted betweenness and closeness run on hop counts).
//
// Complexity: O(V+E).
func UnitWeightView(g *Graph) *Graph {
	out := NewGraph()
	if g == nil {
		return out
	}

	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: id, Attrs: v.Attrs}
		out.adjacency[id] = make(map[string]string)
	}
	g.muVert.RUnlock()

	for _, e := range g.Edges() {
		// endpoints already exist and the source never holds loops or parallels.
		_, _ = out.AddEdge(e.From, e.To, decimal.NewFromInt(1))
	}

	return out
}
