package centrality

import (
	"github.com/katalvlaran/contactnet/core"
	"gonum.org/v1/gonum/graph/network"
)

// BetweennessOf returns the normalized unweighted betweenness of every vertex.
//
// Shortest paths count hops (Brandes via gonum network.Betweenness); edge
// weights are ignored. gonum sums over ordered (s,t) pairs, which on an
// undirected graph counts each pair twice, so the raw score is divided by
// (n-1)(n-2) to get the fraction of unordered pairs. Graphs with n ≤ 2
// yield 0 everywhere, as do isolated vertices. Only pairs inside one
// component can route through a vertex.
//
// Complexity: O(V·E) time, O(V + E) space.
func BetweennessOf(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	v := newGonumView(g)
	n := len(v.ids)
	if n <= 2 {
		return v.byID(nil, 0), nil
	}

	raw := network.Betweenness(v.g)
	scale := 1 / (float64(n-1) * float64(n-2))

	return v.byID(raw, scale), nil
}
