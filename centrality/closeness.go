package centrality

import (
	"context"

	"github.com/katalvlaran/contactnet/bfs"
	"github.com/katalvlaran/contactnet/core"
)

// ClosenessOf returns the hop-count closeness of every vertex, corrected
// for disconnected graphs (Wasserman–Faust):
//
//	c(u) = (r-1)/Σd(u,v) · (r-1)/(n-1)
//
// where r counts the vertices reachable from u (u included) and the sum runs
// over them. Isolated vertices, and every vertex of a one-vertex graph, get 0.
//
// Complexity: O(V·(V + E)) time, O(V) space per walk.
func ClosenessOf(ctx context.Context, g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	n := len(ids)
	out := make(map[string]float64, n)
	for _, id := range ids {
		res, err := bfs.Walk(g, id, bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		total := res.TotalDistance()
		if total == 0 || n <= 1 {
			out[id] = 0
			continue
		}
		reached := float64(res.Reached() - 1)
		c := reached / float64(total)
		c *= reached / float64(n-1)
		out[id] = c
	}

	return out, nil
}
