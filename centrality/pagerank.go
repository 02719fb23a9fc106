package centrality

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/contactnet/core"
)

// link is one weighted out-edge of the transition matrix.
type link struct {
	to int
	w  float64
}

// PageRankOf returns the weighted PageRank of every vertex.
//
// Each undirected edge is walked in both directions with probability
// proportional to its weight (contact duration). The walk starts uniform,
// teleports uniformly with probability 1-Damping, and a vertex whose incident
// weights sum to 0 (isolated, or joined only by zero-weight edges) spreads its
// mass uniformly. Iteration stops once Σ|x - x_prev| < n·Tolerance; running
// out of MaxIterations returns ErrNotConverged.
//
// An empty graph yields an empty map; a graph without edges yields 1/n everywhere.
// Scores sum to 1 and are all positive when Damping < 1.
//
// Complexity: O(k·(V + E)) for k iterations, O(V + E) space.
func PageRankOf(ctx context.Context, g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	ids := g.Vertices()
	n := len(ids)
	out := make(map[string]float64, n)
	if n == 0 {
		return out, nil
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	adj := make([][]link, n)
	outW := make([]float64, n)
	for i, id := range ids {
		nbs, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		for _, e := range nbs {
			w := e.Weight.InexactFloat64()
			adj[i] = append(adj[i], link{to: index[e.Other(id)], w: w})
			outW[i] += w
		}
	}
	var dangling []int
	for i := range outW {
		if outW[i] == 0 {
			dangling = append(dangling, i)
		}
	}

	inv := 1 / float64(n)
	x := make([]float64, n)
	for i := range x {
		x[i] = inv
	}
	next := make([]float64, n)
	alpha := o.Damping

	for iter := 0; iter < o.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var danglingMass float64
		for _, i := range dangling {
			danglingMass += x[i]
		}
		base := alpha*danglingMass*inv + (1-alpha)*inv
		for i := range next {
			next[i] = 0
		}
		for i, links := range adj {
			if outW[i] == 0 {
				continue
			}
			share := x[i] / outW[i]
			for _, l := range links {
				next[l.to] += share * l.w
			}
		}

		var diff float64
		for i := range next {
			next[i] = alpha*next[i] + base
			diff += math.Abs(next[i] - x[i])
		}
		x, next = next, x

		if diff < float64(n)*o.Tolerance {
			for i, id := range ids {
				out[id] = x[i]
			}
			return out, nil
		}
	}

	return nil, fmt.Errorf("%w: %d iterations", ErrNotConverged, o.MaxIterations)
}
