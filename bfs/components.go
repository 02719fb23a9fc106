package bfs

import (
	"context"

	"github.com/katalvlaran/contactnet/core"
)

// Components partitions g into connected components.
// Each component lists its vertex IDs in BFS visit order from its
// lexicographically smallest member; components are ordered by that member.
// Isolated vertices form singleton components.
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]struct{}, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if _, ok := seen[id]; ok {
			continue
		}
		res, err := Walk(g, id, WithContext(ctx))
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = struct{}{}
		}
		out = append(out, res.Order)
	}

	return out, nil
}
