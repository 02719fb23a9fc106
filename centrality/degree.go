package centrality

import (
	"github.com/katalvlaran/contactnet/core"
	"github.com/shopspring/decimal"
)

// DegreeOf returns the number of distinct neighbors of every vertex.
// Isolated vertices have degree 0.
// Complexity: O(V).
func DegreeOf(g *core.Graph) (map[string]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	out := make(map[string]int, len(ids))
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		out[id] = d
	}
	return out, nil
}

// StrengthOf returns the exact sum of incident edge weights of every vertex.
// In a unit-weight graph strength equals degree.
// Complexity: O(V + E).
func StrengthOf(g *core.Graph) (map[string]decimal.Decimal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	out := make(map[string]decimal.Decimal, len(ids))
	for _, id := range ids {
		s, err := g.Strength(id)
		if err != nil {
			return nil, err
		}
		out[id] = s
	}
	return out, nil
}
