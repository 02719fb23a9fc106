package centrality

import (
	"github.com/katalvlaran/contactnet/core"
	"gonum.org/v1/gonum/graph/simple"
)

// gonumView mirrors a core.Graph as a gonum simple.UndirectedGraph.
// Node i of the view is ids[i]; ids are the sorted vertex IDs of the source.
type gonumView struct {
	ids   []string
	index map[string]int64
	g     *simple.UndirectedGraph
}

// newGonumView copies the topology of g; weights are dropped.
// Complexity: O(V + E).
func newGonumView(g *core.Graph) *gonumView {
	ids := g.Vertices()
	v := &gonumView{
		ids:   ids,
		index: make(map[string]int64, len(ids)),
		g:     simple.NewUndirectedGraph(),
	}
	for i, id := range ids {
		v.index[id] = int64(i)
		v.g.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		v.g.SetEdge(simple.Edge{F: simple.Node(v.index[e.From]), T: simple.Node(v.index[e.To])})
	}

	return v
}

// byID re-keys a gonum node-ID map by vertex ID, filling absent nodes with 0.
func (v *gonumView) byID(scores map[int64]float64, scale float64) map[string]float64 {
	out := make(map[string]float64, len(v.ids))
	for i, id := range v.ids {
		out[id] = scores[int64(i)] * scale
	}
	return out
}
