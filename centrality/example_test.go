package centrality_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/contactnet/centrality"
	"github.com/katalvlaran/contactnet/core"
	"github.com/shopspring/decimal"
)

// ExampleCompute ranks the three members of a B–A–C contact path.
func ExampleCompute() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", decimal.NewFromInt(15))
	_, _ = g.AddEdge("A", "C", decimal.NewFromInt(7))

	tab, _ := centrality.Compute(context.Background(), g)
	for _, r := range tab.Rows {
		fmt.Printf("%s degree=%d strength=%s betweenness=%.2f closeness=%.3f pagerank=%.3f\n",
			r.ID, r.Degree, r.Strength, r.Betweenness, r.Closeness, r.PageRank)
	}
	// Output:
	// A degree=2 strength=22 betweenness=1.00 closeness=1.000 pagerank=0.486
	// B degree=1 strength=15 betweenness=0.00 closeness=0.667 pagerank=0.332
	// C degree=1 strength=7 betweenness=0.00 closeness=0.667 pagerank=0.182
}

// ExampleTable_TopK lists the two most central vertices by PageRank.
func ExampleTable_TopK() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", decimal.NewFromInt(15))
	_, _ = g.AddEdge("A", "C", decimal.NewFromInt(7))

	tab, _ := centrality.Compute(context.Background(), g, centrality.WithSequential())
	for _, r := range tab.TopK(centrality.PageRank, 2) {
		fmt.Println(r.ID)
	}
	// Output:
	// A
	// B
}
