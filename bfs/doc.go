// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//     Contact durations are ignored: every edge is one hop.
//   - Walk returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hops from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering
//     and a MaxDepth limit (d>0) or "no limit" (d==0).
//   - Components partitions the graph into connected components.
//
// Why
//
//   - Closeness centrality needs, for every vertex, the sum of hop distances
//     to the vertices it can reach and how many that is.
//   - Component counts are reported alongside the network summary.
//
// Determinism
//
//	core.NeighborIDs returns IDs sorted lexicographically and Walk enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log Δ) per Walk (neighbor lists are sorted)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk(g, "h1_1",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	    // ctx.Err() or a wrapped OnVisit error
//	}
//	fmt.Println(res.Reached(), res.TotalDistance())
package bfs
