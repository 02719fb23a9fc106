// Package centrality computes per-participant structural metrics over a
// contact graph and joins them into a sortable Table.
//
// What
//
//   - DegreeOf:      distinct neighbors.
//   - StrengthOf:    exact decimal sum of incident contact durations.
//   - BetweennessOf: hop-count Brandes betweenness (gonum), normalized by (n-1)(n-2).
//   - ClosenessOf:   hop-count closeness with the Wasserman–Faust correction
//     for disconnected graphs (package bfs).
//   - PageRankOf:    duration-weighted PageRank by power iteration.
//   - Compute:       all five, concurrently, as a Table sorted by ID.
//
// Degenerate inputs never divide by zero: isolated vertices score 0 on
// degree, strength, betweenness and closeness; a graph without edges gets
// uniform PageRank 1/n; an empty graph gets an empty Table.
//
// Options (PageRank)
//
//   - WithDamping(d):        0.85 by default, d ∈ [0,1].
//   - WithTolerance(tol):    1e-6 by default; converged when Σ|Δx| < n·tol.
//   - WithMaxIterations(k):  100 by default; exceeding it → ErrNotConverged.
//   - WithSequential():      Compute runs the metrics one by one.
//
// Concurrency
//
//	core.Graph reads are lock-protected, so the metric functions may run in
//	parallel over one graph. Compute uses golang.org/x/sync/errgroup and
//	cancels the remaining work on the first error.
package centrality
