// Package builder assembles an aggregated contact set into a weighted,
// undirected core.Graph.
//
// The package offers:
//
//   - Build(agg, opts...): the single orchestrator. It validates pairs,
//     inserts edges in aggregation order, optionally adds isolated nodes,
//     then attaches node attributes.
//   - Configuration primitives:
//     – BuilderOption:      a function that mutates builderConfig before use.
//     – WithUnitWeights:    every edge weighs 1 (unweighted-count view).
//     – WithWeightFn:       custom WeightFn (DurationWeight, UnitWeight).
//     – WithIsolatedNodes:  keep nodes no edge references (GEXF inputs).
//     – WithLogger:         *zap.Logger for integrity errors and build stats.
//   - Weights(g): the inverse view, canonical pair → weight.
//
// Guarantees:
//
//   - Number of edges == number of distinct aggregated edges.
//   - Self-pairs (ErrSelfPair) and repeated pairs (ErrDuplicatePair) are
//     rejected before the graph is touched, logged and returned wrapped.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Same Aggregation and options ⇒ identical graph, edge IDs included.
package builder
