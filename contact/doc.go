// Package contact turns raw proximity-contact events into an aggregated,
// undirected contact set ready for graph construction.
//
// What
//
//   - Canonicalize maps (a,b) and (b,a) to one CanonicalPair key.
//   - Aggregate groups events by pair and sums their durations exactly
//     (decimal arithmetic), counting the events folded into each edge.
//   - Participant metadata is resolved to one core.Attributes record per id
//     under an explicit AttributePolicy (FirstSeen by default, or LastSeen).
//   - Collapse does the same for sources that are already aggregated (GEXF),
//     summing repeated links so the graph never holds parallel edges.
//
// Determinism
//
//	Summation is associative and commutative, so Edges do not depend on event
//	order. Edges are sorted by (Low, High); Nodes by ID.
//
// Errors
//
//   - ErrSelfPair          an event joins a participant with itself.
//   - ErrEmptyID           an event side has no identifier.
//   - ErrNegativeDuration  a duration below zero.
//   - ErrOptionViolation   an unknown AttributePolicy.
package contact
