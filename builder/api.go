// SPDX-License-Identifier: MIT
// Package: contactnet/builder
//
// api.go: public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(agg, opts...). Creates g, resolves cfg, runs stages in order.
//   - Stages are small closures over (g, agg, cfg); each returns a wrapped sentinel.
//   - Determinism: edges are inserted in aggregation order (sorted by pair key),
//     so edge IDs are identical for identical inputs.
//
// AI-Hints:
//   - Build a duration-weighted and a unit-weighted graph from the same
//     Aggregation to compare strength against degree.
//   - Weights(g) inverts Build; use it for round-trip checks.

package builder

import (
	"github.com/katalvlaran/contactnet/contact"
	"github.com/katalvlaran/contactnet/core"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Stage names used as error prefixes.
const (
	stageValidate   = "Build/validate"
	stageEdges      = "Build/edges"
	stageNodes      = "Build/nodes"
	stageAttributes = "Build/attributes"
)

// stage applies one deterministic step of graph construction.
type stage func(g *core.Graph, agg *contact.Aggregation, cfg builderConfig) error

// Build materializes a weighted undirected core.Graph from an Aggregation.
//
// Guarantees:
//   - |E(g)| == len(agg.Edges).
//   - Every endpoint of an edge is a vertex, with or without attributes.
//   - Nodes only present in agg.Nodes are added only under WithIsolatedNodes.
//   - Attributes are attached to every vertex that has a node record.
//
// Errors:
//   - ErrNilAggregation, ErrSelfPair, ErrDuplicatePair, ErrNegativeWeight,
//     wrapped with the failing stage. Integrity errors are logged at error level.
//
// Complexity: O(V + E) map operations.
func Build(agg *contact.Aggregation, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if agg == nil {
		return nil, ErrNilAggregation
	}

	g := core.NewGraph()
	for _, run := range []stage{validatePairs, addEdges, addIsolated, attachAttributes} {
		if err := run(g, agg, cfg); err != nil {
			cfg.logger.Error("graph build failed", zap.Error(err))
			return nil, err
		}
	}

	st := g.Stats()
	cfg.logger.Debug("graph built",
		zap.Int("vertices", st.VertexCount),
		zap.Int("edges", st.EdgeCount),
		zap.Int("isolated", st.IsolatedCount),
		zap.String("total_weight", st.TotalWeight.String()),
	)

	return g, nil
}

// validatePairs rejects self-pairs and repeated pairs before touching the graph,
// so a failed Build never leaves a half-built graph behind.
func validatePairs(_ *core.Graph, agg *contact.Aggregation, _ builderConfig) error {
	seen := make(map[contact.CanonicalPair]struct{}, len(agg.Edges))
	for i, e := range agg.Edges {
		// Re-canonicalize so hand-built pairs in either order collide.
		p := contact.Canonicalize(e.Pair.Low, e.Pair.High)
		if p.IsSelf() {
			return builderErrorf(stageValidate, "%w: edge %d joins %q with itself", ErrSelfPair, i, p.Low)
		}
		if _, dup := seen[p]; dup {
			return builderErrorf(stageValidate, "%w: edge %d repeats %s", ErrDuplicatePair, i, p)
		}
		seen[p] = struct{}{}
	}

	return nil
}

func addEdges(g *core.Graph, agg *contact.Aggregation, cfg builderConfig) error {
	for _, e := range agg.Edges {
		w := cfg.weightFn(e)
		if w.IsNegative() {
			return builderErrorf(stageEdges, "%w: %s weighs %s", ErrNegativeWeight, e.Pair, w)
		}
		if _, err := g.AddEdge(e.Pair.Low, e.Pair.High, w); err != nil {
			return builderErrorf(stageEdges, "AddEdge(%s): %w", e.Pair, err)
		}
	}

	return nil
}

func addIsolated(g *core.Graph, agg *contact.Aggregation, cfg builderConfig) error {
	if !cfg.keepIsolated {
		return nil
	}
	for _, n := range agg.Nodes {
		if err := g.AddVertex(n.ID); err != nil {
			return builderErrorf(stageNodes, "AddVertex(%q): %w", n.ID, err)
		}
	}

	return nil
}

// attachAttributes copies node records onto vertices present in g.
// Records for absent vertices are skipped, never added.
func attachAttributes(g *core.Graph, agg *contact.Aggregation, _ builderConfig) error {
	for _, n := range agg.Nodes {
		if !g.HasVertex(n.ID) {
			continue
		}
		if err := g.SetAttributes(n.ID, n.Attrs); err != nil {
			return builderErrorf(stageAttributes, "SetAttributes(%q): %w", n.ID, err)
		}
	}

	return nil
}

// Weights re-derives canonical pair → weight from a built graph.
// Weights(Build(agg)) equals agg.Weights() under the default weight policy.
// Complexity: O(E log E).
func Weights(g *core.Graph) map[contact.CanonicalPair]decimal.Decimal {
	out := make(map[contact.CanonicalPair]decimal.Decimal)
	if g == nil {
		return out
	}
	for _, e := range g.Edges() {
		out[contact.Canonicalize(e.From, e.To)] = e.Weight
	}

	return out
}
