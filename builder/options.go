// SPDX-License-Identifier: MIT
// Package: contactnet/builder
//
// options.go: functional options for Build.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil logger, nil WeightFn).
//     Build itself never panics.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "go.uber.org/zap"

// BuilderOption customizes Build by mutating a builderConfig before construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithUnitWeights builds the unweighted-count variant: every edge weight is 1.
// Equivalent to WithWeightFn(UnitWeight).
func WithUnitWeights() BuilderOption {
	return func(c *builderConfig) {
		c.weightFn = UnitWeight
	}
}

// WithWeightFn overrides the edge weight policy. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithIsolatedNodes keeps every node of the aggregation's node table,
// including nodes no edge references. GEXF graphs use this: their node
// list defines the graph.
func WithIsolatedNodes() BuilderOption {
	return func(c *builderConfig) {
		c.keepIsolated = true
	}
}

// WithLogger sets the logger used to report integrity errors and build stats.
// Panics on nil; pass zap.NewNop() to silence.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
