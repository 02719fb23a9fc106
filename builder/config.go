// SPDX-License-Identifier: MIT
// Package: contactnet/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • weightFn     = DurationWeight   (cumulative seconds)
//   • keepIsolated = false            (only nodes referenced by an edge)
//   • logger       = zap.NewNop()

package builder

import "go.uber.org/zap"

// builderConfig aggregates all knobs used by the build stages.
// It is passed by VALUE to stages (immutable to callers).
type builderConfig struct {
	// Edge weight policy.
	weightFn WeightFn
	// Add nodes that no edge references.
	keepIsolated bool
	// Destination for integrity errors and summary lines.
	logger *zap.Logger
}

// newBuilderConfig constructs a config with defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DurationWeight,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
