// SPDX-License-Identifier: MIT
// Package: contactnet/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` via builderErrorf.
//   • Build never panics; validation panics are confined to WithX option constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrNilAggregation indicates Build was called without an aggregation.
var ErrNilAggregation = errors.New("builder: aggregation is nil")

// ErrSelfPair indicates an aggregated edge joins a participant with itself.
// Classification: data integrity error; logged before it is returned.
var ErrSelfPair = errors.New("builder: self-pair")

// ErrDuplicatePair indicates two aggregated edges share one canonical pair.
// Aggregation guarantees uniqueness, so this signals a hand-built or corrupted input.
var ErrDuplicatePair = errors.New("builder: duplicate pair")

// ErrNegativeWeight indicates the weight policy produced a weight below zero.
var ErrNegativeWeight = errors.New("builder: negative weight")

// builderErrorf prefixes a wrapped error with the stage that produced it:
// "<stage>: <formatted message>". Keep %w inside format to preserve errors.Is.
func builderErrorf(stage, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{stage}, args...)...)
}
