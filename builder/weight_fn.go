package builder

import (
	"github.com/katalvlaran/contactnet/contact"
	"github.com/shopspring/decimal"
)

// WeightFn maps an aggregated edge to the weight stored in the graph.
// It must be pure: same edge, same weight.
type WeightFn func(e contact.AggregatedEdge) decimal.Decimal

// unitWeight is the constant edge weight of the unweighted-count view.
var unitWeight = decimal.NewFromInt(1)

// DurationWeight uses the cumulative contact duration. This is the default.
// Complexity: O(1).
func DurationWeight(e contact.AggregatedEdge) decimal.Decimal {
	return e.TotalDuration
}

// UnitWeight gives every edge weight 1, so strength equals degree.
// Complexity: O(1).
func UnitWeight(_ contact.AggregatedEdge) decimal.Decimal {
	return unitWeight
}
