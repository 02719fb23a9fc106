package centrality

import (
	"fmt"
	"strings"
)

// Metric names one per-node measure of a Table.
type Metric int

const (
	Degree Metric = iota
	Strength
	Betweenness
	Closeness
	PageRank
)

// Metrics lists every metric in column order.
var Metrics = []Metric{Degree, Strength, Betweenness, Closeness, PageRank}

var metricNames = [...]string{"degree", "strength", "betweenness", "closeness", "pagerank"}

// String returns the column name of m.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// ParseMetric parses a column name (case-insensitive).
func ParseMetric(s string) (Metric, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range metricNames {
		if s == name {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}
