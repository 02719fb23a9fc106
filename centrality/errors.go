package centrality

import "errors"

// Sentinel errors for metric computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrNotConverged is returned when PageRank exhausts MaxIterations
	// without meeting the tolerance.
	ErrNotConverged = errors.New("centrality: pagerank did not converge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")

	// ErrUnknownMetric is returned by ParseMetric for unknown names.
	ErrUnknownMetric = errors.New("centrality: unknown metric")
)
