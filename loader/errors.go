package loader

import "errors"

// Sentinel errors for input decoding. Every returned error wraps one of
// these together with the file name and, where known, the line.
var (
	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("loader: missing required column")

	// ErrMalformedRecord indicates a contact row that cannot be decoded:
	// wrong field count, empty id, non-numeric or negative duration,
	// non-integer day, hour or age.
	ErrMalformedRecord = errors.New("loader: malformed record")

	// ErrMalformedGraph indicates a GEXF document that cannot be decoded
	// or describes an invalid graph.
	ErrMalformedGraph = errors.New("loader: malformed graph")

	// ErrNoInput indicates no input file was given.
	ErrNoInput = errors.New("loader: no input files")
)
