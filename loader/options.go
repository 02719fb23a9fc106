package loader

import (
	"strings"
	"unicode/utf8"
)

// Option configures the readers.
type Option func(*Options)

// Options holds decoding parameters for both formats.
type Options struct {
	// Comma is the CSV field delimiter (',' by default).
	Comma rune

	// WeightAttribute is the GEXF edge attvalue title read as the weight,
	// compared case-insensitively. When an edge has no such attvalue the
	// XML weight attribute is used, then 1.
	WeightAttribute string
}

// DefaultOptions returns comma-delimited CSV and the "weight" GEXF attribute.
func DefaultOptions() Options {
	return Options{Comma: ',', WeightAttribute: "weight"}
}

// WithComma sets the CSV delimiter. Invalid delimiters ('\n', '\r', '"',
// the Unicode replacement character or 0) are ignored.
func WithComma(r rune) Option {
	return func(o *Options) {
		switch r {
		case 0, '\n', '\r', '"', utf8.RuneError:
			return
		}
		o.Comma = r
	}
}

// WithWeightAttribute selects the GEXF edge attvalue title used as the weight
// (e.g. "duration"). Empty titles are ignored.
func WithWeightAttribute(title string) Option {
	return func(o *Options) {
		if t := strings.TrimSpace(title); t != "" {
			o.WeightAttribute = t
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
