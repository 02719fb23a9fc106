package contact

import (
	"fmt"
	"strings"
)

// AttributePolicy decides which record wins when a participant appears
// with several metadata records.
type AttributePolicy int

const (
	// FirstSeen keeps the first record visited for an id.
	FirstSeen AttributePolicy = iota
	// LastSeen keeps the last record visited for an id.
	LastSeen
)

// String returns the policy name used in configuration files.
func (p AttributePolicy) String() string {
	switch p {
	case FirstSeen:
		return "first"
	case LastSeen:
		return "last"
	default:
		return fmt.Sprintf("AttributePolicy(%d)", int(p))
	}
}

// ParseAttributePolicy parses "first" or "last" (case-insensitive).
func ParseAttributePolicy(s string) (AttributePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "":
		return FirstSeen, nil
	case "last":
		return LastSeen, nil
	default:
		return FirstSeen, fmt.Errorf("%w: unknown attribute policy %q", ErrOptionViolation, s)
	}
}

// Option configures Aggregate.
type Option func(*Options)

// Options holds aggregation parameters.
type Options struct {
	// Policy selects the metadata merge rule.
	Policy AttributePolicy

	err error
}

// DefaultOptions returns FirstSeen aggregation.
func DefaultOptions() Options {
	return Options{Policy: FirstSeen}
}

// WithAttributePolicy selects the metadata merge rule.
// Unknown policies are reported as ErrOptionViolation by Aggregate.
func WithAttributePolicy(p AttributePolicy) Option {
	return func(o *Options) {
		if p != FirstSeen && p != LastSeen {
			o.err = fmt.Errorf("%w: unknown attribute policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}
