package centrality

import "fmt"

// Default PageRank parameters.
const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

// Option configures PageRank and Compute via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds metric parameters.
type Options struct {
	// Damping is the probability of following an edge rather than teleporting.
	Damping float64

	// Tolerance is the per-node L1 convergence threshold: iteration stops
	// when Σ|x - x_prev| < n·Tolerance.
	Tolerance float64

	// MaxIterations bounds the power iteration.
	MaxIterations int

	// Sequential disables the parallel fan-out in Compute.
	Sequential bool

	err error
}

// DefaultOptions returns damping 0.85, tolerance 1e-6, 100 iterations, parallel Compute.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithDamping sets the damping factor; it must lie in [0,1].
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d < 0 || d > 1 {
			o.err = fmt.Errorf("%w: damping must be in [0,1] (%g)", ErrOptionViolation, d)
			return
		}
		o.Damping = d
	}
}

// WithTolerance sets the convergence tolerance; it must be > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: tolerance must be positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the iteration cap; it must be ≥ 1.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithSequential makes Compute evaluate the metrics one after another.
// Results are identical either way.
func WithSequential() Option {
	return func(o *Options) {
		o.Sequential = true
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}
