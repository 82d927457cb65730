// Package bellman defines sentinel errors and configuration options
// for the bounded-hop Bellman-Ford oracle.
package bellman

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGraph = errors.New("bellman: graph is nil")

	// ErrBadMaxLength indicates a non-positive hop bound.
	ErrBadMaxLength = errors.New("bellman: MaxLength must be positive")

	// ErrNoPath indicates the sink is unreachable from the source
	// within the configured hop bound.
	ErrNoPath = errors.New("bellman: no path from source to sink within hop bound")
)

// Options configures the behavior of the Bellman-Ford oracle.
//
// MaxLength – maximum number of hops allowed on a path. Must be > 0.
// Zero means "use the default": the vertex count, the worst case where
// every cell is visited once.
type Options struct {
	MaxLength int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMaxLength caps paths at maxLength hops. Must be positive;
// negative values cause ErrBadMaxLength at Solve time, zero restores
// the default bound (the vertex count of the solved graph).
func WithMaxLength(maxLength int) Option {
	return func(o *Options) {
		o.MaxLength = maxLength
	}
}

// DefaultOptions returns an Options struct with the default hop bound
// (0, resolved to the vertex count of the solved graph).
func DefaultOptions() Options {
	return Options{MaxLength: 0}
}
