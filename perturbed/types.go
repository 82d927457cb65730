// Package perturbed defines the Maximizer contract, the Layer
// configuration surface, and sentinel errors.
package perturbed

import (
	"errors"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by New and the Layer methods.
var (
	// ErrNilMaximizer indicates a nil oracle was supplied to New.
	ErrNilMaximizer = errors.New("perturbed: maximizer is nil")
	// ErrBadEpsilon indicates a negative perturbation scale.
	ErrBadEpsilon = errors.New("perturbed: epsilon must be non-negative")
	// ErrBadSamples indicates a sample count below 1.
	ErrBadSamples = errors.New("perturbed: sample count must be at least 1")
	// ErrNilTheta indicates a nil input matrix.
	ErrNilTheta = errors.New("perturbed: theta matrix is nil")
)

// Maximizer is the discrete oracle being smoothed: a pure function of
// its input returning the argmax structured solution as a binary
// incidence matrix of the same shape. It must be callable many times
// per training step and must hold no hidden state; auxiliary context
// (connectivity, hop bounds) is bound by closure, as the dijkstra and
// bellman packages do.
type Maximizer func(theta *mat.Dense) (*mat.Dense, error)

// Options configures a Layer.
//
// Epsilon – perturbation scale ε ≥ 0; 0 disables smoothing and
// degenerates to the raw non-differentiable oracle.
// Samples – number of Monte Carlo draws M ≥ 1.
// Rand    – random source owned by the layer; nil means a time-seeded
// source (not reproducible).
type Options struct {
	Epsilon float64
	Samples int
	Rand    *rand.Rand
}

// Option represents a functional option for configuring a Layer.
type Option func(*Options)

// WithEpsilon sets the perturbation scale ε. Negative values cause
// ErrBadEpsilon at New time.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithSamples sets the Monte Carlo sample count M. Values below 1
// cause ErrBadSamples at New time.
func WithSamples(m int) Option {
	return func(o *Options) { o.Samples = m }
}

// WithRand hands the layer an explicit random source. The layer takes
// ownership: sharing one source across concurrent layers is the
// caller's race to lose.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithSeed equips the layer with a fresh deterministic source, for
// reproducible draws in tests and experiments.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// DefaultOptions returns the default Layer configuration:
// Epsilon 1.0, Samples 10, time-seeded random source.
func DefaultOptions() Options {
	return Options{
		Epsilon: 1.0,
		Samples: 10,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Layer is a perturbed (smoothed) combinatorial layer. Construct with
// New; the zero value is unusable.
type Layer struct {
	maximize Maximizer
	epsilon  float64
	samples  int
	rng      *rand.Rand
}
