// Package distribution defines the FixedAtoms type and its sentinel
// errors.
package distribution

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// SumTolerance is the absolute tolerance within which atom weights
// must sum to 1. Empirical weights are exact binary fractions (1/M
// multiples), so only accumulated floating-point drift is forgiven.
const SumTolerance = 1e-9

// Sentinel errors for distribution operations.
var (
	// ErrLengthMismatch indicates atoms and weights differ in length.
	ErrLengthMismatch = errors.New("distribution: atoms and weights must have equal length")
	// ErrNoAtoms indicates an empty support.
	ErrNoAtoms = errors.New("distribution: at least one atom is required")
	// ErrNilAtom indicates a nil atom matrix.
	ErrNilAtom = errors.New("distribution: atom matrix is nil")
	// ErrShapeMismatch indicates atoms of differing dimensions.
	ErrShapeMismatch = errors.New("distribution: all atoms must share the same dimensions")
	// ErrBadWeight indicates a negative atom weight.
	ErrBadWeight = errors.New("distribution: weights must be non-negative")
	// ErrWeightSum indicates weights do not sum to 1 within SumTolerance.
	ErrWeightSum = errors.New("distribution: weights must sum to 1")
	// ErrBadTolerance indicates a negative compression tolerance.
	ErrBadTolerance = errors.New("distribution: tolerance must be non-negative")
)

// FixedAtoms is a finite-support probability distribution over path
// incidence matrices. Atoms keep their first-seen order; weights are
// parallel to atoms. The zero value is unusable — construct with New.
type FixedAtoms struct {
	atoms   []*mat.Dense
	weights []float64
}
