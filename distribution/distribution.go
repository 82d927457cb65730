package distribution

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// New constructs a FixedAtoms distribution from parallel atom and
// weight slices. Atoms are deep-copied so the distribution is immune
// to later caller mutation.
//
// Validation (in order): length match, non-empty support, non-nil
// atoms of uniform shape, non-negative weights summing to 1 within
// SumTolerance.
// Complexity: O(n·W×H).
func New(atoms []*mat.Dense, weights []float64) (*FixedAtoms, error) {
	if len(atoms) != len(weights) {
		return nil, fmt.Errorf("%w: %d atoms, %d weights", ErrLengthMismatch, len(atoms), len(weights))
	}
	if len(atoms) == 0 {
		return nil, ErrNoAtoms
	}
	if atoms[0] == nil {
		return nil, ErrNilAtom
	}
	h, w := atoms[0].Dims()

	copied := make([]*mat.Dense, len(atoms))
	for i, a := range atoms {
		if a == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilAtom, i)
		}
		if ah, aw := a.Dims(); ah != h || aw != w {
			return nil, fmt.Errorf("%w: atom %d is %dx%d, want %dx%d", ErrShapeMismatch, i, ah, aw, h, w)
		}
		copied[i] = mat.DenseCopyOf(a)
	}

	var sum float64
	for i, wt := range weights {
		if wt < 0 {
			return nil, fmt.Errorf("%w: weight %d is %v", ErrBadWeight, i, wt)
		}
		sum += wt
	}
	if math.Abs(sum-1) > SumTolerance {
		return nil, fmt.Errorf("%w: got %v", ErrWeightSum, sum)
	}

	d := &FixedAtoms{
		atoms:   copied,
		weights: append([]float64(nil), weights...),
	}

	return d, nil
}

// Len returns the number of atoms in the support.
func (d *FixedAtoms) Len() int { return len(d.atoms) }

// Atom returns the i-th atom. Callers must not mutate the returned
// matrix.
func (d *FixedAtoms) Atom(i int) *mat.Dense { return d.atoms[i] }

// Weight returns the probability mass of the i-th atom.
func (d *FixedAtoms) Weight(i int) float64 { return d.weights[i] }

// Dims returns the shape shared by all atoms.
func (d *FixedAtoms) Dims() (h, w int) { return d.atoms[0].Dims() }

// Validate rechecks the distribution invariants: parallel slices,
// uniform atom shapes, non-negative weights summing to 1 within
// SumTolerance. Weights are never renormalized — drift past the
// tolerance signals a sampling bug upstream and must surface.
func (d *FixedAtoms) Validate() error {
	if len(d.atoms) != len(d.weights) {
		return ErrLengthMismatch
	}
	if len(d.atoms) == 0 {
		return ErrNoAtoms
	}
	h, w := d.atoms[0].Dims()
	for i, a := range d.atoms {
		if a == nil {
			return fmt.Errorf("%w: index %d", ErrNilAtom, i)
		}
		if ah, aw := a.Dims(); ah != h || aw != w {
			return fmt.Errorf("%w: atom %d", ErrShapeMismatch, i)
		}
		if d.weights[i] < 0 {
			return fmt.Errorf("%w: weight %d is %v", ErrBadWeight, i, d.weights[i])
		}
	}
	if sum := floats.Sum(d.weights); math.Abs(sum-1) > SumTolerance {
		return fmt.Errorf("%w: got %v", ErrWeightSum, sum)
	}

	return nil
}

// Compress returns a new distribution in which atoms equal within the
// absolute tolerance tol are merged: the weight of every later
// duplicate is added to its first-seen occurrence and the duplicate is
// dropped. tol = 0 demands exact equality. The receiver is unchanged.
//
// Compress is idempotent: compressing an already-compressed
// distribution returns an equal one.
// Complexity: O(n²·W×H) worst case.
func (d *FixedAtoms) Compress(tol float64) (*FixedAtoms, error) {
	if tol < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadTolerance, tol)
	}

	kept := make([]*mat.Dense, 0, len(d.atoms))
	weights := make([]float64, 0, len(d.weights))
	for i, a := range d.atoms {
		merged := false
		for j, k := range kept {
			if atomsEqual(a, k, tol) {
				weights[j] += d.weights[i]
				merged = true

				break
			}
		}
		if !merged {
			kept = append(kept, mat.DenseCopyOf(a))
			weights = append(weights, d.weights[i])
		}
	}

	return &FixedAtoms{atoms: kept, weights: weights}, nil
}

// Expectation returns the weighted elementwise average Σ wᵢ·Aᵢ — a
// fractional point in the convex hull of the atoms, not a hard path.
// Complexity: O(n·W×H).
func (d *FixedAtoms) Expectation() *mat.Dense {
	h, w := d.atoms[0].Dims()
	acc := mat.NewDense(h, w, nil)
	scaled := mat.NewDense(h, w, nil)
	for i, a := range d.atoms {
		scaled.Scale(d.weights[i], a)
		acc.Add(acc, scaled)
	}

	return acc
}

// atomsEqual reports whether a and b coincide within the absolute
// tolerance tol (exactly, when tol is 0). Shapes are assumed equal.
func atomsEqual(a, b *mat.Dense, tol float64) bool {
	if tol == 0 {
		return mat.Equal(a, b)
	}

	return mat.EqualApprox(a, b, tol)
}
