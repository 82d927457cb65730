// Package distribution implements a finite-support probability
// distribution over oracle outputs: the empirical law of the perturbed
// maximizer's Monte Carlo draws.
//
// What:
//
//   - FixedAtoms pairs an ordered sequence of path incidence matrices
//     (atoms) with parallel non-negative weights summing to 1.
//   - Compress merges atoms that are equal within an absolute tolerance,
//     summing their weights into the first-seen occurrence. With
//     tolerance 0 only exactly equal atoms merge.
//   - Expectation computes the weighted elementwise average Σ wᵢ·Aᵢ, a
//     point in the convex hull of the observed paths.
//
// Why:
//
//   - The perturbed layer's full-distribution forward returns one of
//     these per call, typically with weight 1/M per draw before
//     compression; visualization and analysis consume it directly.
//
// Invariants:
//
//   - len(atoms) == len(weights); weights ≥ 0 and sum to 1 within
//     SumTolerance. Validate rechecks them; nothing renormalizes
//     silently — drift beyond tolerance is surfaced as an error so a
//     sampling bug cannot hide behind a cleanup step.
//
// Compress is functional: it returns a new distribution and leaves the
// receiver untouched. Compressing an already-compressed distribution is
// a no-op.
//
// Complexity:
//
//   - New:         O(n·W×H) (deep copies).
//   - Compress:    O(n²·W×H) worst case (pairwise atom comparison).
//   - Expectation: O(n·W×H).
//
// Errors:
//
//   - ErrLengthMismatch: atoms and weights differ in length.
//   - ErrNoAtoms:        empty support.
//   - ErrNilAtom:        a nil atom matrix.
//   - ErrShapeMismatch:  atoms of differing dimensions.
//   - ErrBadWeight:      a negative weight.
//   - ErrWeightSum:      weights do not sum to 1 within SumTolerance.
//   - ErrBadTolerance:   negative compression tolerance.
package distribution
