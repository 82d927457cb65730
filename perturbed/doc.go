// Package perturbed turns a discrete combinatorial maximizer into a
// smoothed, differentiable-in-expectation layer via Monte Carlo
// perturbation.
//
// What:
//
//   - Layer wraps a Maximizer (cost matrix θ → argmax path incidence
//     matrix) with a perturbation scale ε ≥ 0, a sample count M ≥ 1,
//     and an owned random source.
//   - Apply draws M i.i.d. standard-normal matrices Zᵢ, calls the
//     maximizer on each θ+ε·Zᵢ, and returns the elementwise average of
//     the M argmax outputs — a fractional point in the convex hull of
//     feasible paths.
//   - ApplyDistribution performs the same draws but returns the
//     empirical law of the outputs as a distribution.FixedAtoms
//     (weight 1/M per draw, duplicates merged).
//   - Value estimates F(θ) = E[max_y ⟨θ+εZ, y⟩] as the mean of
//     ⟨θᵢ, Yᵢ⟩ over the draws — the value, not the argmax, of each
//     perturbed linear program. Estimate returns both from one pass
//     over a single set of draws.
//
// Why:
//
//   - A single argmax call is piecewise constant in θ with zero
//     gradient almost everywhere. The distribution of the perturbed
//     argmax depends smoothly on θ, so its expectation is the object
//     with a useful derivative; the closed-form learning signal is
//     assembled in package fenchelyoung without ever differentiating
//     the oracle.
//
// Determinism:
//
//   - The layer owns its *rand.Rand; there is no package-global
//     seeding. A layer built with WithSeed reproduces its draw
//     sequence exactly. Apply, ApplyDistribution, Value and Estimate
//     share one sampling procedure, so equally seeded layers are
//     cross-consistent. The M oracle calls run sequentially and the
//     accumulation order is fixed, so seeded results are bitwise
//     reproducible.
//   - At ε = 0 no noise is generated: every draw collapses to the
//     unperturbed argmax, Apply degenerates to the raw maximizer
//     output, and ApplyDistribution carries a single atom of weight 1.
//     The same collapse is expected, not an error, for vanishingly
//     small ε.
//
// Complexity: M oracle calls plus O(M·W×H) sampling and accumulation.
//
// Errors:
//
//   - ErrNilMaximizer: nil oracle.
//   - ErrBadEpsilon:   negative perturbation scale.
//   - ErrBadSamples:   sample count below 1.
//   - ErrNilTheta:     nil input matrix.
package perturbed
