// Package fenchelyoung implements the Fenchel-Young loss on top of a
// perturbed combinatorial layer: a convex surrogate comparing a
// predicted cost matrix θ against a target solution ȳ.
//
// What:
//
//   - Value estimates L(θ, ȳ) = F(θ) − ⟨θ, ȳ⟩ up to the constant Ω(ȳ),
//     where F is the perturbed layer's smoothed maximum value. The
//     conjugate regularizer Ω(ȳ) never enters the learning signal, so
//     it is not evaluated.
//   - Grad returns the closed-form subgradient ∂L/∂θ = Ŷ(θ) − ȳ, with
//     Ŷ the layer's point estimate. This is the entire backward rule:
//     the discrete oracle is never differentiated, by construction.
//   - ValueGrad produces both from one pass of Monte Carlo draws, so
//     value and gradient describe the same smoothed landscape.
//
// Properties (up to Monte Carlo estimation noise):
//
//   - L ≥ 0, with equality when θ already ranks ȳ as the
//     perturbed-expectation-optimal solution.
//   - Convex in θ; Lipschitz-smooth with constant controlled by 1/ε —
//     smaller ε sharpens the loss at the price of smoothness, a
//     documented tradeoff.
//
// Errors:
//
//   - ErrNilLayer:      nil perturbed layer.
//   - ErrNilInput:      nil θ or target matrix.
//   - ErrShapeMismatch: θ and target of differing dimensions.
package fenchelyoung
