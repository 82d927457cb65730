// Package perturbedpath is a toolkit for learning with combinatorial
// optimization layers: it couples a cost predictor with a discrete
// shortest-path solver and makes the pair trainable end to end, even
// though the solver's output is piecewise constant with zero true
// gradient almost everywhere.
//
// 🚀 What is perturbedpath?
//
//	A library that brings together:
//		• Grid graphs: rectangular cell grids with rook/queen adjacency
//		  and per-cell traversal costs
//		• Oracles: Dijkstra (non-negative costs) and bounded-hop
//		  Bellman-Ford (arbitrary sign) shortest-path maximizers
//		• Perturbed layers: Monte Carlo Gaussian smoothing that turns
//		  any discrete maximizer into a differentiable-in-expectation map
//		• Fenchel-Young losses: convex surrogates whose gradient is the
//		  closed-form Ŷ(θ) − ȳ, never differentiating the oracle
//		• Training: an epoch loop over an injected embedding, with
//		  cost-ratio monitoring metrics
//
// ✨ Why choose perturbedpath?
//
//   - Explicit randomness – every layer owns its RNG, no global seeding
//   - Deterministic under seed – fixed draws, fixed reduction order
//   - Pure functions – oracles are stateless, grids are immutable
//   - Injectable oracles – swap Dijkstra for Bellman-Ford with one value
//
// Everything is organized under per-concern subpackages:
//
//	gridgraph/    — grid model, linear indexing, path ⇄ incidence matrix
//	dijkstra/     — non-negative-weight shortest-path oracle
//	bellman/      — bounded-hop Bellman-Ford oracle
//	distribution/ — fixed-atoms empirical law of perturbed oracle calls
//	perturbed/    — the smoothed combinatorial layer
//	fenchelyoung/ — the Fenchel-Young loss
//	train/        — epoch loop and cost-gap metrics
//
// Data flow:
//
//	image → embedding (external) → θ → perturbed layer → Ŷ
//	     → Fenchel-Young loss vs target path → ∂L/∂θ = Ŷ − ȳ
//	     → backpropagated into the embedding
//
//	go get github.com/louisbouvier/perturbedpath
package perturbedpath
