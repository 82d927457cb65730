// Package train drives gradient descent over an external cost
// predictor using the Fenchel-Young loss, and computes the cost-ratio
// monitoring metrics.
//
// What:
//
//   - Embedding is the external collaborator contract: an opaque
//     differentiable map from an input tensor to a cost matrix θ, with
//     a Backward entry point that accepts ∂L/∂θ and a Step that
//     applies the accumulated update. Its internals (architecture,
//     optimizer state) are none of this package's business.
//   - Trainer iterates epochs of minibatches: θ = Forward(input),
//     the loss's closed-form value/gradient pair is computed, the
//     gradient is pushed into Backward, and Step fires per batch.
//   - Cost, CostRatio and CostGap implement the solution-quality
//     metrics: ratio of a predicted path's true cost to the optimal
//     true cost (≥ 1 when the ground truth is optimal), and the mean
//     percentage gap over a dataset — monitoring signals, never
//     training signals.
//   - OffsetEmbedding is a minimal reference Embedding (a learned
//     additive offset) used by tests and examples.
//
// The cost-gap is recomputed once before training (reported with
// Epoch 0) and once after every epoch; an all-zero predicted path has
// cost 0 and would make the ratio meaningless, so CostRatio rejects
// degenerate costs with ErrDegenerateCost instead of propagating
// ±Inf or NaN into the history.
//
// Errors:
//
//   - ErrNilEmbedding / ErrNilLoss / ErrNilMaximizer: missing collaborator.
//   - ErrEmptyDataset:    no samples.
//   - ErrBadSample:       a sample with nil matrices.
//   - ErrBadLearningRate: non-positive learning rate.
//   - ErrBadBatchSize:    non-positive batch size.
//   - ErrBadEpochs:       non-positive epoch count.
//   - ErrDegenerateCost:  a zero path cost in the ratio.
package train
