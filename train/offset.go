package train

import "gonum.org/v1/gonum/mat"

// OffsetEmbedding is a minimal reference Embedding: it predicts
// θ = input + W for a learned offset matrix W, updated by plain
// gradient descent. Real cost predictors (convolutional or otherwise)
// live outside this module; this one exists so the trainer and the
// examples have something differentiable to drive.
type OffsetEmbedding struct {
	weights *mat.Dense
	acc     *mat.Dense
}

// NewOffsetEmbedding creates an embedding for h×w cost matrices with
// the offset initialized to zero.
func NewOffsetEmbedding(h, w int) *OffsetEmbedding {
	return &OffsetEmbedding{
		weights: mat.NewDense(h, w, nil),
		acc:     mat.NewDense(h, w, nil),
	}
}

// Forward returns input + W as a fresh matrix.
func (e *OffsetEmbedding) Forward(input *mat.Dense) *mat.Dense {
	out := mat.DenseCopyOf(input)
	out.Add(out, e.weights)

	return out
}

// Backward accumulates ∂L/∂θ, which for an additive offset is exactly
// ∂L/∂W.
func (e *OffsetEmbedding) Backward(grad *mat.Dense) {
	e.acc.Add(e.acc, grad)
}

// Step applies W ← W − lr·acc and clears the accumulator.
func (e *OffsetEmbedding) Step(lr float64) {
	h, w := e.weights.Dims()
	update := mat.NewDense(h, w, nil)
	update.Scale(lr, e.acc)
	e.weights.Sub(e.weights, update)
	e.acc.Zero()
}

// Weights exposes the current offset for inspection in tests.
// Callers must not mutate the returned matrix.
func (e *OffsetEmbedding) Weights() *mat.Dense { return e.weights }
