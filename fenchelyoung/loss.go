package fenchelyoung

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/louisbouvier/perturbedpath/perturbed"
)

// Loss is a Fenchel-Young loss bound to one perturbed layer. The
// layer's maximizer, ε, M, and random source fully determine the
// smoothing; Loss adds no state of its own.
type Loss struct {
	layer *perturbed.Layer
}

// New constructs a Loss on top of the given perturbed layer.
func New(layer *perturbed.Layer) (*Loss, error) {
	if layer == nil {
		return nil, ErrNilLayer
	}

	return &Loss{layer: layer}, nil
}

// checkShapes validates the θ/target pair shared by all methods.
func checkShapes(theta, target *mat.Dense) error {
	if theta == nil || target == nil {
		return ErrNilInput
	}
	th, tw := theta.Dims()
	gh, gw := target.Dims()
	if th != gh || tw != gw {
		return fmt.Errorf("%w: theta %dx%d, target %dx%d", ErrShapeMismatch, th, tw, gh, gw)
	}

	return nil
}

// ValueGrad estimates the loss value and its subgradient from a single
// pass of Monte Carlo draws:
//
//	value = F̂(θ) − ⟨θ, ȳ⟩   (up to the constant Ω(ȳ))
//	grad  = Ŷ(θ) − ȳ
//
// The oracle is called M times and never differentiated; grad is the
// closed-form learning signal handed to whatever backpropagates into
// the cost predictor.
func (l *Loss) ValueGrad(theta, target *mat.Dense) (value float64, grad *mat.Dense, err error) {
	if err = checkShapes(theta, target); err != nil {
		return 0, nil, err
	}
	yMean, fHat, err := l.layer.Estimate(theta)
	if err != nil {
		return 0, nil, err
	}

	h, w := theta.Dims()
	grad = mat.NewDense(h, w, nil)
	grad.Sub(yMean, target)

	return fHat - dot(theta, target), grad, nil
}

// Value estimates the loss value alone. Non-negative up to Monte Carlo
// noise; zero (within tolerance) when ȳ is the perturbed-expectation
// optimum at θ.
func (l *Loss) Value(theta, target *mat.Dense) (float64, error) {
	value, _, err := l.ValueGrad(theta, target)

	return value, err
}

// Grad estimates the subgradient Ŷ(θ) − ȳ alone. It is the zero matrix
// exactly when the smoothed prediction already equals the target.
func (l *Loss) Grad(theta, target *mat.Dense) (*mat.Dense, error) {
	_, grad, err := l.ValueGrad(theta, target)

	return grad, err
}

// dot returns the elementwise inner product ⟨a, b⟩ of two equally
// shaped matrices.
func dot(a, b *mat.Dense) float64 {
	h, w := a.Dims()
	var total float64
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			total += a.At(r, c) * b.At(r, c)
		}
	}

	return total
}
