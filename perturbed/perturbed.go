package perturbed

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/louisbouvier/perturbedpath/distribution"
)

// New constructs a Layer around the given maximizer.
// Validation: non-nil maximizer, ε ≥ 0, M ≥ 1.
func New(maximize Maximizer, opts ...Option) (*Layer, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if maximize == nil {
		return nil, ErrNilMaximizer
	}
	if cfg.Epsilon < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadEpsilon, cfg.Epsilon)
	}
	if cfg.Samples < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSamples, cfg.Samples)
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Layer{
		maximize: maximize,
		epsilon:  cfg.Epsilon,
		samples:  cfg.Samples,
		rng:      cfg.Rand,
	}, nil
}

// Epsilon returns the layer's perturbation scale.
func (l *Layer) Epsilon() float64 { return l.epsilon }

// Samples returns the layer's Monte Carlo sample count M.
func (l *Layer) Samples() int { return l.samples }

// sample runs the M perturbed oracle calls: for each draw it builds
// θᵢ = θ + ε·Zᵢ with Zᵢ i.i.d. standard normal, invokes the maximizer,
// and hands (θᵢ, Yᵢ) to visit. At ε = 0 no noise is generated and θ is
// passed through unchanged.
//
// Draws are consumed from the layer's random source in a fixed order,
// so a seeded layer reproduces its sequence exactly.
func (l *Layer) sample(theta *mat.Dense, visit func(thetaI, y *mat.Dense)) error {
	h, w := theta.Dims()
	for i := 0; i < l.samples; i++ {
		thetaI := theta
		if l.epsilon > 0 {
			perturbed := mat.NewDense(h, w, nil)
			for r := 0; r < h; r++ {
				for c := 0; c < w; c++ {
					perturbed.Set(r, c, theta.At(r, c)+l.epsilon*l.rng.NormFloat64())
				}
			}
			thetaI = perturbed
		}
		y, err := l.maximize(thetaI)
		if err != nil {
			return fmt.Errorf("perturbed: oracle call %d of %d: %w", i+1, l.samples, err)
		}
		visit(thetaI, y)
	}

	return nil
}

// Estimate runs one pass of M draws and returns both Monte Carlo
// estimates they support:
//
//   - yMean: Ŷ(θ) = (1/M) Σ Yᵢ, the smoothed argmax (a fractional
//     point in the convex hull of feasible paths);
//   - value: F̂(θ) = (1/M) Σ ⟨θᵢ, Yᵢ⟩, the smoothed maximum value.
//
// Sharing one set of draws between the two keeps the Fenchel-Young
// loss value and gradient consistent with each other.
func (l *Layer) Estimate(theta *mat.Dense) (yMean *mat.Dense, value float64, err error) {
	if theta == nil {
		return nil, 0, ErrNilTheta
	}
	h, w := theta.Dims()
	acc := mat.NewDense(h, w, nil)
	var total float64
	err = l.sample(theta, func(thetaI, y *mat.Dense) {
		acc.Add(acc, y)
		total += dot(thetaI, y)
	})
	if err != nil {
		return nil, 0, err
	}
	inv := 1 / float64(l.samples)
	acc.Scale(inv, acc)

	return acc, total * inv, nil
}

// Apply is the point-estimate forward call: the elementwise average of
// the M perturbed argmax outputs. With ε = 0 and any M it returns
// exactly the raw maximizer output.
func (l *Layer) Apply(theta *mat.Dense) (*mat.Dense, error) {
	yMean, _, err := l.Estimate(theta)

	return yMean, err
}

// Value is the Monte Carlo estimate of F(θ) = E[max_y ⟨θ+εZ, y⟩].
func (l *Layer) Value(theta *mat.Dense) (float64, error) {
	_, value, err := l.Estimate(theta)

	return value, err
}

// ApplyDistribution is the full-distribution forward call: the
// empirical law of the M draws, weight 1/M per draw, exact duplicates
// merged. It consumes the same sampling procedure as Apply, so equally
// seeded layers produce the distribution whose Expectation equals
// Apply's output.
func (l *Layer) ApplyDistribution(theta *mat.Dense) (*distribution.FixedAtoms, error) {
	if theta == nil {
		return nil, ErrNilTheta
	}
	atoms := make([]*mat.Dense, 0, l.samples)
	err := l.sample(theta, func(_, y *mat.Dense) {
		atoms = append(atoms, y)
	})
	if err != nil {
		return nil, err
	}
	weights := make([]float64, len(atoms))
	for i := range weights {
		weights[i] = 1 / float64(l.samples)
	}
	d, err := distribution.New(atoms, weights)
	if err != nil {
		return nil, err
	}

	return d.Compress(0)
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
