package train

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Cost returns ⟨y, cTrue⟩, the true cost of a path indicator y under
// the ground-truth cost matrix.
// Complexity: O(W×H).
func Cost(y, cTrue mat.Matrix) float64 {
	h, w := cTrue.Dims()
	var total float64
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			total += y.At(r, c) * cTrue.At(r, c)
		}
	}

	return total
}

// CostRatio returns ⟨cTrue, pred⟩ / ⟨cTrue, yTrue⟩: the true cost of a
// predicted path normalized by the optimal true cost. Always ≥ 1 when
// yTrue is optimal under cTrue.
//
// A zero cost on either side — the all-zero "no path found" matrix —
// makes the ratio meaningless and yields ErrDegenerateCost rather
// than ±Inf or NaN.
func CostRatio(pred, yTrue, cTrue mat.Matrix) (float64, error) {
	denom := Cost(yTrue, cTrue)
	if denom == 0 {
		return 0, errors.Wrap(ErrDegenerateCost, "true path")
	}
	num := Cost(pred, cTrue)
	if num == 0 {
		return 0, errors.Wrap(ErrDegenerateCost, "predicted path")
	}

	return num / denom, nil
}

// CostGap returns the percentage suboptimality gap of the embedding
// over the dataset: (mean cost ratio − 1) × 100. The raw maximizer is
// run on each predicted cost matrix — metrics never smooth.
func CostGap(embed Embedding, data []Sample, maximize Maximizer) (float64, error) {
	if embed == nil {
		return 0, ErrNilEmbedding
	}
	if maximize == nil {
		return 0, ErrNilMaximizer
	}
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}

	var sum float64
	for i, s := range data {
		if s.Input == nil || s.CostTrue == nil || s.PathTrue == nil {
			return 0, errors.Wrapf(ErrBadSample, "sample %d", i)
		}
		pred, err := maximize(embed.Forward(s.Input))
		if err != nil {
			return 0, errors.Wrapf(err, "train: maximizer on sample %d", i)
		}
		ratio, err := CostRatio(pred, s.PathTrue, s.CostTrue)
		if err != nil {
			return 0, errors.Wrapf(err, "sample %d", i)
		}
		sum += ratio
	}

	return (sum/float64(len(data)) - 1) * 100, nil
}
