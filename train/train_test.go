// Package train_test validates the cost-ratio metrics and the epoch
// loop, including an end-to-end run in which the trainer teaches an
// offset embedding to reproduce a target path.
package train_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/louisbouvier/perturbedpath/bellman"
	"github.com/louisbouvier/perturbedpath/dijkstra"
	"github.com/louisbouvier/perturbedpath/fenchelyoung"
	"github.com/louisbouvier/perturbedpath/gridgraph"
	"github.com/louisbouvier/perturbedpath/perturbed"
	"github.com/louisbouvier/perturbedpath/train"
)

func TestCost_InnerProduct(t *testing.T) {
	y := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	c := mat.NewDense(2, 2, []float64{3, 100, 4, 5})
	assert.Equal(t, 12.0, train.Cost(y, c))
}

func TestCostRatio_PerfectPredictionIsOne(t *testing.T) {
	yTrue := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	c := mat.NewDense(2, 2, []float64{1, 9, 1, 1})
	ratio, err := train.CostRatio(yTrue, yTrue, c)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ratio, 1e-12)
}

func TestCostRatio_SuboptimalExceedsOne(t *testing.T) {
	c := mat.NewDense(2, 2, []float64{1, 9, 1, 1})
	yTrue := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	pred := mat.NewDense(2, 2, []float64{1, 1, 0, 1})
	ratio, err := train.CostRatio(pred, yTrue, c)
	require.NoError(t, err)
	assert.Greater(t, ratio, 1.0)
}

func TestCostRatio_DegenerateZeroCost(t *testing.T) {
	c := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	zero := mat.NewDense(2, 2, nil)
	y := mat.NewDense(2, 2, []float64{1, 0, 1, 1})

	_, err := train.CostRatio(y, zero, c)
	assert.ErrorIs(t, err, train.ErrDegenerateCost, "all-zero true path")

	_, err = train.CostRatio(zero, y, c)
	assert.ErrorIs(t, err, train.ErrDegenerateCost, "all-zero predicted path")
}

// negated returns −m, the cost→score sign convention of the oracles.
func negated(m *mat.Dense) *mat.Dense {
	h, w := m.Dims()
	out := mat.NewDense(h, w, nil)
	out.Scale(-1, m)

	return out
}

func TestCostGap_PerfectModelIsZero(t *testing.T) {
	cTrue := mat.NewDense(3, 3, []float64{
		1, 1, 1,
		5, 5, 1,
		5, 5, 1,
	})
	// Optimal: across the top row, then down the right column.
	pathTrue := gridgraph.Path{0, 1, 2, 5, 8}.Incidence(3, 3)

	// A perfect model predicts θ = −c_true; the raw oracle then
	// recovers the optimal path and every ratio is exactly 1.
	embed := train.NewOffsetEmbedding(3, 3)
	data := []train.Sample{{Input: negated(cTrue), CostTrue: cTrue, PathTrue: pathTrue}}

	gap, err := train.CostGap(embed, data, dijkstra.Maximizer(gridgraph.Conn4))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, gap, 1e-9)
}

func TestCostGap_Validation(t *testing.T) {
	embed := train.NewOffsetEmbedding(2, 2)
	maximize := dijkstra.Maximizer(gridgraph.Conn4)

	_, err := train.CostGap(nil, nil, maximize)
	assert.ErrorIs(t, err, train.ErrNilEmbedding)

	_, err = train.CostGap(embed, nil, nil)
	assert.ErrorIs(t, err, train.ErrNilMaximizer)

	_, err = train.CostGap(embed, nil, maximize)
	assert.ErrorIs(t, err, train.ErrEmptyDataset)

	_, err = train.CostGap(embed, []train.Sample{{}}, maximize)
	assert.ErrorIs(t, err, train.ErrBadSample)
}

func TestNewTrainer_Validation(t *testing.T) {
	embed := train.NewOffsetEmbedding(2, 2)
	layer, err := perturbed.New(bellman.Maximizer(gridgraph.Conn4), perturbed.WithSeed(1))
	require.NoError(t, err)
	loss, err := fenchelyoung.New(layer)
	require.NoError(t, err)
	maximize := bellman.Maximizer(gridgraph.Conn4)

	_, err = train.NewTrainer(nil, loss, maximize)
	assert.ErrorIs(t, err, train.ErrNilEmbedding)

	_, err = train.NewTrainer(embed, nil, maximize)
	assert.ErrorIs(t, err, train.ErrNilLoss)

	_, err = train.NewTrainer(embed, loss, nil)
	assert.ErrorIs(t, err, train.ErrNilMaximizer)

	_, err = train.NewTrainer(embed, loss, maximize, train.WithEpochs(0))
	assert.ErrorIs(t, err, train.ErrBadEpochs)

	_, err = train.NewTrainer(embed, loss, maximize, train.WithBatchSize(0))
	assert.ErrorIs(t, err, train.ErrBadBatchSize)

	_, err = train.NewTrainer(embed, loss, maximize, train.WithLearningRate(0))
	assert.ErrorIs(t, err, train.ErrBadLearningRate)
}

func TestRun_LearnsTargetPath(t *testing.T) {
	// Ground truth: cheap top row and right column, expensive block
	// elsewhere. The input is a flat, uninformative score matrix; the
	// offset embedding must learn to favor the target cells.
	cTrue := mat.NewDense(3, 3, []float64{
		1, 1, 1,
		5, 5, 1,
		5, 5, 1,
	})
	pathTrue := gridgraph.Path{0, 1, 2, 5, 8}.Incidence(3, 3)
	flat := mat.NewDense(3, 3, []float64{-1, -1, -1, -1, -1, -1, -1, -1, -1})
	data := []train.Sample{{Input: flat, CostTrue: cTrue, PathTrue: pathTrue}}

	layer, err := perturbed.New(
		bellman.Maximizer(gridgraph.Conn4),
		perturbed.WithEpsilon(0.3),
		perturbed.WithSamples(30),
		perturbed.WithSeed(17),
	)
	require.NoError(t, err)
	loss, err := fenchelyoung.New(layer)
	require.NoError(t, err)

	embed := train.NewOffsetEmbedding(3, 3)
	var observed int
	trainer, err := train.NewTrainer(embed, loss, dijkstra.Maximizer(gridgraph.Conn4),
		train.WithEpochs(15),
		train.WithLearningRate(0.05),
		train.WithEpochFunc(func(stats train.EpochStats) { observed++ }),
	)
	require.NoError(t, err)

	history, err := trainer.Run(data)
	require.NoError(t, err)
	require.Len(t, history, 16, "baseline row plus one per epoch")
	assert.Equal(t, 0, history[0].Epoch)
	assert.Equal(t, 16, observed, "observer sees every history row")

	// After training the raw oracle on the predicted costs recovers
	// the target path, closing the gap completely.
	final := history[len(history)-1]
	assert.InDelta(t, 0.0, final.CostGap, 1e-9, "history: %+v", history)

	maximize := dijkstra.Maximizer(gridgraph.Conn4)
	pred, err := maximize(embed.Forward(flat))
	require.NoError(t, err)
	assert.True(t, mat.Equal(pathTrue, pred), "learned path:\n%v", mat.Formatted(pred))
}

func TestRun_EmptyDataset(t *testing.T) {
	layer, err := perturbed.New(bellman.Maximizer(gridgraph.Conn4), perturbed.WithSeed(1))
	require.NoError(t, err)
	loss, err := fenchelyoung.New(layer)
	require.NoError(t, err)
	trainer, err := train.NewTrainer(train.NewOffsetEmbedding(2, 2), loss, bellman.Maximizer(gridgraph.Conn4))
	require.NoError(t, err)

	_, err = trainer.Run(nil)
	assert.ErrorIs(t, err, train.ErrEmptyDataset)
}
