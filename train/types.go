// Package train defines the Embedding contract, dataset sample type,
// trainer configuration, and sentinel errors.
package train

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for training and metric operations.
var (
	// ErrNilEmbedding indicates a nil Embedding collaborator.
	ErrNilEmbedding = errors.New("train: embedding is nil")
	// ErrNilLoss indicates a nil *fenchelyoung.Loss.
	ErrNilLoss = errors.New("train: loss is nil")
	// ErrNilMaximizer indicates a nil maximizer for metric evaluation.
	ErrNilMaximizer = errors.New("train: maximizer is nil")
	// ErrEmptyDataset indicates an empty sample slice.
	ErrEmptyDataset = errors.New("train: dataset must contain at least one sample")
	// ErrBadSample indicates a sample with nil matrices.
	ErrBadSample = errors.New("train: sample has nil matrices")
	// ErrBadLearningRate indicates a non-positive learning rate.
	ErrBadLearningRate = errors.New("train: learning rate must be positive")
	// ErrBadBatchSize indicates a non-positive batch size.
	ErrBadBatchSize = errors.New("train: batch size must be positive")
	// ErrBadEpochs indicates a non-positive epoch count.
	ErrBadEpochs = errors.New("train: epoch count must be positive")
	// ErrDegenerateCost indicates a zero path cost in a cost ratio —
	// typically an all-zero "no path found" incidence matrix.
	ErrDegenerateCost = errors.New("train: degenerate zero path cost in ratio")
)

// Embedding is the external differentiable cost predictor. Forward
// maps an input tensor to a cost matrix θ; Backward receives ∂L/∂θ
// and accumulates parameter gradients; Step applies the accumulated
// update with the given learning rate and clears the accumulator.
// The core never looks inside.
type Embedding interface {
	Forward(input *mat.Dense) *mat.Dense
	Backward(grad *mat.Dense)
	Step(lr float64)
}

// Maximizer mirrors the oracle contract of package perturbed; metrics
// run the raw (unsmoothed) oracle on the model's predicted costs.
type Maximizer func(theta *mat.Dense) (*mat.Dense, error)

// Sample is one dataset item. Input is opaque to the core (consumed
// only by the embedding); CostTrue feeds the cost-ratio metric and
// PathTrue is the Fenchel-Young target.
type Sample struct {
	Input    *mat.Dense
	CostTrue *mat.Dense
	PathTrue *mat.Dense
}

// EpochStats is one row of the training history. The Epoch 0 row
// carries the pre-training cost gap with a zero loss.
type EpochStats struct {
	Epoch   int
	Loss    float64 // summed Fenchel-Young loss over the epoch
	CostGap float64 // percentage suboptimality gap after the epoch
}

// EpochFunc observes per-epoch statistics as training progresses.
type EpochFunc func(stats EpochStats)

// Options configures a Trainer.
//
// Epochs       – number of passes over the dataset, > 0.
// BatchSize    – samples per optimizer step, > 0.
// LearningRate – step size handed to Embedding.Step, > 0.
// OnEpoch      – optional per-epoch observer (nil to disable).
type Options struct {
	Epochs       int
	BatchSize    int
	LearningRate float64
	OnEpoch      EpochFunc
}

// Option represents a functional option for configuring a Trainer.
type Option func(*Options)

// WithEpochs sets the number of training epochs.
func WithEpochs(n int) Option {
	return func(o *Options) { o.Epochs = n }
}

// WithBatchSize sets the number of samples per optimizer step.
func WithBatchSize(n int) Option {
	return func(o *Options) { o.BatchSize = n }
}

// WithLearningRate sets the step size used by Embedding.Step.
func WithLearningRate(lr float64) Option {
	return func(o *Options) { o.LearningRate = lr }
}

// WithEpochFunc installs a per-epoch statistics observer.
func WithEpochFunc(fn EpochFunc) Option {
	return func(o *Options) { o.OnEpoch = fn }
}

// DefaultOptions returns the default trainer configuration:
// 10 epochs, batch size 1, learning rate 0.01, no observer.
func DefaultOptions() Options {
	return Options{
		Epochs:       10,
		BatchSize:    1,
		LearningRate: 0.01,
	}
}
