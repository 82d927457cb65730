package train

import (
	"github.com/pkg/errors"

	"github.com/louisbouvier/perturbedpath/fenchelyoung"
)

// Trainer drives gradient descent over an external embedding using
// the Fenchel-Young loss, tracking the cost gap as it goes.
type Trainer struct {
	embed    Embedding
	loss     *fenchelyoung.Loss
	maximize Maximizer
	cfg      Options
}

// NewTrainer wires the three collaborators together. The maximizer is
// used only for the cost-gap metric; the loss carries its own
// (smoothed) oracle.
func NewTrainer(embed Embedding, loss *fenchelyoung.Loss, maximize Maximizer, opts ...Option) (*Trainer, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if embed == nil {
		return nil, ErrNilEmbedding
	}
	if loss == nil {
		return nil, ErrNilLoss
	}
	if maximize == nil {
		return nil, ErrNilMaximizer
	}
	if cfg.Epochs < 1 {
		return nil, ErrBadEpochs
	}
	if cfg.BatchSize < 1 {
		return nil, ErrBadBatchSize
	}
	if cfg.LearningRate <= 0 {
		return nil, ErrBadLearningRate
	}

	return &Trainer{embed: embed, loss: loss, maximize: maximize, cfg: cfg}, nil
}

// Run trains for the configured number of epochs and returns the
// history: the pre-training cost gap at Epoch 0, then one row per
// epoch with the summed loss and the post-epoch gap.
//
// Per sample: θ = Forward(input), the loss's closed-form value and
// gradient are computed from one set of Monte Carlo draws, and the
// gradient ∂L/∂θ = Ŷ(θ) − ȳ is pushed into Backward. Step fires after
// every BatchSize samples and once more for a trailing partial batch.
func (tr *Trainer) Run(data []Sample) ([]EpochStats, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	for i, s := range data {
		if s.Input == nil || s.CostTrue == nil || s.PathTrue == nil {
			return nil, errors.Wrapf(ErrBadSample, "sample %d", i)
		}
	}

	history := make([]EpochStats, 0, tr.cfg.Epochs+1)
	record := func(stats EpochStats) {
		history = append(history, stats)
		if tr.cfg.OnEpoch != nil {
			tr.cfg.OnEpoch(stats)
		}
	}

	// Baseline gap before any update.
	gap, err := CostGap(tr.embed, data, tr.maximize)
	if err != nil {
		return nil, errors.Wrap(err, "train: initial cost gap")
	}
	record(EpochStats{Epoch: 0, CostGap: gap})

	for epoch := 1; epoch <= tr.cfg.Epochs; epoch++ {
		var epochLoss float64
		pending := 0
		for i, s := range data {
			theta := tr.embed.Forward(s.Input)
			value, grad, err := tr.loss.ValueGrad(theta, s.PathTrue)
			if err != nil {
				return nil, errors.Wrapf(err, "train: epoch %d sample %d", epoch, i)
			}
			epochLoss += value
			tr.embed.Backward(grad)
			pending++
			if pending == tr.cfg.BatchSize {
				tr.embed.Step(tr.cfg.LearningRate)
				pending = 0
			}
		}
		if pending > 0 {
			tr.embed.Step(tr.cfg.LearningRate)
		}

		gap, err := CostGap(tr.embed, data, tr.maximize)
		if err != nil {
			return nil, errors.Wrapf(err, "train: cost gap after epoch %d", epoch)
		}
		record(EpochStats{Epoch: epoch, Loss: epochLoss, CostGap: gap})
	}

	return history, nil
}
