// Package trainer wires the sampler, network, residual evaluators, and
// optimizer into the training loop.
package trainer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/pinn-ml/pinn/internal/autodiff"
	"github.com/pinn-ml/pinn/internal/metrics"
	"github.com/pinn-ml/pinn/internal/nn"
	"github.com/pinn-ml/pinn/internal/optim"
	"github.com/pinn-ml/pinn/internal/pinn"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// Optimizer names accepted in Config.
const (
	OptimizerAdam = "adam"
	OptimizerSGD  = "sgd"
)

// Config holds the training hyperparameters.
type Config struct {
	// Epochs is the number of optimization steps. Each epoch draws a
	// fresh batch of collocation points, so there is no dataset to
	// iterate over.
	Epochs int

	// BatchSize is the number of interior points and the number of
	// boundary points sampled per step.
	BatchSize int

	// LearningRate for the optimizer.
	LearningRate float64

	// Optimizer selects the update rule: "adam" (default) or "sgd".
	Optimizer string

	// HiddenLayers and Width configure the network.
	HiddenLayers int
	Width        int

	// Seed feeds the single random source used for weight
	// initialization and point sampling. Same seed, same run.
	Seed int64
}

// DefaultConfig returns the baseline hyperparameters.
func DefaultConfig() Config {
	return Config{
		Epochs:       10,
		BatchSize:    512,
		LearningRate: 1e-3,
		Optimizer:    OptimizerAdam,
		HiddenLayers: 3,
		Width:        128,
		Seed:         42,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Epochs < 1 {
		return fmt.Errorf("epochs must be at least 1, got %d", c.Epochs)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch size must be at least 1, got %d", c.BatchSize)
	}
	if c.LearningRate <= 0 || math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) {
		return fmt.Errorf("learning rate must be positive and finite, got %v", c.LearningRate)
	}
	if c.Optimizer != "" && c.Optimizer != OptimizerAdam && c.Optimizer != OptimizerSGD {
		return fmt.Errorf("unknown optimizer %q (want %q or %q)", c.Optimizer, OptimizerAdam, OptimizerSGD)
	}
	return nil
}

// State is the trainer lifecycle phase.
type State int

const (
	Initialized State = iota
	Training
	Completed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Training:
		return "training"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Losses are the three scalars reported per step.
type Losses struct {
	PDE      float64
	Boundary float64
	Total    float64
}

// Trainer runs the physics-informed training loop: sample fresh
// collocation points, evaluate the PDE and boundary residuals, and
// descend the combined mean-squared loss.
type Trainer[B autodiff.BackwardCapable] struct {
	cfg     Config
	backend B
	model   *nn.FCN[B]
	sampler *pinn.Sampler[B]
	opt     optim.Optimizer
	sink    metrics.Sink

	runID string
	state State
	step  int
}

// New builds a trainer. The seed drives a single random source shared
// by weight initialization and sampling, so construction order is part
// of reproducibility. A nil sink discards metrics.
func New[B autodiff.BackwardCapable](cfg Config, domain pinn.Domain, backend B, sink metrics.Sink) (*Trainer[B], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid training config: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	model, err := nn.NewFCN(nn.FCNConfig{
		HiddenLayers: cfg.HiddenLayers,
		Width:        cfg.Width,
	}, rng, backend)
	if err != nil {
		return nil, err
	}

	sampler := pinn.NewSampler(domain, rng, backend)

	var opt optim.Optimizer
	switch cfg.Optimizer {
	case OptimizerSGD:
		opt = optim.NewSGD(model.Parameters(), float32(cfg.LearningRate), 0.9)
	default:
		opt = optim.NewAdam(model.Parameters(), float32(cfg.LearningRate))
	}

	return &Trainer[B]{
		cfg:     cfg,
		backend: backend,
		model:   model,
		sampler: sampler,
		opt:     opt,
		sink:    sink,
		runID:   uuid.NewString(),
		state:   Initialized,
	}, nil
}

// Model returns the network being trained.
func (t *Trainer[B]) Model() *nn.FCN[B] {
	return t.model
}

// RunID returns the unique identifier for this training run.
func (t *Trainer[B]) RunID() string {
	return t.runID
}

// SetSink replaces the metrics sink. Useful when the sink wants the
// trainer's run ID, which only exists after construction.
func (t *Trainer[B]) SetSink(sink metrics.Sink) {
	t.sink = sink
}

// State returns the trainer's lifecycle phase.
func (t *Trainer[B]) State() State {
	return t.state
}

// Step performs one optimization step: fresh interior and boundary
// batches, residual evaluation with the gradient graph retained, a
// backward pass to the parameters, and an optimizer update. The three
// loss scalars are reported to the sink and returned.
func (t *Trainer[B]) Step() (Losses, error) {
	tape := t.backend.GetTape()
	tape.Clear()
	tape.StartRecording()
	defer func() {
		tape.StopRecording()
		tape.Clear()
	}()

	interior := t.sampler.Interior(t.cfg.BatchSize)
	pdeResidual, err := pinn.PDEResidual[B](t.model, interior, t.backend, true)
	if err != nil {
		return Losses{}, fmt.Errorf("pde residual: %w", err)
	}
	pdeLoss := pinn.MeanSquare(pdeResidual)

	points, targets := t.sampler.Boundary(t.cfg.BatchSize)
	boundaryLoss := pinn.MeanSquare(pinn.BoundaryResidual[B](t.model, points, targets))

	total := pdeLoss.Add(boundaryLoss)

	seed := tensor.Ones[float32, B](total.Shape(), t.backend)
	grads := tape.Backward(total.Raw(), seed.Raw(), t.backend, false)
	t.opt.Step(grads)

	losses := Losses{
		PDE:      float64(pdeLoss.Item()),
		Boundary: float64(boundaryLoss.Item()),
		Total:    float64(total.Item()),
	}

	if t.sink != nil {
		t.sink.Record(t.step, map[string]float64{
			"pde_loss":      losses.PDE,
			"boundary_loss": losses.Boundary,
			"loss":          losses.Total,
		})
	}
	t.step++

	return losses, nil
}

// Run executes the configured number of epochs and returns the final
// step's losses.
func (t *Trainer[B]) Run() (Losses, error) {
	t.state = Training

	var last Losses
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		losses, err := t.Step()
		if err != nil {
			return last, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		last = losses
	}

	t.state = Completed
	return last, nil
}
