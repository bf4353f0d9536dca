package nn

import (
	"fmt"
	"math/rand"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// Network input/output dimensions: (x, t) in, u out.
const (
	InputDim  = 2
	OutputDim = 1
)

// FCNConfig configures the fully-connected network.
type FCNConfig struct {
	// HiddenLayers is the number of hidden layers, each followed by
	// tanh. Must be at least 1.
	HiddenLayers int

	// Width is the number of units in each hidden layer.
	Width int
}

// Validate checks the configuration.
func (c FCNConfig) Validate() error {
	if c.HiddenLayers < 1 {
		return fmt.Errorf("hidden layers must be at least 1, got %d", c.HiddenLayers)
	}
	if c.Width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", c.Width)
	}
	return nil
}

// FCN is a fully-connected network u(x, t) -> R with tanh activations
// on every hidden layer and a linear output layer.
//
// Weights use Xavier-uniform initialization with the tanh gain, biases
// start at zero, and all randomness comes from the provided rng: the
// same seed reproduces the same network.
type FCN[B tensor.Backend] struct {
	layers []*Linear[B]
}

// NewFCN builds the network: InputDim -> Width (xHiddenLayers, tanh
// between) -> OutputDim.
func NewFCN[B tensor.Backend](cfg FCNConfig, rng *rand.Rand, backend B) (*FCN[B], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid network config: %w", err)
	}

	layers := make([]*Linear[B], 0, cfg.HiddenLayers+1)
	in := InputDim
	for i := 0; i < cfg.HiddenLayers; i++ {
		layers = append(layers, NewLinear(fmt.Sprintf("hidden%d", i), in, cfg.Width, TanhGain, rng, backend))
		in = cfg.Width
	}
	layers = append(layers, NewLinear("output", in, OutputDim, TanhGain, rng, backend))

	return &FCN[B]{layers: layers}, nil
}

// Forward evaluates the network on a batch of points [batch, 2] and
// returns [batch, 1].
func (f *FCN[B]) Forward(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	out := x
	for i, layer := range f.layers {
		out = layer.Forward(out)
		if i < len(f.layers)-1 {
			out = out.Tanh()
		}
	}
	return out
}

// Evaluate computes u(x, t) at a single point. Convenience entry point
// for inspecting the learned field after training.
func (f *FCN[B]) Evaluate(x, t float32) float32 {
	backend := f.layers[0].weight.tensor.Backend()
	in, err := tensor.FromSlice([]float32{x, t}, tensor.Shape{1, 2}, backend)
	if err != nil {
		panic(err)
	}
	return f.Forward(in).Item()
}

// Parameters returns all weights and biases, input layer first.
func (f *FCN[B]) Parameters() []*Parameter[B] {
	params := make([]*Parameter[B], 0, 2*len(f.layers))
	for _, layer := range f.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// NumLayers returns the number of linear layers (hidden plus output).
func (f *FCN[B]) NumLayers() int {
	return len(f.layers)
}
