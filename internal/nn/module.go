// Package nn provides neural network building blocks: parameters,
// linear layers, initialization, and the fully-connected tanh network
// used as the PDE solution ansatz.
package nn

import "github.com/pinn-ml/pinn/internal/tensor"

// Module is a unit of computation with trainable parameters.
type Module[B tensor.Backend] interface {
	// Forward computes the module's output for the given input.
	Forward(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters.
	Parameters() []*Parameter[B]
}
