// Package optim provides gradient-descent optimizers. Optimizers take
// the gradient map produced by a tape backward pass and update
// parameter values in place, keeping parameter tensor identities
// stable across steps.
package optim

import (
	"github.com/pinn-ml/pinn/internal/tensor"
)

// Optimizer updates parameters from a gradient map keyed by the
// parameters' raw tensors.
type Optimizer interface {
	// Step applies one update. Parameters without a gradient in the
	// map are left untouched.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// LearningRate returns the current learning rate.
	LearningRate() float32
}
