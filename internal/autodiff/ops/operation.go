// Package ops defines the differentiable operations recorded on the
// gradient tape, each with its backward rule.
//
// Backward rules compute through the tensor.Backend interface they are
// handed. When that backend is itself the recording decorator, the
// gradient computation lands on the tape too, which is what makes
// derivatives of derivatives (needed for PDE residual training)
// possible.
package ops

import "github.com/pinn-ml/pinn/internal/tensor"

// Operation is a recorded tensor operation with its backward rule.
type Operation interface {
	// Backward computes input gradients given the output gradient.
	// Returns one gradient per input, in input order.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the operation's input tensors.
	Inputs() []*tensor.RawTensor

	// Output returns the operation's output tensor.
	Output() *tensor.RawTensor

	// Name returns the operation name for debugging.
	Name() string
}
