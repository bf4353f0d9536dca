package autodiff

import "github.com/pinn-ml/pinn/internal/tensor"

// BackwardCapable is a backend that supports reverse-mode
// differentiation. *AutodiffBackend implements it; code generic over
// the backend (models, residual evaluators, the trainer) constrains on
// this instead of naming the decorator's type parameters.
type BackwardCapable interface {
	tensor.Backend
	GetTape() *GradientTape
}

// Backward differentiates t with respect to everything on the tape,
// seeding the pass with a gradient of ones.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], createGraph bool) map[*tensor.RawTensor]*tensor.RawTensor {
	backend := t.Backend()
	seed := tensor.Ones[T, B](t.Shape(), backend)
	return backend.GetTape().Backward(t.Raw(), seed.Raw(), backend, createGraph)
}
