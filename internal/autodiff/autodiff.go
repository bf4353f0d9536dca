// Package autodiff provides reverse-mode automatic differentiation via
// a backend decorator: it wraps any tensor.Backend, records every
// operation on a gradient tape, and replays them in reverse to compute
// gradients. Running a backward pass with createGraph records the
// gradient computation itself, so gradients of gradients work.
package autodiff

import (
	"github.com/pinn-ml/pinn/internal/autodiff/ops"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// AutodiffBackend decorates a backend with gradient tracking.
type AutodiffBackend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

// New creates an autodiff decorator around the given backend.
func New[B tensor.Backend](inner B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: inner,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape.
func (ad *AutodiffBackend[B]) Tape() *GradientTape {
	return ad.tape
}

// GetTape implements BackwardCapable.
func (ad *AutodiffBackend[B]) GetTape() *GradientTape {
	return ad.tape
}

// Inner returns the wrapped backend.
func (ad *AutodiffBackend[B]) Inner() B {
	return ad.inner
}

// Name returns the backend name.
func (ad *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + ad.inner.Name() + ")"
}

// Device returns the compute device of the wrapped backend.
func (ad *AutodiffBackend[B]) Device() tensor.Device {
	return ad.inner.Device()
}

// Recorded operands must keep their values for the backward pass, so
// every operation pins its inputs non-unique around the inner call.
// This blocks the inner backend's in-place fast path from mutating a
// tensor the tape still refers to, and guarantees the result is a
// fresh tensor with its own identity.

// Add performs element-wise addition and records it.
func (ad *AutodiffBackend[B]) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer b.ForceNonUnique()()

	result := ad.inner.Add(a, b)
	ad.tape.Record(&ops.AddOp{A: a, B: b, Result: result})
	return result
}

// Sub performs element-wise subtraction and records it.
func (ad *AutodiffBackend[B]) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer b.ForceNonUnique()()

	result := ad.inner.Sub(a, b)
	ad.tape.Record(&ops.SubOp{A: a, B: b, Result: result})
	return result
}

// Mul performs element-wise multiplication and records it.
func (ad *AutodiffBackend[B]) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer b.ForceNonUnique()()

	result := ad.inner.Mul(a, b)
	ad.tape.Record(&ops.MulOp{A: a, B: b, Result: result})
	return result
}

// MatMul performs matrix multiplication and records it.
func (ad *AutodiffBackend[B]) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer b.ForceNonUnique()()

	result := ad.inner.MatMul(a, b)
	ad.tape.Record(&ops.MatMulOp{A: a, B: b, Result: result})
	return result
}

// MulScalar performs scalar multiplication and records it.
func (ad *AutodiffBackend[B]) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := ad.inner.MulScalar(x, scalar)
	ad.tape.Record(&ops.ScaleOp{Input: x, Result: result, Factor: scalar})
	return result
}

// Exp computes the element-wise exponential and records it.
func (ad *AutodiffBackend[B]) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := ad.inner.Exp(x)
	ad.tape.Record(&ops.ExpOp{Input: x, Result: result})
	return result
}

// Tanh computes the element-wise hyperbolic tangent and records it.
func (ad *AutodiffBackend[B]) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := ad.inner.Tanh(x)
	ad.tape.Record(&ops.TanhOp{Input: x, Result: result})
	return result
}

// Reshape changes the tensor's shape and records it.
func (ad *AutodiffBackend[B]) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := ad.inner.Reshape(t, newShape)
	ad.tape.Record(&ops.ReshapeOp{Input: t, Result: result})
	return result
}

// Transpose permutes the tensor's dimensions and records it.
func (ad *AutodiffBackend[B]) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := ad.inner.Transpose(t, axes...)
	ad.tape.Record(&ops.TransposeOp{Input: t, Result: result, Axes: axes})
	return result
}

// SumDim sums along a dimension and records it.
func (ad *AutodiffBackend[B]) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := ad.inner.SumDim(x, dim, keepDim)
	ad.tape.Record(&ops.SumDimOp{Input: x, Result: result, Dim: dim, KeepDim: keepDim})
	return result
}

// MeanDim averages along a dimension and records it.
func (ad *AutodiffBackend[B]) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := ad.inner.MeanDim(x, dim, keepDim)
	ad.tape.Record(&ops.MeanDimOp{Input: x, Result: result, Dim: dim, KeepDim: keepDim})
	return result
}
