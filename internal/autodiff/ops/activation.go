package ops

import "github.com/pinn-ml/pinn/internal/tensor"

// ExpOp records the element-wise exponential: output = exp(x).
type ExpOp struct {
	Input  *tensor.RawTensor
	Result *tensor.RawTensor
}

// Backward computes grad * exp(x), reusing the saved forward output.
func (op *ExpOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Mul(outputGrad, op.Result)}
}

func (op *ExpOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.Input} }
func (op *ExpOp) Output() *tensor.RawTensor { return op.Result }
func (op *ExpOp) Name() string { return "exp" }

// TanhOp records the element-wise hyperbolic tangent: output = tanh(x).
type TanhOp struct {
	Input  *tensor.RawTensor
	Result *tensor.RawTensor
}

// Backward computes grad * (1 - tanh(x)^2) from the saved output.
func (op *TanhOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	ones := onesLike(op.Result.Shape(), op.Result.DType(), op.Result.Device())
	sech2 := backend.Sub(ones, backend.Mul(op.Result, op.Result))
	return []*tensor.RawTensor{backend.Mul(outputGrad, sech2)}
}

func (op *TanhOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.Input} }
func (op *TanhOp) Output() *tensor.RawTensor { return op.Result }
func (op *TanhOp) Name() string { return "tanh" }
