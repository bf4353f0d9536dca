package ops

import "github.com/pinn-ml/pinn/internal/tensor"

// TransposeOp records a dimension permutation.
type TransposeOp struct {
	Input  *tensor.RawTensor
	Result *tensor.RawTensor
	Axes   []int
}

// Backward transposes the gradient with the inverse permutation.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	axes := op.Axes
	if len(axes) == 0 {
		ndim := len(op.Input.Shape())
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	inverse := make([]int, len(axes))
	for i, ax := range axes {
		inverse[ax] = i
	}
	return []*tensor.RawTensor{backend.Transpose(outputGrad, inverse...)}
}

func (op *TransposeOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.Input} }
func (op *TransposeOp) Output() *tensor.RawTensor { return op.Result }
func (op *TransposeOp) Name() string { return "transpose" }

// ReshapeOp records a shape change.
type ReshapeOp struct {
	Input  *tensor.RawTensor
	Result *tensor.RawTensor
}

func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.Input.Shape())}
}

func (op *ReshapeOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.Input} }
func (op *ReshapeOp) Output() *tensor.RawTensor { return op.Result }
func (op *ReshapeOp) Name() string { return "reshape" }
