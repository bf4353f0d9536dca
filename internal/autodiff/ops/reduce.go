package ops

import (
	"fmt"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// SumDimOp records a sum along one dimension.
type SumDimOp struct {
	Input   *tensor.RawTensor
	Result  *tensor.RawTensor
	Dim     int
	KeepDim bool
}

// Backward broadcasts the output gradient back over the reduced
// dimension. The broadcast goes through backend.Mul with a ones
// constant so it stays on the tape.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{expandReduced(outputGrad, op.Input, op.Dim, op.KeepDim, backend)}
}

func (op *SumDimOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.Input} }
func (op *SumDimOp) Output() *tensor.RawTensor { return op.Result }
func (op *SumDimOp) Name() string { return "sum_dim" }

// MeanDimOp records a mean along one dimension.
type MeanDimOp struct {
	Input   *tensor.RawTensor
	Result  *tensor.RawTensor
	Dim     int
	KeepDim bool
}

// Backward broadcasts the output gradient and scales it by 1/n.
func (op *MeanDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	expanded := expandReduced(outputGrad, op.Input, op.Dim, op.KeepDim, backend)
	n := op.Input.Shape()[op.Dim]
	return []*tensor.RawTensor{backend.MulScalar(expanded, invScalar(op.Input.DType(), n))}
}

func (op *MeanDimOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.Input} }
func (op *MeanDimOp) Output() *tensor.RawTensor { return op.Result }
func (op *MeanDimOp) Name() string { return "mean_dim" }

// expandReduced takes the gradient of a dim-reduction output and
// stretches it back to the input's shape.
func expandReduced(grad, input *tensor.RawTensor, dim int, keepDim bool, backend tensor.Backend) *tensor.RawTensor {
	g := grad
	if !keepDim {
		withDim := input.Shape().Clone()
		withDim[dim] = 1
		g = backend.Reshape(g, withDim)
	}
	ones := onesLike(input.Shape(), input.DType(), input.Device())
	return backend.Mul(ones, g)
}

func invScalar(dtype tensor.DataType, n int) any {
	switch dtype {
	case tensor.Float32:
		return float32(1) / float32(n)
	case tensor.Float64:
		return float64(1) / float64(n)
	default:
		panic(fmt.Sprintf("invScalar: unsupported dtype %s", dtype))
	}
}
