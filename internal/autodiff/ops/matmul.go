package ops

import "github.com/pinn-ml/pinn/internal/tensor"

// MatMulOp records 2D matrix multiplication: output = a @ b.
type MatMulOp struct {
	A, B   *tensor.RawTensor
	Result *tensor.RawTensor
}

// Backward computes gradA = grad @ b^T and gradB = a^T @ grad.
func (op *MatMulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradA := backend.MatMul(outputGrad, backend.Transpose(op.B))
	gradB := backend.MatMul(backend.Transpose(op.A), outputGrad)
	return []*tensor.RawTensor{gradA, gradB}
}

func (op *MatMulOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *MatMulOp) Output() *tensor.RawTensor { return op.Result }
func (op *MatMulOp) Name() string { return "matmul" }
