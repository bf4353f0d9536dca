package ops

import "github.com/pinn-ml/pinn/internal/tensor"

// AddOp records element-wise addition: output = a + b.
type AddOp struct {
	A, B   *tensor.RawTensor
	Result *tensor.RawTensor
}

func (op *AddOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.A.Shape(), backend),
		reduceBroadcast(outputGrad, op.B.Shape(), backend),
	}
}

func (op *AddOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *AddOp) Output() *tensor.RawTensor { return op.Result }
func (op *AddOp) Name() string { return "add" }

// SubOp records element-wise subtraction: output = a - b.
type SubOp struct {
	A, B   *tensor.RawTensor
	Result *tensor.RawTensor
}

func (op *SubOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.A.Shape(), backend),
		reduceBroadcast(negate(outputGrad, backend), op.B.Shape(), backend),
	}
}

func (op *SubOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *SubOp) Output() *tensor.RawTensor { return op.Result }
func (op *SubOp) Name() string { return "sub" }

// MulOp records element-wise multiplication: output = a * b.
type MulOp struct {
	A, B   *tensor.RawTensor
	Result *tensor.RawTensor
}

func (op *MulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradA := backend.Mul(outputGrad, op.B)
	gradB := backend.Mul(outputGrad, op.A)
	return []*tensor.RawTensor{
		reduceBroadcast(gradA, op.A.Shape(), backend),
		reduceBroadcast(gradB, op.B.Shape(), backend),
	}
}

func (op *MulOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.A, op.B} }
func (op *MulOp) Output() *tensor.RawTensor { return op.Result }
func (op *MulOp) Name() string { return "mul" }

// ScaleOp records scalar multiplication: output = x * factor.
type ScaleOp struct {
	Input  *tensor.RawTensor
	Result *tensor.RawTensor
	Factor any
}

func (op *ScaleOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.MulScalar(outputGrad, op.Factor)}
}

func (op *ScaleOp) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.Input} }
func (op *ScaleOp) Output() *tensor.RawTensor { return op.Result }
func (op *ScaleOp) Name() string { return "mul_scalar" }
