package tensor

// Backend defines the compute interface tensors dispatch to. The surface
// is exactly the operation set the training stack needs; every method
// must allocate a fresh result unless the input buffer is uniquely
// referenced (copy-on-write fast path).
//
// Implementations:
//   - cpu.CPUBackend: pure Go reference implementation
//   - autodiff.AutodiffBackend: decorator recording operations on a tape
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// MatMul performs 2D matrix multiplication: (M,K) @ (K,N) -> (M,N).
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// MulScalar multiplies every element by a scalar. The scalar's Go
	// type must match the tensor's dtype.
	MulScalar(x *RawTensor, scalar any) *RawTensor

	// Element-wise math.
	Exp(x *RawTensor) *RawTensor
	Tanh(x *RawTensor) *RawTensor

	// Reductions along a dimension.
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
