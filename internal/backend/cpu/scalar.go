package cpu

import (
	"fmt"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// MulScalar multiplies every element by a scalar. The scalar's dynamic
// type must match the tensor's dtype.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := mustNewRaw("mul_scalar", x.Shape(), x.DType(), cpu.device)

	switch x.DType() {
	case tensor.Float32:
		s, ok := scalar.(float32)
		if !ok {
			panic(fmt.Sprintf("mul_scalar: expected float32 scalar for Float32 tensor, got %T", scalar))
		}
		dst, src := result.AsFloat32(), x.AsFloat32()
		for i, v := range src {
			dst[i] = v * s
		}
	case tensor.Float64:
		s, ok := scalar.(float64)
		if !ok {
			panic(fmt.Sprintf("mul_scalar: expected float64 scalar for Float64 tensor, got %T", scalar))
		}
		dst, src := result.AsFloat64(), x.AsFloat64()
		for i, v := range src {
			dst[i] = v * s
		}
	default:
		panic("mul_scalar: unsupported dtype")
	}

	return result
}
