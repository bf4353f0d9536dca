package cpu

import (
	"math"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// Exp computes the element-wise exponential.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("exp", x, math.Exp)
}

// Tanh computes the element-wise hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("tanh", x, math.Tanh)
}

func (cpu *CPUBackend) unaryOp(name string, x *tensor.RawTensor, fn func(float64) float64) *tensor.RawTensor {
	result := mustNewRaw(name, x.Shape(), x.DType(), cpu.device)

	switch x.DType() {
	case tensor.Float32:
		dst, src := result.AsFloat32(), x.AsFloat32()
		for i, v := range src {
			dst[i] = float32(fn(float64(v)))
		}
	case tensor.Float64:
		dst, src := result.AsFloat64(), x.AsFloat64()
		for i, v := range src {
			dst[i] = fn(v)
		}
	default:
		panic(name + ": unsupported dtype")
	}

	return result
}
