package cpu

import (
	"fmt"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// SumDim sums along a dimension. With keepDim the reduced dimension
// stays in the shape with size 1, otherwise it is removed.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("sum_dim", x, dim, keepDim, false)
}

// MeanDim averages along a dimension.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("mean_dim", x, dim, keepDim, true)
}

func (cpu *CPUBackend) reduceDim(name string, x *tensor.RawTensor, dim int, keepDim, mean bool) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: invalid dim %d for %dD tensor", name, dim, ndim))
	}

	outShape := reducedShape(shape, dim, keepDim)
	result := mustNewRaw(name, outShape, x.DType(), cpu.device)

	outer := 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	dsize := shape[dim]
	inner := 1
	for i := dim + 1; i < ndim; i++ {
		inner *= shape[i]
	}

	switch x.DType() {
	case tensor.Float32:
		dst, src := result.AsFloat32(), x.AsFloat32()
		for o := 0; o < outer; o++ {
			for i := 0; i < inner; i++ {
				var sum float32
				for d := 0; d < dsize; d++ {
					sum += src[(o*dsize+d)*inner+i]
				}
				if mean {
					sum /= float32(dsize)
				}
				dst[o*inner+i] = sum
			}
		}
	case tensor.Float64:
		dst, src := result.AsFloat64(), x.AsFloat64()
		for o := 0; o < outer; o++ {
			for i := 0; i < inner; i++ {
				var sum float64
				for d := 0; d < dsize; d++ {
					sum += src[(o*dsize+d)*inner+i]
				}
				if mean {
					sum /= float64(dsize)
				}
				dst[o*inner+i] = sum
			}
		}
	default:
		panic(name + ": unsupported dtype")
	}

	return result
}

func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	for i, s := range shape {
		if i != dim {
			out = append(out, s)
		}
	}
	return out
}
