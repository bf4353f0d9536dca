package cpu

import (
	"fmt"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// MatMul performs 2D matrix multiplication: [m,k] x [k,n] -> [m,n].
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: expected 2D tensors, got %v and %v", aShape, bShape))
	}
	if aShape[1] != bShape[0] {
		panic(fmt.Sprintf("matmul: inner dimensions must match: %v x %v", aShape, bShape))
	}

	m, k, n := aShape[0], aShape[1], bShape[1]
	result := mustNewRaw("matmul", tensor.Shape{m, n}, a.DType(), cpu.device)

	switch a.DType() {
	case tensor.Float32:
		matmulFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
	case tensor.Float64:
		matmulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n)
	default:
		panic("matmul: unsupported dtype")
	}

	return result
}

// matmulFloat32 uses the ikj loop order for sequential access on both
// operands.
func matmulFloat32(dst, a, b []float32, m, k, n int) {
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			av := a[i*k+p]
			if av == 0 {
				continue
			}
			brow := b[p*n : (p+1)*n]
			drow := dst[i*n : (i+1)*n]
			for j := range brow {
				drow[j] += av * brow[j]
			}
		}
	}
}

func matmulFloat64(dst, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			av := a[i*k+p]
			if av == 0 {
				continue
			}
			brow := b[p*n : (p+1)*n]
			drow := dst[i*n : (i+1)*n]
			for j := range brow {
				drow[j] += av * brow[j]
			}
		}
	}
}
