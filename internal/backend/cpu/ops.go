package cpu

import "github.com/pinn-ml/pinn/internal/tensor"

// kernel pairs the float32 and float64 forms of an element-wise binary op.
type kernel struct {
	f32 func(a, b float32) float32
	f64 func(a, b float64) float64
}

var (
	addKernel = kernel{
		f32: func(a, b float32) float32 { return a + b },
		f64: func(a, b float64) float64 { return a + b },
	}
	subKernel = kernel{
		f32: func(a, b float32) float32 { return a - b },
		f64: func(a, b float64) float64 { return a - b },
	}
	mulKernel = kernel{
		f32: func(a, b float32) float32 { return a * b },
		f64: func(a, b float64) float64 { return a * b },
	}
)

// applyInplace computes a = k(a, b). Requires equal shapes and a unique
// left buffer.
func applyInplace(a, b *tensor.RawTensor, k kernel) {
	switch a.DType() {
	case tensor.Float32:
		av, bv := a.AsFloat32(), b.AsFloat32()
		for i := range av {
			av[i] = k.f32(av[i], bv[i])
		}
	case tensor.Float64:
		av, bv := a.AsFloat64(), b.AsFloat64()
		for i := range av {
			av[i] = k.f64(av[i], bv[i])
		}
	default:
		panic("applyInplace: unsupported dtype")
	}
}

// applyVectorized computes result = k(a, b) for equal shapes.
func applyVectorized(result, a, b *tensor.RawTensor, k kernel) {
	switch a.DType() {
	case tensor.Float32:
		dst, av, bv := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		for i := range av {
			dst[i] = k.f32(av[i], bv[i])
		}
	case tensor.Float64:
		dst, av, bv := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		for i := range av {
			dst[i] = k.f64(av[i], bv[i])
		}
	default:
		panic("applyVectorized: unsupported dtype")
	}
}

// applyBroadcast computes result = k(a, b) with shape broadcasting.
func applyBroadcast(result, a, b *tensor.RawTensor, outShape tensor.Shape, k kernel) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	n := outShape.NumElements()

	switch a.DType() {
	case tensor.Float32:
		dst, av, bv := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		for i := 0; i < n; i++ {
			dst[i] = k.f32(av[srcIndex(i, outStrides, aStrides)], bv[srcIndex(i, outStrides, bStrides)])
		}
	case tensor.Float64:
		dst, av, bv := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		for i := 0; i < n; i++ {
			dst[i] = k.f64(av[srcIndex(i, outStrides, aStrides)], bv[srcIndex(i, outStrides, bStrides)])
		}
	default:
		panic("applyBroadcast: unsupported dtype")
	}
}

// broadcastStrides returns per-output-dimension strides into a source
// tensor, with stride 0 on dimensions the source is broadcast along.
func broadcastStrides(shape, outShape tensor.Shape) []int {
	strides := shape.ComputeStrides()
	out := make([]int, len(outShape))
	offset := len(outShape) - len(shape)
	for i := range outShape {
		j := i - offset
		if j < 0 || shape[j] == 1 {
			out[i] = 0
		} else {
			out[i] = strides[j]
		}
	}
	return out
}

// srcIndex maps a flat output index to the flat source index under
// broadcasting.
func srcIndex(flat int, outStrides, srcStrides []int) int {
	idx := 0
	rem := flat
	for d := 0; d < len(outStrides); d++ {
		coord := rem / outStrides[d]
		rem %= outStrides[d]
		idx += coord * srcStrides[d]
	}
	return idx
}

func transposeData(result, src *tensor.RawTensor, axes []int) {
	shape := src.Shape()
	ndim := len(shape)
	srcStrides := shape.ComputeStrides()

	dstShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		dstShape[i] = shape[ax]
	}
	dstStrides := dstShape.ComputeStrides()

	n := shape.NumElements()
	coords := make([]int, ndim)

	copyElem := func(srcIdx, dstIdx int) {
		switch src.DType() {
		case tensor.Float32:
			result.AsFloat32()[dstIdx] = src.AsFloat32()[srcIdx]
		case tensor.Float64:
			result.AsFloat64()[dstIdx] = src.AsFloat64()[srcIdx]
		default:
			panic("transpose: unsupported dtype")
		}
	}

	for i := 0; i < n; i++ {
		rem := i
		for dim := 0; dim < ndim; dim++ {
			coords[dim] = rem / srcStrides[dim]
			rem %= srcStrides[dim]
		}

		dstIdx := 0
		for dstDim, srcDim := range axes {
			dstIdx += coords[srcDim] * dstStrides[dstDim]
		}
		copyElem(i, dstIdx)
	}
}
