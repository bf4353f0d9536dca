package ops

import (
	"fmt"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// reduceBroadcast sums a gradient back down to the shape of the input it
// belongs to, undoing any forward broadcasting.
//
// When the shapes already match, the gradient is returned as-is: the
// same pointer. Returning a copy here would detach the gradient from
// the tape (gradients are keyed by pointer identity), silently breaking
// higher-order backward passes.
func reduceBroadcast(grad *tensor.RawTensor, target tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(target) {
		return grad
	}

	result := grad
	for len(result.Shape()) > len(target) {
		result = backend.SumDim(result, 0, false)
	}
	for i, dim := range target {
		if dim == 1 && result.Shape()[i] != 1 {
			result = backend.SumDim(result, i, true)
		}
	}
	if !result.Shape().Equal(target) {
		result = backend.Reshape(result, target)
	}
	return result
}

// negate computes -x through the backend so the negation is recorded.
func negate(x *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	return backend.MulScalar(x, negOne(x.DType()))
}

func negOne(dtype tensor.DataType) any {
	switch dtype {
	case tensor.Float32:
		return float32(-1)
	case tensor.Float64:
		return float64(-1)
	default:
		panic(fmt.Sprintf("negOne: unsupported dtype %s", dtype))
	}
}

// onesLike creates a constant tensor of ones with the given shape and
// dtype. It is a leaf: no operation produces it, so backward passes
// treat it as a constant.
func onesLike(shape tensor.Shape, dtype tensor.DataType, device tensor.Device) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		panic(fmt.Sprintf("onesLike: %v", err))
	}
	switch dtype {
	case tensor.Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = 1
		}
	case tensor.Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	default:
		panic(fmt.Sprintf("onesLike: unsupported dtype %s", dtype))
	}
	return raw
}
