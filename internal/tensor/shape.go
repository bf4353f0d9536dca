package tensor

import "fmt"

// Shape describes tensor dimensions, outermost first.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("dimension %d must be positive, got %d", i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes are identical.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// ComputeStrides returns row-major strides for the shape.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	stride := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= s[i]
	}
	return strides
}

// BroadcastShapes computes the NumPy-style broadcast shape of a and b.
// Shapes are aligned from the right; a dimension of 1 stretches to match.
// Returns the output shape and whether any stretching is required.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	ndim := len(a)
	if len(b) > ndim {
		ndim = len(b)
	}

	out := make(Shape, ndim)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < ndim; i++ {
		ad, bd := 1, 1
		if idx := len(a) - ndim + i; idx >= 0 {
			ad = a[idx]
		}
		if idx := len(b) - ndim + i; idx >= 0 {
			bd = b[idx]
		}

		switch {
		case ad == bd:
			out[i] = ad
		case ad == 1:
			out[i] = bd
			needsBroadcast = true
		case bd == 1:
			out[i] = ad
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("shapes %v and %v are not broadcastable", a, b)
		}
	}

	return out, needsBroadcast, nil
}
