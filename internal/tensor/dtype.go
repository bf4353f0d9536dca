package tensor

// DataType is the runtime type tag of a tensor's elements.
type DataType int

// Supported element types. The training stack is float32 end to end;
// float64 exists for high-precision reference computations in tests.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the element size in bytes.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable type name.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DType constrains the Go element types a Tensor may carry.
type DType interface {
	float32 | float64
}

// inferDataType maps a Go type parameter to its runtime DataType.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}
