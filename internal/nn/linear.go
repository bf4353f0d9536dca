package nn

import (
	"fmt"
	"math/rand"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// Linear is a fully-connected layer: y = x @ W^T + b.
type Linear[B tensor.Backend] struct {
	weight      *Parameter[B] // [outFeatures, inFeatures]
	bias        *Parameter[B] // [outFeatures]
	inFeatures  int
	outFeatures int
}

// NewLinear creates a linear layer with Xavier-uniform weights (using
// the given gain) and zero biases.
func NewLinear[B tensor.Backend](name string, inFeatures, outFeatures int, gain float64, rng *rand.Rand, backend B) *Linear[B] {
	weight := XavierUniform(tensor.Shape{outFeatures, inFeatures}, gain, rng, backend)
	bias := tensor.Zeros[float32, B](tensor.Shape{outFeatures}, backend)

	return &Linear[B]{
		weight:      NewParameter(fmt.Sprintf("%s.weight", name), weight),
		bias:        NewParameter(fmt.Sprintf("%s.bias", name), bias),
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
	}
}

// Forward computes x @ W^T + b for x of shape [batch, inFeatures].
func (l *Linear[B]) Forward(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	y := x.MatMul(l.weight.Tensor().T())
	return y.Add(l.bias.Tensor().Reshape(1, l.outFeatures))
}

// Parameters returns the weight and bias.
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] { return l.weight }

// Bias returns the bias parameter.
func (l *Linear[B]) Bias() *Parameter[B] { return l.bias }
