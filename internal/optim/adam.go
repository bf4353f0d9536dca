package optim

import (
	"math"

	"github.com/pinn-ml/pinn/internal/nn"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// Adam implements the Adam optimizer (Kingma & Ba, 2015) with bias
// correction.
type Adam[B tensor.Backend] struct {
	params []*nn.Parameter[B]

	lr    float32
	beta1 float32
	beta2 float32
	eps   float32

	step int
	m    [][]float32 // first moment per parameter
	v    [][]float32 // second moment per parameter
}

// NewAdam creates an Adam optimizer with the standard defaults
// (beta1=0.9, beta2=0.999, eps=1e-8).
func NewAdam[B tensor.Backend](params []*nn.Parameter[B], lr float32) *Adam[B] {
	m := make([][]float32, len(params))
	v := make([][]float32, len(params))
	for i, p := range params {
		n := p.Tensor().NumElements()
		m[i] = make([]float32, n)
		v[i] = make([]float32, n)
	}

	return &Adam[B]{
		params: params,
		lr:     lr,
		beta1:  0.9,
		beta2:  0.999,
		eps:    1e-8,
		m:      m,
		v:      v,
	}
}

// Step applies one Adam update to every parameter with a gradient.
func (a *Adam[B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	a.step++

	bc1 := 1 - float32(math.Pow(float64(a.beta1), float64(a.step)))
	bc2 := 1 - float32(math.Pow(float64(a.beta2), float64(a.step)))

	for i, p := range a.params {
		grad, ok := grads[p.Tensor().Raw()]
		if !ok {
			continue
		}

		g := grad.AsFloat32()
		w := p.Tensor().Data()
		m, v := a.m[i], a.v[i]

		for j := range w {
			m[j] = a.beta1*m[j] + (1-a.beta1)*g[j]
			v[j] = a.beta2*v[j] + (1-a.beta2)*g[j]*g[j]

			mHat := m[j] / bc1
			vHat := v[j] / bc2

			w[j] -= a.lr * mHat / (float32(math.Sqrt(float64(vHat))) + a.eps)
		}
	}
}

// LearningRate returns the learning rate.
func (a *Adam[B]) LearningRate() float32 {
	return a.lr
}
