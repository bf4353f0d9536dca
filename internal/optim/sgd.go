package optim

import (
	"github.com/pinn-ml/pinn/internal/nn"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
type SGD[B tensor.Backend] struct {
	params   []*nn.Parameter[B]
	lr       float32
	momentum float32
	velocity [][]float32
}

// NewSGD creates an SGD optimizer. A momentum of 0 gives plain
// gradient descent.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], lr, momentum float32) *SGD[B] {
	velocity := make([][]float32, len(params))
	for i, p := range params {
		velocity[i] = make([]float32, p.Tensor().NumElements())
	}

	return &SGD[B]{
		params:   params,
		lr:       lr,
		momentum: momentum,
		velocity: velocity,
	}
}

// Step applies one SGD update to every parameter with a gradient.
func (s *SGD[B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for i, p := range s.params {
		grad, ok := grads[p.Tensor().Raw()]
		if !ok {
			continue
		}

		g := grad.AsFloat32()
		w := p.Tensor().Data()
		vel := s.velocity[i]

		for j := range w {
			if s.momentum != 0 {
				vel[j] = s.momentum*vel[j] + g[j]
				w[j] -= s.lr * vel[j]
			} else {
				w[j] -= s.lr * g[j]
			}
		}
	}
}

// LearningRate returns the learning rate.
func (s *SGD[B]) LearningRate() float32 {
	return s.lr
}
