package pinn

import (
	"math"
	"math/rand"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// BoundaryValue is the prescribed solution on the t = t_lo boundary:
// u(x, t_lo) = 6 * exp(-3x).
func BoundaryValue(x float32) float32 {
	return float32(6 * math.Exp(-3*float64(x)))
}

// Sampler draws fresh i.i.d. uniform collocation points from a domain.
// Every batch is freshly sampled; nothing is cached or reused. All
// randomness comes from the explicit rng, so a fixed seed reproduces
// the exact point sequence.
type Sampler[B tensor.Backend] struct {
	domain  Domain
	rng     *rand.Rand
	backend B
}

// NewSampler creates a sampler over the given domain.
func NewSampler[B tensor.Backend](domain Domain, rng *rand.Rand, backend B) *Sampler[B] {
	return &Sampler[B]{
		domain:  domain,
		rng:     rng,
		backend: backend,
	}
}

// Domain returns the sampling domain.
func (s *Sampler[B]) Domain() Domain {
	return s.domain
}

// Interior samples n points uniformly from the domain interior and
// returns them as an [n, 2] tensor of (x, t) rows.
func (s *Sampler[B]) Interior(n int) *tensor.Tensor[float32, B] {
	points := tensor.Zeros[float32, B](tensor.Shape{n, 2}, s.backend)
	data := points.Data()
	for i := 0; i < n; i++ {
		data[2*i] = s.uniform(s.domain.X)
		data[2*i+1] = s.uniform(s.domain.T)
	}
	return points
}

// Boundary samples n points on the t = t_lo boundary. It returns the
// [n, 2] points, with the t coordinate exactly t_lo, and the [n, 1]
// boundary targets u(x, t_lo).
func (s *Sampler[B]) Boundary(n int) (points, targets *tensor.Tensor[float32, B]) {
	points = tensor.Zeros[float32, B](tensor.Shape{n, 2}, s.backend)
	targets = tensor.Zeros[float32, B](tensor.Shape{n, 1}, s.backend)

	pd := points.Data()
	td := targets.Data()
	for i := 0; i < n; i++ {
		x := s.uniform(s.domain.X)
		pd[2*i] = x
		pd[2*i+1] = s.domain.T.Lo
		td[i] = BoundaryValue(x)
	}
	return points, targets
}

func (s *Sampler[B]) uniform(iv Interval) float32 {
	return iv.Lo + float32(s.rng.Float64())*iv.Width()
}
