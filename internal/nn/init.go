package nn

import (
	"math"
	"math/rand"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// TanhGain is the recommended Xavier gain for tanh activations.
const TanhGain = 5.0 / 3.0

// XavierUniform initializes a weight tensor with Xavier (Glorot)
// uniform initialization: U(-bound, bound) where
// bound = gain * sqrt(6 / (fanIn + fanOut)).
//
// The shape is [fanOut, fanIn]. All randomness comes from rng, so the
// same seed yields the same weights.
func XavierUniform[B tensor.Backend](shape tensor.Shape, gain float64, rng *rand.Rand, backend B) *tensor.Tensor[float32, B] {
	fanOut, fanIn := shape[0], shape[1]
	bound := gain * math.Sqrt(6.0/float64(fanIn+fanOut))

	t := tensor.Zeros[float32, B](shape, backend)
	data := t.Data()
	for i := range data {
		data[i] = float32((rng.Float64()*2 - 1) * bound)
	}
	return t
}
