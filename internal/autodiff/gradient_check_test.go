package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/pinn-ml/pinn/internal/autodiff"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// TestGradientMatchesFiniteDifference checks the tape against a
// numerical gradient of f(x) = mean(x*tanh(x) + exp(x)), computed in
// float64 to keep the comparison tight.
func TestGradientMatchesFiniteDifference(t *testing.T) {
	point := []float64{0.3, -0.7, 1.2, 0.0}

	f := func(x []float64) float64 {
		sum := 0.0
		for _, v := range x {
			sum += v*math.Tanh(v) + math.Exp(v)
		}
		return sum / float64(len(x))
	}
	numerical := fd.Gradient(nil, f, point, nil)

	backend := newBackend()
	backend.Tape().StartRecording()

	x, err := tensor.FromSlice[float64, Backend](point, tensor.Shape{4}, backend)
	require.NoError(t, err)

	z := x.Mul(x.Tanh()).Add(x.Exp()).MeanDim(0, false)
	grads := autodiff.Backward(z, false)

	xGrad := grads[x.Raw()]
	require.NotNil(t, xGrad)
	for i, want := range numerical {
		assert.InDelta(t, want, xGrad.AsFloat64()[i], 1e-6, "component %d", i)
	}
}

// TestSecondOrderGradient differentiates a derivative: for y = x^3,
// the first backward (with the graph retained) yields g = 3x^2, and
// differentiating sum(g) yields 6x.
func TestSecondOrderGradient(t *testing.T) {
	backend := newBackend()
	tape := backend.Tape()
	tape.StartRecording()

	x := fromSlice32(t, backend, []float32{1, 2, 3}, tensor.Shape{3})
	y := x.Mul(x).Mul(x)

	firstGrads := autodiff.Backward(y, true)
	g := firstGrads[x.Raw()]
	require.NotNil(t, g)
	assert.InDeltaSlice(t, []float32{3, 12, 27}, g.AsFloat32(), 1e-4, "first derivative should be 3x^2")

	z := tensor.New[float32, Backend](g, backend).SumDim(0, false)
	secondGrads := autodiff.Backward(z, false)

	gx := secondGrads[x.Raw()]
	require.NotNil(t, gx, "second backward must reach x through the recorded gradient graph")
	assert.InDeltaSlice(t, []float32{6, 12, 18}, gx.AsFloat32(), 1e-4, "second derivative should be 6x")
}

// TestSecondOrderThroughTanh covers the activation actually used by
// the network: for y = tanh(x), d2y/dx2 = -2*tanh(x)*(1-tanh(x)^2).
func TestSecondOrderThroughTanh(t *testing.T) {
	backend := newBackend()
	tape := backend.Tape()
	tape.StartRecording()

	x := fromSlice32(t, backend, []float32{0.5, -1.0}, tensor.Shape{2})
	y := x.Tanh()

	firstGrads := autodiff.Backward(y, true)
	g := firstGrads[x.Raw()]
	require.NotNil(t, g)

	z := tensor.New[float32, Backend](g, backend).SumDim(0, false)
	secondGrads := autodiff.Backward(z, false)
	gx := secondGrads[x.Raw()]
	require.NotNil(t, gx)

	for i, v := range []float64{0.5, -1.0} {
		th := math.Tanh(v)
		want := -2 * th * (1 - th*th)
		assert.InDelta(t, want, float64(gx.AsFloat32()[i]), 1e-4, "component %d", i)
	}
}
