package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinn-ml/pinn/internal/autodiff"
	"github.com/pinn-ml/pinn/internal/backend/cpu"
	"github.com/pinn-ml/pinn/internal/tensor"
)

type Backend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func newBackend() Backend {
	return autodiff.New(cpu.New())
}

func fromSlice32(t *testing.T, backend Backend, data []float32, shape tensor.Shape) *tensor.Tensor[float32, Backend] {
	t.Helper()
	out, err := tensor.FromSlice[float32, Backend](data, shape, backend)
	require.NoError(t, err)
	return out
}

func TestDecoratorWrapsInnerBackend(t *testing.T) {
	backend := newBackend()

	assert.Equal(t, "Autodiff(CPU)", backend.Name())
	assert.Equal(t, "CPU", backend.Inner().Name())
	assert.Equal(t, backend.Inner().Device(), backend.Device())
}

func TestAddBackward(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	x := fromSlice32(t, backend, []float32{1, 2, 3}, tensor.Shape{3})
	y := fromSlice32(t, backend, []float32{10, 20, 30}, tensor.Shape{3})
	z := x.Add(y)

	grads := autodiff.Backward(z, false)

	require.Contains(t, grads, x.Raw())
	require.Contains(t, grads, y.Raw())
	assert.Equal(t, []float32{1, 1, 1}, grads[x.Raw()].AsFloat32())
	assert.Equal(t, []float32{1, 1, 1}, grads[y.Raw()].AsFloat32())
}

func TestMulBackward(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	x := fromSlice32(t, backend, []float32{1, 2, 3}, tensor.Shape{3})
	y := fromSlice32(t, backend, []float32{4, 5, 6}, tensor.Shape{3})
	z := x.Mul(y)

	grads := autodiff.Backward(z, false)

	assert.Equal(t, []float32{4, 5, 6}, grads[x.Raw()].AsFloat32())
	assert.Equal(t, []float32{1, 2, 3}, grads[y.Raw()].AsFloat32())
}

func TestSquareBackward(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	// Same tensor on both sides: gradients must accumulate to 2x.
	x := fromSlice32(t, backend, []float32{1, -2, 3}, tensor.Shape{3})
	z := x.Mul(x)

	grads := autodiff.Backward(z, false)
	assert.Equal(t, []float32{2, -4, 6}, grads[x.Raw()].AsFloat32())
}

func TestBroadcastAddBackward(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	x := fromSlice32(t, backend, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	bias := fromSlice32(t, backend, []float32{10, 20, 30}, tensor.Shape{1, 3})
	z := x.Add(bias)

	grads := autodiff.Backward(z, false)

	biasGrad := grads[bias.Raw()]
	require.NotNil(t, biasGrad)
	assert.Equal(t, tensor.Shape{1, 3}, biasGrad.Shape())
	assert.Equal(t, []float32{2, 2, 2}, biasGrad.AsFloat32())
}

func TestMatMulBackward(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	a := fromSlice32(t, backend, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice32(t, backend, []float32{5, 6, 7, 8}, tensor.Shape{2, 2})
	z := a.MatMul(b)

	grads := autodiff.Backward(z, false)

	// dz/da = ones @ b^T, dz/db = a^T @ ones
	assert.Equal(t, []float32{11, 15, 11, 15}, grads[a.Raw()].AsFloat32())
	assert.Equal(t, []float32{4, 4, 6, 6}, grads[b.Raw()].AsFloat32())
}

func TestTanhBackward(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	x := fromSlice32(t, backend, []float32{0}, tensor.Shape{1})
	z := x.Tanh()

	grads := autodiff.Backward(z, false)
	// d tanh/dx at 0 is 1.
	assert.InDelta(t, 1.0, float64(grads[x.Raw()].AsFloat32()[0]), 1e-6)
}

func TestMeanDimBackward(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	x := fromSlice32(t, backend, []float32{1, 2, 3, 4}, tensor.Shape{4, 1})
	z := x.MeanDim(0, false)

	grads := autodiff.Backward(z, false)

	xGrad := grads[x.Raw()]
	require.NotNil(t, xGrad)
	assert.Equal(t, tensor.Shape{4, 1}, xGrad.Shape())
	for _, v := range xGrad.AsFloat32() {
		assert.InDelta(t, 0.25, float64(v), 1e-6)
	}
}

func TestChainedBackward(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	// z = mean(tanh(x) * x) over 1 element: dz/dx = tanh(x) + x*(1-tanh(x)^2)
	x := fromSlice32(t, backend, []float32{0.5}, tensor.Shape{1})
	z := x.Tanh().Mul(x).MeanDim(0, false)

	grads := autodiff.Backward(z, false)

	th := float64(0.46211715726)
	want := th + 0.5*(1-th*th)
	assert.InDelta(t, want, float64(grads[x.Raw()].AsFloat32()[0]), 1e-5)
}

func TestBackwardWithoutCreateGraphKeepsTapeSize(t *testing.T) {
	backend := newBackend()
	tape := backend.Tape()
	tape.StartRecording()

	x := fromSlice32(t, backend, []float32{1, 2}, tensor.Shape{2})
	z := x.Mul(x)

	before := tape.NumOperations()
	autodiff.Backward(z, false)
	assert.Equal(t, before, tape.NumOperations(), "plain backward must not record")
	assert.True(t, tape.IsRecording(), "recording state must be restored")
}

func TestBackwardWithCreateGraphRecords(t *testing.T) {
	backend := newBackend()
	tape := backend.Tape()
	tape.StartRecording()

	x := fromSlice32(t, backend, []float32{1, 2}, tensor.Shape{2})
	z := x.Mul(x)

	before := tape.NumOperations()
	autodiff.Backward(z, true)
	assert.Greater(t, tape.NumOperations(), before, "create-graph backward must land on the tape")
}

func TestUnreachableTensorHasNoGradient(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	x := fromSlice32(t, backend, []float32{1}, tensor.Shape{1})
	y := fromSlice32(t, backend, []float32{2}, tensor.Shape{1})
	z := x.MulScalar(3)
	_ = y.MulScalar(5) // separate graph

	grads := autodiff.Backward(z, false)
	assert.Contains(t, grads, x.Raw())
	assert.NotContains(t, grads, y.Raw())
}

func TestRecordedOperandsSurviveLaterOps(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	x := fromSlice32(t, backend, []float32{1, 2}, tensor.Shape{2})
	y := fromSlice32(t, backend, []float32{3, 4}, tensor.Shape{2})
	z := x.Add(y)

	// Another op with z on the left must not overwrite z's buffer: the
	// tape still needs z's value if an op saved it.
	w := z.Add(y)

	assert.Equal(t, []float32{4, 6}, z.Raw().AsFloat32())
	assert.Equal(t, []float32{7, 10}, w.Raw().AsFloat32())
	assert.NotSame(t, z.Raw(), w.Raw())
}
