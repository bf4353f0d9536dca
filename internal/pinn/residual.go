package pinn

import (
	"fmt"

	"github.com/pinn-ml/pinn/internal/autodiff"
	"github.com/pinn-ml/pinn/internal/nn"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// PDEResidual evaluates the residual of du/dx - 2*du/dt - u = 0 at a
// batch of collocation points xt of shape [n, 2], returning [n, 1].
//
// The input derivatives come from a backward pass through the model.
// With createGraph, that backward pass is recorded on the tape, making
// the residual differentiable with respect to the model parameters —
// which is what training needs. Without it the residual is evaluation
// only.
//
// The tape must be recording when this is called, otherwise there is
// no graph connecting u to xt and the input gradient is missing.
func PDEResidual[B autodiff.BackwardCapable](model nn.Module[B], xt *tensor.Tensor[float32, B], backend B, createGraph bool) (*tensor.Tensor[float32, B], error) {
	n := xt.Shape()[0]

	u := model.Forward(xt)

	seed := tensor.Ones[float32, B](u.Shape(), backend)
	grads := backend.GetTape().Backward(u.Raw(), seed.Raw(), backend, createGraph)

	rawGrad, ok := grads[xt.Raw()]
	if !ok {
		return nil, fmt.Errorf("no input gradient: model output does not depend on the collocation points (is the tape recording?)")
	}
	inputGrad := tensor.New[float32, B](rawGrad, backend) // [n, 2]: (du/dx, du/dt) rows

	// Column selectors keep the du/dx and du/dt extraction on the tape;
	// slicing the raw buffer would detach it.
	selX, err := tensor.FromSlice([]float32{1, 0}, tensor.Shape{2, 1}, backend)
	if err != nil {
		return nil, err
	}
	selT, err := tensor.FromSlice([]float32{0, 1}, tensor.Shape{2, 1}, backend)
	if err != nil {
		return nil, err
	}

	ux := inputGrad.MatMul(selX) // [n, 1]
	ut := inputGrad.MatMul(selT) // [n, 1]

	residual := ux.Sub(ut.MulScalar(2)).Sub(u)
	if !residual.Shape().Equal(tensor.Shape{n, 1}) {
		return nil, fmt.Errorf("unexpected residual shape %v", residual.Shape())
	}
	return residual, nil
}

// BoundaryResidual evaluates u(x, t_lo) - target at boundary points,
// returning [n, 1]. Targets come from Sampler.Boundary.
func BoundaryResidual[B tensor.Backend](model nn.Module[B], points, targets *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return model.Forward(points).Sub(targets)
}

// MeanSquare reduces an [n, 1] residual to its mean squared value as a
// single-element tensor, staying on the tape.
func MeanSquare[B tensor.Backend](r *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return r.Mul(r).MeanDim(0, false)
}
