package autodiff

import (
	"github.com/pinn-ml/pinn/internal/autodiff/ops"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// GradientTape records operations during the forward pass and replays
// them in reverse to compute gradients.
type GradientTape struct {
	operations []ops.Operation
	recording  bool
}

// NewGradientTape creates an empty, non-recording tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		operations: make([]ops.Operation, 0, 64),
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording reports whether the tape is recording.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record appends an operation if recording is enabled.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// NumOperations returns the number of recorded operations.
func (t *GradientTape) NumOperations() int {
	return len(t.operations)
}

// Clear removes all recorded operations.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
}

// Backward runs reverse-mode differentiation from root, seeded with the
// given output gradient, and returns accumulated gradients keyed by
// tensor identity.
//
// With createGraph, the backward computations are themselves recorded
// on the tape: the returned gradients are then differentiable, which is
// how second derivatives are obtained. Without it, recording is paused
// for the duration of the pass.
//
// Tensors unreachable from root have no entry in the result.
func (t *GradientTape) Backward(root, seed *tensor.RawTensor, backend tensor.Backend, createGraph bool) map[*tensor.RawTensor]*tensor.RawTensor {
	if !createGraph {
		wasRecording := t.recording
		t.recording = false
		defer func() { t.recording = wasRecording }()
	}

	// The tape grows while we walk it when createGraph is set; only
	// operations recorded before this pass participate.
	numOps := len(t.operations)

	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)
	grads[root] = seed

	for i := numOps - 1; i >= 0; i-- {
		op := t.operations[i]

		outputGrad, ok := grads[op.Output()]
		if !ok {
			continue
		}

		inputGrads := op.Backward(outputGrad, backend)
		for j, input := range op.Inputs() {
			grad := inputGrads[j]
			if grad == nil {
				continue
			}
			if existing, ok := grads[input]; ok {
				grads[input] = backend.Add(existing, grad)
			} else {
				grads[input] = grad
			}
		}
	}

	return grads
}
