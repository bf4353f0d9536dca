// Package pinn contains the physics-informed pieces: the space-time
// domain, collocation point sampling, and the PDE and boundary residual
// evaluators for
//
//	du/dx - 2*du/dt - u = 0,  u(x, 0) = 6*exp(-3x)
package pinn

import (
	"fmt"
	"math"
)

// Interval is a closed range [Lo, Hi] on one axis.
type Interval struct {
	Lo float32
	Hi float32
}

// Validate checks that the interval is finite and non-degenerate.
func (iv Interval) Validate() error {
	if math.IsNaN(float64(iv.Lo)) || math.IsInf(float64(iv.Lo), 0) ||
		math.IsNaN(float64(iv.Hi)) || math.IsInf(float64(iv.Hi), 0) {
		return fmt.Errorf("interval bounds must be finite, got [%v, %v]", iv.Lo, iv.Hi)
	}
	if iv.Lo >= iv.Hi {
		return fmt.Errorf("interval lower bound must be below upper bound, got [%v, %v]", iv.Lo, iv.Hi)
	}
	return nil
}

// Width returns Hi - Lo.
func (iv Interval) Width() float32 {
	return iv.Hi - iv.Lo
}

// Domain is the rectangular space-time region collocation points are
// drawn from. The boundary condition is imposed at t = T.Lo.
type Domain struct {
	X Interval
	T Interval
}

// NewDomain validates and returns a domain.
func NewDomain(x, t Interval) (Domain, error) {
	if err := x.Validate(); err != nil {
		return Domain{}, fmt.Errorf("x interval: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Domain{}, fmt.Errorf("t interval: %w", err)
	}
	return Domain{X: x, T: t}, nil
}
