package pinn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinn-ml/pinn/internal/autodiff"
	"github.com/pinn-ml/pinn/internal/backend/cpu"
	"github.com/pinn-ml/pinn/internal/pinn"
)

type Backend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func newBackend() Backend {
	return autodiff.New(cpu.New())
}

func testDomain(t *testing.T) pinn.Domain {
	t.Helper()
	domain, err := pinn.NewDomain(
		pinn.Interval{Lo: 0, Hi: 2},
		pinn.Interval{Lo: 0, Hi: 1},
	)
	require.NoError(t, err)
	return domain
}

func TestIntervalValidate(t *testing.T) {
	assert.NoError(t, pinn.Interval{Lo: -1, Hi: 1}.Validate())
	assert.Error(t, pinn.Interval{Lo: 1, Hi: 1}.Validate())
	assert.Error(t, pinn.Interval{Lo: 2, Hi: -2}.Validate())
	assert.Error(t, pinn.Interval{Lo: float32(math.Inf(-1)), Hi: 0}.Validate())
	assert.Error(t, pinn.Interval{Lo: 0, Hi: float32(math.NaN())}.Validate())
}

func TestNewDomainPropagatesErrors(t *testing.T) {
	_, err := pinn.NewDomain(pinn.Interval{Lo: 1, Hi: 0}, pinn.Interval{Lo: 0, Hi: 1})
	assert.ErrorContains(t, err, "x interval")

	_, err = pinn.NewDomain(pinn.Interval{Lo: 0, Hi: 1}, pinn.Interval{Lo: 5, Hi: 5})
	assert.ErrorContains(t, err, "t interval")
}

func TestInteriorPointsWithinBounds(t *testing.T) {
	backend := newBackend()
	sampler := pinn.NewSampler(testDomain(t), rand.New(rand.NewSource(1)), backend)

	points := sampler.Interior(256)
	require.Equal(t, 256, points.Shape()[0])
	require.Equal(t, 2, points.Shape()[1])

	data := points.Data()
	for i := 0; i < 256; i++ {
		x, tt := data[2*i], data[2*i+1]
		assert.GreaterOrEqual(t, x, float32(0))
		assert.LessOrEqual(t, x, float32(2))
		assert.GreaterOrEqual(t, tt, float32(0))
		assert.LessOrEqual(t, tt, float32(1))
	}
}

func TestInteriorBatchesAreFresh(t *testing.T) {
	backend := newBackend()
	sampler := pinn.NewSampler(testDomain(t), rand.New(rand.NewSource(1)), backend)

	a := sampler.Interior(32)
	b := sampler.Interior(32)
	assert.NotEqual(t, a.Data(), b.Data(), "consecutive batches must be freshly sampled")
}

func TestBoundaryTimeIsExact(t *testing.T) {
	backend := newBackend()
	domain, err := pinn.NewDomain(
		pinn.Interval{Lo: 0, Hi: 2},
		pinn.Interval{Lo: 0.25, Hi: 1},
	)
	require.NoError(t, err)
	sampler := pinn.NewSampler(domain, rand.New(rand.NewSource(1)), backend)

	points, _ := sampler.Boundary(64)
	data := points.Data()
	for i := 0; i < 64; i++ {
		assert.Equal(t, float32(0.25), data[2*i+1], "t coordinate must be exactly t_lo")
	}
}

func TestBoundaryTargets(t *testing.T) {
	backend := newBackend()
	sampler := pinn.NewSampler(testDomain(t), rand.New(rand.NewSource(1)), backend)

	points, targets := sampler.Boundary(64)
	require.Equal(t, 64, targets.Shape()[0])
	require.Equal(t, 1, targets.Shape()[1])

	pd, td := points.Data(), targets.Data()
	for i := 0; i < 64; i++ {
		want := 6 * math.Exp(-3*float64(pd[2*i]))
		assert.InDelta(t, want, float64(td[i]), 1e-6)
	}
}

func TestSamplingSeedIdempotent(t *testing.T) {
	backend := newBackend()
	domain := testDomain(t)

	a := pinn.NewSampler(domain, rand.New(rand.NewSource(9)), backend)
	b := pinn.NewSampler(domain, rand.New(rand.NewSource(9)), backend)

	assert.Equal(t, a.Interior(16).Data(), b.Interior(16).Data())

	ap, at := a.Boundary(16)
	bp, bt := b.Boundary(16)
	assert.Equal(t, ap.Data(), bp.Data())
	assert.Equal(t, at.Data(), bt.Data())
}

func TestBoundaryOfFourScenario(t *testing.T) {
	backend := newBackend()
	sampler := pinn.NewSampler(testDomain(t), rand.New(rand.NewSource(1234)), backend)

	points, targets := sampler.Boundary(4)
	pd, td := points.Data(), targets.Data()
	for i := 0; i < 4; i++ {
		assert.Equal(t, float32(0), pd[2*i+1])
		assert.InDelta(t, 6*math.Exp(-3*float64(pd[2*i])), float64(td[i]), 1e-6)
	}
}

func TestBoundaryValue(t *testing.T) {
	assert.InDelta(t, 6.0, float64(pinn.BoundaryValue(0)), 1e-6)
	assert.InDelta(t, 6*math.Exp(-3), float64(pinn.BoundaryValue(1)), 1e-6)
}
