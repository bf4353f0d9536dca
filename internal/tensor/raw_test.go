package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRawZeroInitialized(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	require.NoError(t, err)

	for _, v := range raw.AsFloat32() {
		assert.Equal(t, float32(0), v)
	}
	assert.Equal(t, 6, raw.NumElements())
}

func TestNewRawInvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{2, -1}, Float32, CPU)
	assert.Error(t, err)
}

func TestCloneSharesBuffer(t *testing.T) {
	raw, err := NewRaw(Shape{4}, Float32, CPU)
	require.NoError(t, err)
	assert.True(t, raw.IsUnique())

	clone := raw.Clone()
	assert.False(t, raw.IsUnique())
	assert.False(t, clone.IsUnique())

	// Same backing memory.
	raw.AsFloat32()[0] = 42
	assert.Equal(t, float32(42), clone.AsFloat32()[0])

	clone.Release()
	assert.True(t, raw.IsUnique())
}

func TestForceNonUnique(t *testing.T) {
	raw, err := NewRaw(Shape{4}, Float32, CPU)
	require.NoError(t, err)

	cleanup := raw.ForceNonUnique()
	assert.False(t, raw.IsUnique())
	cleanup()
	assert.True(t, raw.IsUnique())
}
