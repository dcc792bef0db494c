package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/tensor"
)

func TestMaxPool2D_BasicForward(t *testing.T) {
	values := make([]float32, 16)
	for i := range values {
		values[i] = float32(i + 1)
	}
	input := array(t, values, 4, 4, 1)

	out, err := New().MaxPool2D(input, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2, 1}, out.Shape())
	assert.Equal(t, []float32{6, 8, 14, 16}, out.Buffer())
}

func TestMaxPool2D_ChannelsAndNegatives(t *testing.T) {
	// Channel 0 is 0..8, channel 1 is its negation.
	values := make([]float32, 0, 18)
	for i := range 9 {
		values = append(values, float32(i), -float32(i))
	}
	input := array(t, values, 3, 3, 2)

	out, err := New().MaxPool2D(input, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2, 2}, out.Shape())
	assert.Equal(t, []float32{4, 0, 5, -1, 7, -3, 8, -4}, out.Buffer())
}

func TestMaxPool2D_DefaultStrideDropsPartialWindows(t *testing.T) {
	input := arange(t, 25, 5, 5, 1)

	out, err := New().MaxPool2D(input, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2, 1}, out.Shape())
	assert.Equal(t, []float32{6, 8, 16, 18}, out.Buffer())

	out, err = New().MaxPool2D(input, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{0, 0, 1}, out.Shape())
}

func TestMaxPool2D_ParallelMatchesSequential(t *testing.T) {
	input, err := tensor.Randn(tensor.Shape{33, 17, 3}, tensor.NewSource(3))
	require.NoError(t, err)

	want, err := eager().MaxPool2D(input, 3, 2)
	require.NoError(t, err)
	got, err := New().MaxPool2D(input, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, want.Buffer(), got.Buffer())
}

func TestMaxPool2D_Errors(t *testing.T) {
	_, err := New().MaxPool2D(arange(t, 4, 2, 2), 2, 2)
	assert.ErrorIs(t, err, tensor.ErrShape)

	_, err = New().MaxPool2D(arange(t, 4, 2, 2, 1), 0, 1)
	assert.ErrorIs(t, err, tensor.ErrShape)
}
