package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// array builds a test array; a missing shape means 1-D.
func array(t *testing.T, values []float32, shape ...int) *tensor.Array {
	t.Helper()
	var s tensor.Shape
	if len(shape) > 0 {
		s = tensor.Shape(shape)
	}
	a, err := tensor.From(values, s, nil)
	require.NoError(t, err)
	return a
}

// arange builds 0, 1, ..., n-1 in the given shape.
func arange(t *testing.T, n int, shape ...int) *tensor.Array {
	t.Helper()
	values := make([]float32, n)
	for i := range values {
		values[i] = float32(i)
	}
	return array(t, values, shape...)
}

// eager returns a backend that splits even tiny inputs across workers.
func eager() *CPUBackend {
	return NewWithConfig(Config{Parallel: parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}})
}

func TestNew(t *testing.T) {
	backend := New()
	require.Equal(t, "CPU", backend.Name())
	require.False(t, backend.Config().BLAS)
	require.Equal(t, parallel.DefaultConfig(), backend.Config().Parallel)
}

func TestInputsAreNotModified(t *testing.T) {
	backend := eager()
	a := arange(t, 6, 2, 3)
	b := arange(t, 3)
	before := a.Buffer()

	_, err := backend.Add(a, b)
	require.NoError(t, err)
	backend.Exp(a)
	_, err = backend.Softmax(a, 0)
	require.NoError(t, err)
	_, err = backend.PadX1D(a, 2, 1)
	require.NoError(t, err)

	require.Equal(t, before, a.Buffer())
}
