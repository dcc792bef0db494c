package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray"
)

func TestMatMulRaw(t *testing.T) {
	c, err := ndarray.MatMulRaw(
		[]int32{1, 2, 3, 4, 5, 6}, ndarray.Meta{Shape: []int{2, 3}},
		[]int32{1, 2, 3, 4, 5, 6}, ndarray.Meta{Shape: []int{3, 2}, Strides: []int{2, 1}},
	)
	require.NoError(t, err)
	assert.Equal(t, []int32{22, 28, 49, 64}, c)

	u, err := ndarray.MatMulRaw([]uint16{2, 3}, ndarray.Meta{Shape: []int{2}}, []uint16{4, 5}, ndarray.Meta{Shape: []int{2}})
	require.NoError(t, err)
	assert.Equal(t, []uint16{23}, u)
}

func TestMatMulRaw_Float64MatchesGonum(t *testing.T) {
	a := []float64{0.5, -1, 2, 3.25, 0, 1.5, -2, 4}
	b := []float64{1, 2, 3, -1, 0.5, 0.25, 2, -3, 1, 0, 1, 1}

	got, err := ndarray.MatMulRaw(a, ndarray.Meta{Shape: []int{2, 4}}, b, ndarray.Meta{Shape: []int{4, 3}})
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(mat.NewDense(2, 4, a), mat.NewDense(4, 3, b))
	assert.InDeltaSlice(t, want.RawMatrix().Data, got, 1e-12)
}

func TestMatMulRaw_Errors(t *testing.T) {
	_, err := ndarray.MatMulRaw([]float32{1, 2}, ndarray.Meta{Shape: []int{3}}, []float32{1, 2}, ndarray.Meta{Shape: []int{2}})
	require.ErrorIs(t, err, ndarray.ErrShape)

	_, err = ndarray.MatMulRaw([]int8{1, 2}, ndarray.Meta{Shape: []int{1, 2}, Strides: []int{1, 1}}, []int8{1, 2}, ndarray.Meta{Shape: []int{2, 1}})
	require.ErrorIs(t, err, ndarray.ErrShape)

	_, err = ndarray.MatMulRaw(make([]int64, 8), ndarray.Meta{Shape: []int{2, 2, 2}}, make([]int64, 8), ndarray.Meta{Shape: []int{2, 2, 2}})
	require.ErrorIs(t, err, ndarray.ErrNotImplemented)
}
