package ndarray_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray"
)

func arange(t *testing.T, n int, shape ...int) *ndarray.NdArray {
	t.Helper()
	x, err := ndarray.Arange(0, n, 1)
	require.NoError(t, err)
	if len(shape) == 0 {
		return x
	}
	x, err = x.Reshape(shape...)
	require.NoError(t, err)
	return x
}

// consistent checks that the buffer length matches the shape.
func consistent(t *testing.T, x *ndarray.NdArray) {
	t.Helper()
	assert.Equal(t, x.Shape().NumElements(), len(x.Buffer()), "shape %v", x.Shape())
	assert.Equal(t, x.Shape().Strides(), x.Strides())
}

func TestReshapeInfersDimension(t *testing.T) {
	x, err := ndarray.From([]float32{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3}, nil)
	require.NoError(t, err)

	y, err := x.Reshape(3, -1)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3, 2}, y.Shape())
	assert.Equal(t, []int{2, 1}, y.Strides())
	assert.Equal(t, x.Buffer(), y.Buffer())
}

func TestTransposeIsInvolution(t *testing.T) {
	for _, shape := range [][]int{{6}, {2, 3}, {2, 3, 4}, {1, 2, 1, 3}} {
		n := ndarray.Shape(shape).NumElements()
		x := arange(t, n, shape...)
		y := x.Transpose().Transpose()
		assert.Equal(t, x.Buffer(), y.Buffer())
		assert.Equal(t, x.Shape(), y.Shape())
	}
}

func TestPermute(t *testing.T) {
	x := arange(t, 16, 2, 4, 2)
	y, err := x.Permute(2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 2, 4}, y.Shape())
	want := []float32{0, 2, 4, 6, 8, 10, 12, 14, 1, 3, 5, 7, 9, 11, 13, 15}
	if diff := cmp.Diff(want, y.Buffer()); diff != "" {
		t.Errorf("permute buffer mismatch (-want +got):\n%s", diff)
	}

	_, err = x.Permute(0, 1)
	require.ErrorIs(t, err, ndarray.ErrIndex)
}

func TestSliceAndSet(t *testing.T) {
	x := arange(t, 12, 2, 3, 2)

	s, err := x.Slice(1)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3, 2}, s.Shape())
	assert.Equal(t, []float32{6, 7, 8, 9, 10, 11}, s.Buffer())

	zeros, err := ndarray.Zeros(ndarray.Shape{3, 2})
	require.NoError(t, err)
	y, err := x.Set([]int{0}, zeros)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0, 6, 7, 8, 9, 10, 11}, y.Buffer())
	assert.Equal(t, float32(1), x.Buffer()[1], "Set must not modify the receiver")

	_, err = x.Slice(2)
	require.ErrorIs(t, err, ndarray.ErrIndex)
	_, err = x.Set([]int{0}, arange(t, 5))
	require.ErrorIs(t, err, ndarray.ErrShape)
}

func TestSoftmaxDefaultAxis(t *testing.T) {
	x, err := ndarray.From([]float32{1, 2, 3, 4}, nil, nil)
	require.NoError(t, err)

	y, err := x.Softmax()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0.0321, 0.0871, 0.2369, 0.6439}, y.Buffer(), 1e-4)
	assert.InDelta(t, 1, y.Sum(), 1e-6)

	_, err = x.Softmax(0, 1)
	require.ErrorIs(t, err, ndarray.ErrIndex)
}

func TestConcat(t *testing.T) {
	a, err := ndarray.Ones(ndarray.Shape{2, 3})
	require.NoError(t, err)
	b, err := ndarray.Zeros(ndarray.Shape{2, 3})
	require.NoError(t, err)

	c, err := ndarray.Concat(a, b)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{4, 3}, c.Shape())
	assert.Equal(t, []float32{1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0}, c.Buffer())
}

func TestIm2Col(t *testing.T) {
	x := arange(t, 15, 5, 3)

	cols, err := x.Im2Col([]int{3}, 1, []int{0}, 0)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3, 9}, cols.Shape())
	first, err := cols.Slice(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2, 3, 4, 5, 6, 7, 8}, first.Buffer())
}

func TestMatMul(t *testing.T) {
	a, err := ndarray.From([]float32{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3}, nil)
	require.NoError(t, err)
	b, err := a.Reshape(3, -1)
	require.NoError(t, err)

	c, err := a.MatMul(b)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 2}, c.Shape())
	assert.Equal(t, []float32{22, 28, 49, 64}, c.Buffer())
}

func TestFlattenIdempotent(t *testing.T) {
	x := arange(t, 5)
	y := x.Flatten()
	assert.Equal(t, x.Buffer(), y.Buffer())
	assert.Equal(t, x.Shape(), y.Shape())

	z := arange(t, 6, 2, 3).Flatten()
	assert.Equal(t, ndarray.Shape{6}, z.Shape())
}

func TestAddBroadcast(t *testing.T) {
	a, err := ndarray.Zeros(ndarray.Shape{2, 2, 2})
	require.NoError(t, err)

	c, err := a.Add(arange(t, 4, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 2, 2}, c.Shape())
	assert.Equal(t, []float32{0, 1, 2, 3, 0, 1, 2, 3}, c.Buffer())

	_, err = a.Add(arange(t, 3))
	require.ErrorIs(t, err, ndarray.ErrNotImplemented)
	_, err = a.Sub(arange(t, 4))
	require.ErrorIs(t, err, ndarray.ErrShape)
}

// Every operation keeps len(buffer) == product(shape).
func TestShapeInvariant(t *testing.T) {
	x := arange(t, 24, 2, 3, 4)
	w := arange(t, 4*5, 4, 5)
	image := arange(t, 5*5*2, 5, 5, 2)
	kernel := arange(t, 3*3*2*4, 3, 3, 2, 4)

	ops := map[string]func() (*ndarray.NdArray, error){
		"reshape":   func() (*ndarray.NdArray, error) { return x.Reshape(4, -1) },
		"permute":   func() (*ndarray.NdArray, error) { return x.Permute(1, 2, 0) },
		"transpose": func() (*ndarray.NdArray, error) { return x.Transpose(), nil },
		"flatten":   func() (*ndarray.NdArray, error) { return x.Flatten(), nil },
		"slice":     func() (*ndarray.NdArray, error) { return x.Slice(1, 2) },
		"concat":    func() (*ndarray.NdArray, error) { return ndarray.Concat(x, x) },
		"add":       func() (*ndarray.NdArray, error) { return x.Add(arange(t, 4)) },
		"dot":       func() (*ndarray.NdArray, error) { return x.Dot(x) },
		"exp":       func() (*ndarray.NdArray, error) { return x.Exp(), nil },
		"softmax":   func() (*ndarray.NdArray, error) { return x.Softmax(1) },
		"padx":      func() (*ndarray.NdArray, error) { return x.PadX1D(2, 0) },
		"pady":      func() (*ndarray.NdArray, error) { return x.PadY2D(1, 0) },
		"padding":   func() (*ndarray.NdArray, error) { return x.Padding1D(0, 1, 1) },
		"im2col":    func() (*ndarray.NdArray, error) { return x.Im2Col([]int{2, 2}, 1, nil, 0) },
		"matmul": func() (*ndarray.NdArray, error) {
			m, err := x.Reshape(6, 4)
			if err != nil {
				return nil, err
			}
			return m.MatMul(w)
		},
		"conv2d":    func() (*ndarray.NdArray, error) { return image.Conv2D(kernel, 1, 1) },
		"maxpool2d": func() (*ndarray.NdArray, error) { return image.MaxPool2D(2, 0) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			y, err := op()
			require.NoError(t, err)
			consistent(t, y)
		})
	}
}
