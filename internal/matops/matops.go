// Package matops implements dense matrix multiplication once for every
// numeric element type.
package matops

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Number is the set of element types MatMul accepts.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// Meta describes the layout of a flat buffer handed across the binding
// boundary.
type Meta struct {
	Shape   []int `json:"shape" yaml:"shape"`
	Strides []int `json:"strides,omitempty" yaml:"strides,omitempty"`
}

// Validate checks that Meta describes a contiguous buffer of n elements.
// Missing strides are filled in with the canonical strides.
func (m *Meta) Validate(n int) error {
	shape := tensor.Shape(m.Shape)
	if err := shape.Validate(); err != nil {
		return err
	}
	if shape.NumElements() != n {
		return tensor.ShapeErrorf("meta: shape %v describes %d elements, buffer has %d", shape, shape.NumElements(), n)
	}

	canonical := shape.Strides()
	if m.Strides == nil {
		m.Strides = canonical
		return nil
	}
	if len(m.Strides) != len(canonical) {
		return tensor.ShapeErrorf("meta: %d strides for %dD shape", len(m.Strides), len(shape))
	}
	for i := range canonical {
		if m.Strides[i] != canonical[i] {
			return tensor.ShapeErrorf("meta: strides %v are not contiguous for shape %v", m.Strides, shape)
		}
	}
	return nil
}

// Dims checks that a and b can be multiplied and returns m, k and n for
// (m, k) @ (k, n). Rank-1 operands are treated as (1, k) @ (k, 1).
func Dims(aShape, bShape []int) (m, k, n int, err error) {
	if len(aShape) != len(bShape) || len(aShape) > 2 || len(aShape) == 0 {
		return 0, 0, 0, tensor.NotImplementedf("matmul: only equal-rank 1D or 2D operands supported, got %dD and %dD",
			len(aShape), len(bShape))
	}

	if len(aShape) == 1 {
		if aShape[0] != bShape[0] {
			return 0, 0, 0, tensor.ShapeErrorf("matmul: vector lengths differ: %d vs %d", aShape[0], bShape[0])
		}
		return 1, aShape[0], 1, nil
	}

	m, k = aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		return 0, 0, 0, tensor.ShapeErrorf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}
	return m, k, n, nil
}

// MatMul multiplies two row-major matrices described by am and bm.
// C[i,j] = sum_k A[i,k] * B[k,j], accumulated in k order.
func MatMul[T Number](a []T, am Meta, b []T, bm Meta) ([]T, error) {
	if err := am.Validate(len(a)); err != nil {
		return nil, err
	}
	if err := bm.Validate(len(b)); err != nil {
		return nil, err
	}
	m, k, n, err := Dims(am.Shape, bm.Shape)
	if err != nil {
		return nil, err
	}

	c := make([]T, m*n)
	for i := 0; i < m; i++ {
		Row(c, a, b, k, n, i)
	}
	return c, nil
}

// Row computes row i of C = A @ B into c. Rows are independent, so callers
// may compute them concurrently.
func Row[T Number](c, a, b []T, k, n, i int) {
	aRow := a[i*k : (i+1)*k]
	cRow := c[i*n : (i+1)*n]
	for j := 0; j < n; j++ {
		var sum T
		for kIdx, av := range aRow {
			sum += av * b[kIdx*n+j]
		}
		cRow[j] = sum
	}
}
