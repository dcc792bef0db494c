package tensor

import (
	"fmt"
	"iter"
	"math"
)

const maxInt = math.MaxInt

// Shape represents the dimensions of an array, outer to inner.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative and that the product of the
// non-zero dimensions fits in an int. Zero-sized axes are allowed.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim < 0 {
			return ShapeErrorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
		if dim == 0 {
			continue
		}
		if n > maxInt/dim {
			return ShapeErrorf("shape %v: element count overflows int", []int(s))
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates row-major strides for the shape.
// stride[i] = product of all dimensions after i; the last stride is 1.
func (s Shape) Strides() []int {
	return CanonicalStrides(s)
}

// String formats the shape as [d0 d1 ...].
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}

// CanonicalStrides returns row-major strides for shape. An empty shape yields
// empty strides.
func CanonicalStrides(shape []int) []int {
	strides := make([]int, len(shape))
	if len(shape) == 0 {
		return strides
	}

	strides[len(shape)-1] = 1
	for i := len(shape) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}
	return strides
}

// Offset converts a multi-index into a flat buffer offset.
func Offset(index, strides []int) (int, error) {
	if len(index) != len(strides) {
		return 0, IndexErrorf("offset: index has %d axes, strides have %d", len(index), len(strides))
	}
	offset := 0
	for axis, i := range index {
		offset += i * strides[axis]
	}
	return offset, nil
}

// Indices yields every multi-index of shape in row-major order (last axis
// fastest). The yielded slice is reused between iterations; clone it to keep it.
// Ranging over the sequence again restarts from the first index.
func Indices(shape []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, dim := range shape {
			if dim == 0 {
				return
			}
		}

		index := make([]int, len(shape))
		for {
			if !yield(index) {
				return
			}

			axis := len(shape) - 1
			for ; axis >= 0; axis-- {
				index[axis]++
				if index[axis] < shape[axis] {
					break
				}
				index[axis] = 0
			}
			if axis < 0 {
				return
			}
		}
	}
}

// Reorder applies an axis permutation: new position i takes the element of old
// position perm[i]. Used on shapes, strides and multi-indices alike.
func Reorder[S ~[]E, E any](seq S, perm []int) (S, error) {
	if len(seq) != len(perm) {
		return nil, IndexErrorf("reorder: permutation has %d axes, sequence has %d", len(perm), len(seq))
	}
	out := make(S, len(seq))
	for i, p := range perm {
		if p < 0 || p >= len(seq) {
			return nil, IndexErrorf("reorder: axis %d out of range for %d axes", p, len(seq))
		}
		out[i] = seq[p]
	}
	return out, nil
}

// reorderInto is the allocation-free form of Reorder used in hot loops; perm is
// assumed valid.
func reorderInto(dst, seq, perm []int) {
	for i, p := range perm {
		dst[i] = seq[p]
	}
}

func isPermutation(perm []int) bool {
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
