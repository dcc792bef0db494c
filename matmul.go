// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/matops"
)

// Number is the set of element types MatMulRaw accepts.
type Number = matops.Number

// Meta describes a flat row-major buffer: its shape and, optionally, its
// strides (which must then be the canonical ones).
type Meta = matops.Meta

// MatMulRaw multiplies two flat row-major buffers of any integer or float
// type. Integer products wrap around like Go arithmetic.
//
// Example:
//
//	c, err := ndarray.MatMulRaw(
//	    []int32{1, 2, 3, 4, 5, 6}, ndarray.Meta{Shape: []int{2, 3}},
//	    []int32{1, 2, 3, 4, 5, 6}, ndarray.Meta{Shape: []int{3, 2}},
//	) // []int32{22, 28, 49, 64}
func MatMulRaw[T Number](a []T, am Meta, b []T, bm Meta) ([]T, error) {
	return matops.MatMul(a, am, b, bm)
}
