// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides an eager n-dimensional float32 array engine.
//
// # Overview
//
// An NdArray is a flat float32 buffer plus its shape and row-major strides.
// Arrays are always contiguous and never change after construction: every
// transform (reshape, permute, slice, pad, im2col, ...) materializes a new
// buffer, and Set returns a modified copy.
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray"
//
//	func main() {
//	    a := ndarray.Must(ndarray.From([]float32{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3}, nil))
//	    b := ndarray.Must(a.Reshape(3, -1))
//	    c := ndarray.Must(a.MatMul(b)) // [[22 28] [49 64]]
//	    fmt.Println(c)
//	}
//
// # Broadcasting
//
// Add accepts a right operand whose length divides the left operand's length
// and repeats it cyclically:
//
//	a := ndarray.Must(ndarray.Zeros(ndarray.Shape{2, 2, 2}))
//	b := ndarray.Must(ndarray.Must(ndarray.Arange(0, 4, 1)).Reshape(2, 2))
//	c := ndarray.Must(a.Add(b)) // buffer [0 1 2 3 0 1 2 3]
//
// Sub and Dot require equal lengths. No other operation broadcasts.
//
// # Random Numbers
//
// Rand, RandBetween, Normal and Randn draw from a process-wide default source
// that is safe for concurrent use. Seed makes it deterministic. The ...With
// variants take an explicit Source instead.
//
// # Persistence
//
// SaveSafetensors and LoadSafetensors exchange named arrays with other tools
// in the SafeTensors format. Values can be stored as F32, F16, BF16 or F64 and
// are always float32 once loaded.
//
// # Errors
//
// Failing operations return an error wrapping one of ErrShape, ErrIndex,
// ErrNotImplemented or ErrDecode; test for them with errors.Is.
package ndarray
