// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// From creates an array from values, which are copied.
//
// A nil shape means one axis of len(values); a nil strides slice means the
// canonical row-major strides. Explicit strides must equal the canonical
// strides because arrays are always contiguous.
//
// Example:
//
//	x, err := ndarray.From([]float32{1, 2, 3, 4}, ndarray.Shape{2, 2}, nil)
func From(values []float32, shape Shape, strides []int) (*NdArray, error) {
	return wrap(tensor.From(values, shape, strides))
}

// Arange creates the 1-D array start, start+step, ... below stop.
func Arange(start, stop, step int) (*NdArray, error) {
	return wrap(tensor.Arange(start, stop, step))
}

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) (*NdArray, error) {
	return wrap(tensor.Zeros(shape))
}

// Ones creates an array filled with ones.
func Ones(shape Shape) (*NdArray, error) {
	return wrap(tensor.Ones(shape))
}

// Full creates an array filled with value.
func Full(shape Shape, value float32) (*NdArray, error) {
	return wrap(tensor.Full(shape, value))
}

// Rand creates an array of uniform values in [0, 1) from the default source.
func Rand(shape Shape) (*NdArray, error) {
	return RandWith(defaultSource, shape)
}

// RandWith is Rand drawing from src.
func RandWith(src Source, shape Shape) (*NdArray, error) {
	return wrap(tensor.Rand(shape, src))
}

// RandBetween creates an array of uniform values in [lo, hi) from the
// default source.
func RandBetween(shape Shape, lo, hi float32) (*NdArray, error) {
	return RandBetweenWith(defaultSource, shape, lo, hi)
}

// RandBetweenWith is RandBetween drawing from src.
func RandBetweenWith(src Source, shape Shape, lo, hi float32) (*NdArray, error) {
	return wrap(tensor.RandBetween(shape, lo, hi, src))
}

// Normal creates an array of N(mean, std²) samples from the default source.
func Normal(shape Shape, mean, std float32) (*NdArray, error) {
	return NormalWith(defaultSource, shape, mean, std)
}

// NormalWith is Normal drawing from src.
func NormalWith(src Source, shape Shape, mean, std float32) (*NdArray, error) {
	return wrap(tensor.Normal(shape, mean, std, src))
}

// Randn creates an array of standard normal samples from the default source.
func Randn(shape Shape) (*NdArray, error) {
	return RandnWith(defaultSource, shape)
}

// RandnWith is Randn drawing from src.
func RandnWith(src Source, shape Shape) (*NdArray, error) {
	return wrap(tensor.Randn(shape, src))
}

// NormalSamples returns n samples of N(mean, std²) from the default source.
func NormalSamples(n int, mean, std float32) []float32 {
	return tensor.NormalSamples(n, mean, std, defaultSource)
}
