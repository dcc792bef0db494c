// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Reshape returns the values under a new shape. One entry may be -1 and is
// inferred from the others.
func (x *NdArray) Reshape(shape ...int) (*NdArray, error) {
	return wrap(x.a.Reshape(shape))
}

// Permute reorders the axes: axis i of the result is axis order[i] of x.
func (x *NdArray) Permute(order ...int) (*NdArray, error) {
	return wrap(x.a.Permute(order))
}

// Transpose reverses the axes.
func (x *NdArray) Transpose() *NdArray {
	return &NdArray{a: x.a.Transpose()}
}

// Flatten returns the values as a 1-D array.
func (x *NdArray) Flatten() *NdArray {
	return &NdArray{a: x.a.Flatten()}
}

// Slice fixes the leading axes at indices and returns the remaining
// sub-array.
func (x *NdArray) Slice(indices ...int) (*NdArray, error) {
	return wrap(x.a.Slice(indices...))
}

// Set returns a copy of x with the sub-array at indices replaced by value.
func (x *NdArray) Set(indices []int, value *NdArray) (*NdArray, error) {
	return wrap(x.a.Set(indices, value.a))
}

// Concat joins a and b along the first axis.
func Concat(a, b *NdArray) (*NdArray, error) {
	return wrap(tensor.Concat(a.a, b.a))
}

// MatMul multiplies two matrices ([M, K] @ [K, N]) or two vectors (inner
// product, shape [1]).
func (x *NdArray) MatMul(y *NdArray) (*NdArray, error) {
	return wrap(cpuBackend().MatMul(x.a, y.a))
}

// Dot multiplies element-wise. Lengths must match.
func (x *NdArray) Dot(y *NdArray) (*NdArray, error) {
	return wrap(cpuBackend().Dot(x.a, y.a))
}

// Add adds element-wise, repeating y cyclically when its length divides
// x's length.
func (x *NdArray) Add(y *NdArray) (*NdArray, error) {
	return wrap(cpuBackend().Add(x.a, y.a))
}

// Sub subtracts element-wise. Lengths must match.
func (x *NdArray) Sub(y *NdArray) (*NdArray, error) {
	return wrap(cpuBackend().Sub(x.a, y.a))
}

// MulScalar multiplies every element by s.
func (x *NdArray) MulScalar(s float32) *NdArray {
	return &NdArray{a: cpuBackend().MulScalar(x.a, s)}
}

// AddScalar adds s to every element.
func (x *NdArray) AddScalar(s float32) *NdArray {
	return &NdArray{a: cpuBackend().AddScalar(x.a, s)}
}

// SubScalar subtracts s from every element.
func (x *NdArray) SubScalar(s float32) *NdArray {
	return &NdArray{a: cpuBackend().SubScalar(x.a, s)}
}

// Log computes the logarithm in base.
func (x *NdArray) Log(base float32) *NdArray {
	return &NdArray{a: cpuBackend().Log(x.a, base)}
}

// Ln computes the natural logarithm.
func (x *NdArray) Ln() *NdArray {
	return &NdArray{a: cpuBackend().Ln(x.a)}
}

// Exp computes e^x.
func (x *NdArray) Exp() *NdArray {
	return &NdArray{a: cpuBackend().Exp(x.a)}
}

// Relu computes max(0, x).
func (x *NdArray) Relu() *NdArray {
	return &NdArray{a: cpuBackend().Relu(x.a)}
}

// Sigmoid computes 1 / (1 + e^-x).
func (x *NdArray) Sigmoid() *NdArray {
	return &NdArray{a: cpuBackend().Sigmoid(x.a)}
}

// Tanh computes the hyperbolic tangent.
func (x *NdArray) Tanh() *NdArray {
	return &NdArray{a: cpuBackend().Tanh(x.a)}
}

// Pow raises every element to exponent.
func (x *NdArray) Pow(exponent float32) *NdArray {
	return &NdArray{a: cpuBackend().Pow(x.a, exponent)}
}

// Softmax normalizes exp(x) along axis so every lane sums to 1. Without an
// axis the last axis is used; negative axes count from the end.
func (x *NdArray) Softmax(axis ...int) (*NdArray, error) {
	ax := -1
	switch len(axis) {
	case 0:
	case 1:
		ax = axis[0]
	default:
		return nil, tensor.IndexErrorf("softmax: one axis expected, got %v", axis)
	}
	return wrap(cpuBackend().Softmax(x.a, ax))
}

// Sum adds all elements.
func (x *NdArray) Sum() float32 {
	return cpuBackend().Sum(x.a)
}

// Argmax returns the flat index of the first largest element.
func (x *NdArray) Argmax() (int, error) {
	return cpuBackend().Argmax(x.a)
}

// PadX1D pads every last-axis run with size copies of value on both sides.
func (x *NdArray) PadX1D(size int, value float32) (*NdArray, error) {
	return wrap(cpuBackend().PadX1D(x.a, size, value))
}

// PadY2D pads every block of the last two axes with size rows of value
// above and below.
func (x *NdArray) PadY2D(size int, value float32) (*NdArray, error) {
	return wrap(cpuBackend().PadY2D(x.a, size, value))
}

// Padding1D applies PadX1D(px) then PadY2D(py), skipping zero amounts.
func (x *NdArray) Padding1D(value float32, px, py int) (*NdArray, error) {
	return wrap(cpuBackend().Padding1D(x.a, value, px, py))
}

// Im2Col flattens convolution windows of a [L, C] or [H, W, C] array into
// matrix rows.
//
// Example:
//
//	x := ndarray.Must(ndarray.Must(ndarray.Arange(0, 15, 1)).Reshape(5, 3))
//	cols := ndarray.Must(x.Im2Col([]int{3}, 1, []int{0}, 0)) // Shape: [3, 9]
func (x *NdArray) Im2Col(kernel []int, stride int, padding []int, padValue float32) (*NdArray, error) {
	return wrap(cpuBackend().Im2Col(x.a, kernel, stride, padding, padValue))
}

// Conv1D convolves a [L, Cin] signal with a [K, Cin, Cout] kernel.
func (x *NdArray) Conv1D(weight *NdArray, stride, padding int) (*NdArray, error) {
	return wrap(cpuBackend().Conv1D(x.a, weight.a, stride, padding, 0))
}

// Conv2D convolves a [H, W, Cin] image with a [KH, KW, Cin, Cout] kernel.
func (x *NdArray) Conv2D(weight *NdArray, stride, padding int) (*NdArray, error) {
	return wrap(cpuBackend().Conv2D(x.a, weight.a, stride, padding, 0))
}

// MaxPool2D takes the per-channel maximum of each kernel x kernel window of a
// [H, W, C] image. A non-positive stride defaults to kernel.
func (x *NdArray) MaxPool2D(kernel, stride int) (*NdArray, error) {
	return wrap(cpuBackend().MaxPool2D(x.a, kernel, stride))
}
