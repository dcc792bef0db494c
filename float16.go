// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/x448/float16"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Float16Bits returns the values as IEEE 754 binary16 bit patterns, rounding
// to nearest even.
func (x *NdArray) Float16Bits() []uint16 {
	data := x.a.Data()
	bits := make([]uint16, len(data))
	for i, v := range data {
		bits[i] = float16.Fromfloat32(v).Bits()
	}
	return bits
}

// FromFloat16Bits creates an array from IEEE 754 binary16 bit patterns.
func FromFloat16Bits(bits []uint16, shape Shape) (*NdArray, error) {
	if shape == nil {
		shape = Shape{len(bits)}
	}
	data := make([]float32, len(bits))
	for i, b := range bits {
		data[i] = float16.Frombits(b).Float32()
	}
	return wrap(tensor.Wrap(data, shape))
}
