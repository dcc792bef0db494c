// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"io"

	"github.com/born-ml/ndarray/internal/safetensors"
	"github.com/born-ml/ndarray/internal/tensor"
)

// DType is the element type arrays are stored as in a SafeTensors file.
type DType = safetensors.DType

// Storage element types.
const (
	F32  = safetensors.F32
	F16  = safetensors.F16
	BF16 = safetensors.BF16
	F64  = safetensors.F64
)

// ParseDType validates a storage type name such as "F32" or "BF16".
func ParseDType(s string) (DType, error) {
	return safetensors.ParseDType(s)
}

// SaveSafetensors writes named arrays to w in the SafeTensors format, converting
// values to dtype. Metadata may be nil.
//
// Example:
//
//	w := ndarray.Must(ndarray.Randn(ndarray.Shape{3, 4}))
//	err := ndarray.SaveSafetensors(f, map[string]*ndarray.NdArray{"w": w}, ndarray.F32, nil)
func SaveSafetensors(w io.Writer, arrays map[string]*NdArray, dtype DType, metadata map[string]string) error {
	raw := make(map[string]*tensor.Array, len(arrays))
	for name, x := range arrays {
		raw[name] = x.a
	}
	return safetensors.Write(w, raw, dtype, metadata)
}

// LoadSafetensors decodes every array of a SafeTensors buffer, returning the
// arrays by name and the file metadata. Values stored as F16, BF16 or F64 are
// converted to float32.
func LoadSafetensors(data []byte) (map[string]*NdArray, map[string]string, error) {
	f, err := safetensors.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	raw, err := f.Arrays()
	if err != nil {
		return nil, nil, err
	}
	arrays := make(map[string]*NdArray, len(raw))
	for name, a := range raw {
		arrays[name] = &NdArray{a: a}
	}
	return arrays, f.Metadata(), nil
}
