// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/imageio"
)

// LoadImageRGB decodes an image into a [height, width, 3] array of 8-bit
// sample values. It returns nil if the data cannot be decoded.
func LoadImageRGB(data []byte) *NdArray {
	return loadImage(data, imageio.RGB)
}

// LoadImageRGBA decodes an image into a [height, width, 4] array of 16-bit
// sample values. It returns nil if the data cannot be decoded.
func LoadImageRGBA(data []byte) *NdArray {
	return loadImage(data, imageio.RGBA)
}

// LoadImageLuma decodes an image into a [height, width, 1] array of 16-bit
// luminance values. It returns nil if the data cannot be decoded.
func LoadImageLuma(data []byte) *NdArray {
	return loadImage(data, imageio.Luma)
}

func loadImage(data []byte, mode imageio.Mode) *NdArray {
	a, err := imageio.DecodeArray(data, mode)
	if err != nil {
		klog.ErrorS(err, "Failed to load image", "mode", mode, "size", len(data))
		return nil
	}
	return &NdArray{a: a}
}
