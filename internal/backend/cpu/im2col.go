package cpu

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Im2Col flattens sliding convolution windows into the rows of a matrix so
// that a convolution becomes a single matrix multiplication.
//
// Supported layouts:
//   - [L, C] (1-D signal): kernel is [K]; padding[0] pads L. Windows start
//     every stride positions along L; each row holds K*C values.
//   - [H, W, C] (image): kernel is [KH, KW] (or [K] for a square window);
//     padding[0] pads H and padding[1] pads W (padding[0] pads both when it is
//     the only entry). Windows sit on a stride grid over H and W; each row
//     holds KH*KW*C values, gathered row by row.
//
// Windows that would extend past the (padded) input are dropped. Every start
// position s*i with s*i+k <= n is used, giving ConvSize(n, k, s, 0) windows per
// axis. This can be one more than floor(n/s) starts: for n=8, k=2, s=3 the
// windows start at 0, 3 and 6.
func (cpu *CPUBackend) Im2Col(x *tensor.Array, kernel []int, stride int, padding []int, padValue float32) (*tensor.Array, error) {
	if len(padding) > 2 {
		return nil, tensor.ShapeErrorf("im2col: padding takes at most 2 values, got %v", padding)
	}
	if stride <= 0 {
		return nil, tensor.ShapeErrorf("im2col: stride must be positive, got %d", stride)
	}
	for _, k := range kernel {
		if k <= 0 {
			return nil, tensor.ShapeErrorf("im2col: kernel sizes must be positive, got %v", kernel)
		}
	}

	switch x.Rank() {
	case 2:
		if len(kernel) != 1 {
			return nil, tensor.ShapeErrorf("im2col: 1-D window needs one kernel size, got %v", kernel)
		}
		return im2col1D(x, kernel[0], stride, padAt(padding, 0), padValue)
	case 3:
		var kh, kw int
		switch len(kernel) {
		case 1:
			kh, kw = kernel[0], kernel[0]
		case 2:
			kh, kw = kernel[0], kernel[1]
		default:
			return nil, tensor.ShapeErrorf("im2col: 2-D window needs one or two kernel sizes, got %v", kernel)
		}
		ph := padAt(padding, 0)
		pw := ph
		if len(padding) == 2 {
			pw = padding[1]
		}
		return im2col2D(x, kh, kw, stride, ph, pw, padValue)
	default:
		return nil, tensor.NotImplementedf("im2col: %dD input (only [L, C] and [H, W, C] are supported)", x.Rank())
	}
}

func padAt(padding []int, i int) int {
	if i < len(padding) {
		return padding[i]
	}
	return 0
}

func im2col1D(x *tensor.Array, k, stride, pad int, padValue float32) (*tensor.Array, error) {
	x, err := padAxis(x, 0, pad, padValue)
	if err != nil {
		return nil, err
	}
	length, channels := x.Dim(0), x.Dim(1)
	chunk := k * channels
	src := x.Data()

	var out []float32
	windows := 0
	for start := 0; start+k <= length; start += stride {
		offset := start * channels
		out = append(out, src[offset:offset+chunk]...)
		windows++
	}
	if out == nil {
		out = []float32{}
	}
	return wrap(out, tensor.Shape{windows, chunk}), nil
}

func im2col2D(x *tensor.Array, kh, kw, stride, ph, pw int, padValue float32) (*tensor.Array, error) {
	x, err := padAxis(x, 0, ph, padValue)
	if err != nil {
		return nil, err
	}
	if x, err = padAxis(x, 1, pw, padValue); err != nil {
		return nil, err
	}

	height, width, channels := x.Dim(0), x.Dim(1), x.Dim(2)
	strides := x.Strides()
	run := kw * channels
	chunk := kh * run
	src := x.Data()

	var out []float32
	windows := 0
	for r := 0; r+kh <= height; r += stride {
		for c := 0; c+kw <= width; c += stride {
			for dy := range kh {
				offset := (r+dy)*strides[0] + c*strides[1]
				out = append(out, src[offset:offset+run]...)
			}
			windows++
		}
	}
	if out == nil {
		out = []float32{}
	}
	return wrap(out, tensor.Shape{windows, chunk}), nil
}
