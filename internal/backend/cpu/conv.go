package cpu

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// ConvSize returns the output length of a convolution along one axis:
// floor((size + 2*padding - kernel) / stride) + 1, or 0 when the kernel does
// not fit.
func ConvSize(size, kernel, stride, padding int) int {
	span := size + 2*padding - kernel
	if span < 0 || stride <= 0 {
		return 0
	}
	return span/stride + 1
}

// PoolSize returns the output length of a pooling window along one axis.
// A non-positive stride defaults to the kernel size.
func PoolSize(size, kernel, stride, padding int) int {
	if stride <= 0 {
		stride = kernel
	}
	return ConvSize(size, kernel, stride, padding)
}

// Conv1D computes a 1-D convolution (cross-correlation) without bias.
//
//   - input:  [L, Cin]
//   - weight: [K, Cin, Cout]
//   - output: [Lout, Cout], Lout = ConvSize(L, K, stride, padding)
//
// Implemented as Im2Col followed by a single MatMul.
func (cpu *CPUBackend) Conv1D(input, weight *tensor.Array, stride, padding int, padValue float32) (*tensor.Array, error) {
	if input.Rank() != 2 || weight.Rank() != 3 {
		return nil, tensor.ShapeErrorf("conv1d: expected input [L, Cin] and weight [K, Cin, Cout], got %v and %v",
			input.Shape(), weight.Shape())
	}
	k, cin, cout := weight.Dim(0), weight.Dim(1), weight.Dim(2)
	if input.Dim(1) != cin {
		return nil, tensor.ShapeErrorf("conv1d: input has %d channels, weight expects %d", input.Dim(1), cin)
	}

	cols, err := cpu.Im2Col(input, []int{k}, stride, []int{padding}, padValue)
	if err != nil {
		return nil, err
	}
	kernel, err := weight.Reshape([]int{k * cin, cout})
	if err != nil {
		return nil, err
	}
	return cpu.MatMul(cols, kernel)
}

// Conv2D computes a 2-D convolution (cross-correlation) over a channels-last
// image without bias.
//
//   - input:  [H, W, Cin]
//   - weight: [KH, KW, Cin, Cout]
//   - output: [Hout, Wout, Cout]
//
// The same padding is applied to both spatial axes.
func (cpu *CPUBackend) Conv2D(input, weight *tensor.Array, stride, padding int, padValue float32) (*tensor.Array, error) {
	if input.Rank() != 3 || weight.Rank() != 4 {
		return nil, tensor.ShapeErrorf("conv2d: expected input [H, W, Cin] and weight [KH, KW, Cin, Cout], got %v and %v",
			input.Shape(), weight.Shape())
	}
	kh, kw, cin, cout := weight.Dim(0), weight.Dim(1), weight.Dim(2), weight.Dim(3)
	if input.Dim(2) != cin {
		return nil, tensor.ShapeErrorf("conv2d: input has %d channels, weight expects %d", input.Dim(2), cin)
	}

	cols, err := cpu.Im2Col(input, []int{kh, kw}, stride, []int{padding, padding}, padValue)
	if err != nil {
		return nil, err
	}
	kernel, err := weight.Reshape([]int{kh * kw * cin, cout})
	if err != nil {
		return nil, err
	}
	out, err := cpu.MatMul(cols, kernel)
	if err != nil {
		return nil, err
	}

	hOut := ConvSize(input.Dim(0), kh, stride, padding)
	wOut := ConvSize(input.Dim(1), kw, stride, padding)
	return tensor.Wrap(out.Data(), tensor.Shape{hOut, wOut, cout})
}
