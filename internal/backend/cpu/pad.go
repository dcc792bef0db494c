package cpu

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// PadX1D pads every run along the last axis with size copies of value on both
// sides. The last dimension grows by 2*size.
//
// Example:
//
//	[[1 2] [3 4]] padded by 1 -> [[0 1 2 0] [0 3 4 0]]
func (cpu *CPUBackend) PadX1D(x *tensor.Array, size int, value float32) (*tensor.Array, error) {
	if x.Rank() < 1 {
		return nil, tensor.ShapeErrorf("pad x: scalar cannot be padded")
	}
	return padAxis(x, x.Rank()-1, size, value)
}

// PadY2D pads every block of the last two axes with size rows of value
// before and after. The second-to-last dimension grows by 2*size.
func (cpu *CPUBackend) PadY2D(x *tensor.Array, size int, value float32) (*tensor.Array, error) {
	if x.Rank() < 2 {
		return nil, tensor.ShapeErrorf("pad y: need at least 2 axes, got shape %v", x.Shape())
	}
	return padAxis(x, x.Rank()-2, size, value)
}

// Padding1D applies PadX1D(px) and then PadY2D(py); a zero amount skips
// that step.
func (cpu *CPUBackend) Padding1D(x *tensor.Array, value float32, px, py int) (*tensor.Array, error) {
	out := x
	var err error
	if px != 0 {
		if out, err = cpu.PadX1D(out, px, value); err != nil {
			return nil, err
		}
	}
	if py != 0 {
		if out, err = cpu.PadY2D(out, py, value); err != nil {
			return nil, err
		}
	}
	if out == x {
		return x.Clone(), nil
	}
	return out, nil
}

// padAxis inserts size slabs of value before and after every run along axis.
func padAxis(x *tensor.Array, axis, size int, value float32) (*tensor.Array, error) {
	if size < 0 {
		return nil, tensor.ShapeErrorf("pad: negative size %d", size)
	}
	if size == 0 {
		return x.Clone(), nil
	}

	shape := x.Shape()
	inner := shape[axis+1:].NumElements()
	run := shape[axis] * inner
	outer := shape[:axis].NumElements()
	pad := size * inner

	src := x.Data()
	out := make([]float32, 0, outer*(run+2*pad))
	for b := 0; b < outer; b++ {
		out = fill(out, pad, value)
		out = append(out, src[b*run:(b+1)*run]...)
		out = fill(out, pad, value)
	}

	shape[axis] += 2 * size
	return wrap(out, shape), nil
}

func fill(dst []float32, n int, value float32) []float32 {
	for range n {
		dst = append(dst, value)
	}
	return dst
}
