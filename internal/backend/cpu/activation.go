package cpu

import (
	"github.com/chewxy/math32"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Relu computes max(0, x) element-wise. NaN maps to 0.
func (cpu *CPUBackend) Relu(x *tensor.Array) *tensor.Array {
	return cpu.Unary(x, func(v float32) float32 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// Sigmoid computes 1 / (1 + exp(-x)) element-wise.
func (cpu *CPUBackend) Sigmoid(x *tensor.Array) *tensor.Array {
	return cpu.Unary(x, func(v float32) float32 {
		return 1 / (1 + math32.Exp(-v))
	})
}

// Tanh computes the hyperbolic tangent element-wise.
func (cpu *CPUBackend) Tanh(x *tensor.Array) *tensor.Array {
	return cpu.Unary(x, math32.Tanh)
}

// Softmax exponentiates every element and normalizes along axis so that each
// lane sums to 1. Negative axes count from the end.
//
// For the last axis a lane is one contiguous run of shape[-1] values. For any
// other axis a lane starts at each offset below the axis stride and takes
// every stride-th value through the end of the buffer, so axes before the
// chosen one are folded into the same sum.
//
// The values are not shifted by the lane maximum, so large inputs overflow
// to +Inf exactly like a plain exp would.
func (cpu *CPUBackend) Softmax(x *tensor.Array, axis int) (*tensor.Array, error) {
	shape := x.Shape()
	ndim := len(shape)
	if ndim == 0 {
		return nil, tensor.IndexErrorf("softmax: scalar has no axis %d", axis)
	}
	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		return nil, tensor.IndexErrorf("softmax: axis %d out of range for %dD array", axis, ndim)
	}

	out := cpu.Exp(x)
	data := out.Data()
	if len(data) == 0 {
		return out, nil
	}

	if axis == ndim-1 {
		size := shape[axis]
		parallel.For(len(data)/size, func(lane int) {
			normalize(data[lane*size:(lane+1)*size], 1)
		}, cpu.cfg.Parallel)
		return out, nil
	}

	// Any other axis: lane k in [0, stride) holds every element at k + j*stride
	// across the whole buffer, leading axes included.
	stride := x.Strides()[axis]
	parallel.For(stride, func(lane int) {
		normalize(data[lane:], stride)
	}, cpu.cfg.Parallel)
	return out, nil
}

// normalize divides every step-th element of lane, starting at 0, by their sum.
func normalize(lane []float32, step int) {
	var sum float32
	for i := 0; i < len(lane); i += step {
		sum += lane[i]
	}
	for i := 0; i < len(lane); i += step {
		lane[i] /= sum
	}
}
