package cpu

import (
	"github.com/chewxy/math32"
	"gorgonia.org/vecf32"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Add performs element-wise addition with cyclic broadcasting:
// out[i] = a[i] + b[i % len(b)]. b's length must divide a's length.
// The result keeps a's shape.
func (cpu *CPUBackend) Add(a, b *tensor.Array) (*tensor.Array, error) {
	la, lb := a.Len(), b.Len()
	if lb == 0 {
		if la == 0 {
			return a.Clone(), nil
		}
		return nil, tensor.ShapeErrorf("add: cannot broadcast empty array onto shape %v", a.Shape())
	}
	if la%lb != 0 {
		return nil, tensor.NotImplementedf("add: broadcasting %v onto %v (length %d does not divide %d)",
			b.Shape(), a.Shape(), lb, la)
	}

	src, other := a.Data(), b.Data()
	dst := result(a)
	if la == lb {
		parallel.Range(la, func(start, end int) {
			copy(dst[start:end], src[start:end])
			vecf32.Add(dst[start:end], other[start:end])
		}, cpu.cfg.Parallel)
	} else {
		parallel.Range(la, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = src[i] + other[i%lb]
			}
		}, cpu.cfg.Parallel)
	}
	return wrap(dst, a.Shape()), nil
}

// Sub performs element-wise subtraction. Unlike Add, the buffers must have
// exactly the same length.
func (cpu *CPUBackend) Sub(a, b *tensor.Array) (*tensor.Array, error) {
	if a.Len() != b.Len() {
		return nil, tensor.ShapeErrorf("sub: %v and %v have different lengths", a.Shape(), b.Shape())
	}
	return cpu.binary(a, b, vecf32.Sub), nil
}

// Dot performs element-wise multiplication. The buffers must have exactly the
// same length.
func (cpu *CPUBackend) Dot(a, b *tensor.Array) (*tensor.Array, error) {
	if a.Len() != b.Len() {
		return nil, tensor.ShapeErrorf("dot: %v and %v have different lengths", a.Shape(), b.Shape())
	}
	return cpu.binary(a, b, vecf32.Mul), nil
}

// binary applies an in-place vector kernel dst op= b over a copy of a.
func (cpu *CPUBackend) binary(a, b *tensor.Array, kernel func(dst, other []float32)) *tensor.Array {
	src, other := a.Data(), b.Data()
	dst := result(a)
	parallel.Range(len(dst), func(start, end int) {
		copy(dst[start:end], src[start:end])
		kernel(dst[start:end], other[start:end])
	}, cpu.cfg.Parallel)
	return wrap(dst, a.Shape())
}

// MulScalar multiplies every element by s.
func (cpu *CPUBackend) MulScalar(x *tensor.Array, s float32) *tensor.Array {
	return cpu.scalar(x, s, vecf32.Scale)
}

// AddScalar adds s to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.Array, s float32) *tensor.Array {
	return cpu.scalar(x, s, vecf32.Trans)
}

// SubScalar subtracts s from every element.
func (cpu *CPUBackend) SubScalar(x *tensor.Array, s float32) *tensor.Array {
	return cpu.scalar(x, s, vecf32.TransInv)
}

func (cpu *CPUBackend) scalar(x *tensor.Array, s float32, kernel func(dst []float32, s float32)) *tensor.Array {
	src := x.Data()
	dst := result(x)
	parallel.Range(len(dst), func(start, end int) {
		copy(dst[start:end], src[start:end])
		kernel(dst[start:end], s)
	}, cpu.cfg.Parallel)
	return wrap(dst, x.Shape())
}

// Unary applies f to every element.
func (cpu *CPUBackend) Unary(x *tensor.Array, f func(float32) float32) *tensor.Array {
	src := x.Data()
	dst := result(x)
	parallel.Range(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(src[i])
		}
	}, cpu.cfg.Parallel)
	return wrap(dst, x.Shape())
}

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.Array) *tensor.Array {
	return cpu.Unary(x, math32.Exp)
}

// Ln computes element-wise natural logarithm.
func (cpu *CPUBackend) Ln(x *tensor.Array) *tensor.Array {
	return cpu.Unary(x, math32.Log)
}

// Log computes element-wise logarithm in the given base: ln(x) / ln(base).
func (cpu *CPUBackend) Log(x *tensor.Array, base float32) *tensor.Array {
	lnBase := math32.Log(base)
	return cpu.Unary(x, func(v float32) float32 {
		return math32.Log(v) / lnBase
	})
}

// Pow raises every element to exponent.
func (cpu *CPUBackend) Pow(x *tensor.Array, exponent float32) *tensor.Array {
	return cpu.Unary(x, func(v float32) float32 {
		return math32.Pow(v, exponent)
	})
}
