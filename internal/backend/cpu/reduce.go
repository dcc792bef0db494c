package cpu

import (
	"gorgonia.org/vecf32"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Sum adds every element in buffer order and returns the total. An empty
// array sums to 0.
func (cpu *CPUBackend) Sum(x *tensor.Array) float32 {
	return vecf32.Sum(x.Data())
}

// Argmax returns the flat index of the first maximum. A NaN or +Inf element
// wins at its first occurrence.
func (cpu *CPUBackend) Argmax(x *tensor.Array) (int, error) {
	if x.Len() == 0 {
		return 0, tensor.ShapeErrorf("argmax: empty array of shape %v", x.Shape())
	}
	return vecf32.Argmax(x.Data()), nil
}
