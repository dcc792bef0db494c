// Package tensor provides the n-dimensional array type of the ndarray engine
// together with its index/stride math and shape transforms.
package tensor

import (
	"fmt"
	"strings"
)

// Array is an n-dimensional float32 array.
//
// The buffer is always laid out contiguously in row-major order: the strides
// are the canonical strides of the shape and len(buffer) equals the product of
// the shape. Arrays are never mutated after construction; operations return
// new arrays with their own buffers.
type Array struct {
	data    []float32
	shape   Shape
	strides []int
}

// From creates an array from values. The values are copied.
//
// A nil shape means a single axis of len(values). A nil strides slice means
// canonical strides; explicit strides must be exactly the canonical strides of
// shape because arrays are always contiguous.
//
// Example:
//
//	a, err := tensor.From([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, nil)
func From(values []float32, shape Shape, strides []int) (*Array, error) {
	if shape == nil {
		shape = Shape{len(values)}
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(values) {
		return nil, ShapeErrorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(values))
	}

	canonical := shape.Strides()
	if strides != nil && !intsEqual(strides, canonical) {
		return nil, ShapeErrorf("strides %v are not the contiguous strides %v of shape %v", strides, canonical, shape)
	}

	data := make([]float32, len(values))
	copy(data, values)
	return &Array{data: data, shape: shape.Clone(), strides: canonical}, nil
}

// Wrap creates an array that takes ownership of data without copying it.
// Used by backends that have just allocated the result buffer.
func Wrap(data []float32, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, ShapeErrorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Array{data: data, shape: shape.Clone(), strides: shape.Strides()}, nil
}

// Buffer returns a copy of the array's values in row-major order.
func (a *Array) Buffer() []float32 {
	out := make([]float32, len(a.data))
	copy(out, a.data)
	return out
}

// Data returns the underlying buffer without copying.
//
// WARNING: callers must treat the slice as read-only.
func (a *Array) Data() []float32 {
	return a.data
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns a copy of the array's strides.
func (a *Array) Strides() []int {
	return append([]int(nil), a.strides...)
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Dim returns the size of an axis. Negative axes count from the end.
func (a *Array) Dim(axis int) int {
	if axis < 0 {
		axis += len(a.shape)
	}
	return a.shape[axis]
}

// At returns the element at the given multi-index.
func (a *Array) At(index ...int) (float32, error) {
	if len(index) != len(a.shape) {
		return 0, IndexErrorf("at: expected %d indices, got %d", len(a.shape), len(index))
	}
	for i, idx := range index {
		if idx < 0 || idx >= a.shape[i] {
			return 0, IndexErrorf("at: index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i])
		}
	}
	offset, err := Offset(index, a.strides)
	if err != nil {
		return 0, err
	}
	return a.data[offset], nil
}

// Item returns the single value of a one-element array.
func (a *Array) Item() (float32, error) {
	if len(a.data) != 1 {
		return 0, ShapeErrorf("item: array of shape %v has %d elements", a.shape, len(a.data))
	}
	return a.data[0], nil
}

// Map applies f to every element, keeping shape and strides.
func (a *Array) Map(f func(float32) float32) *Array {
	out := a.Clone()
	for i, v := range out.data {
		out.data[i] = f(v)
	}
	return out
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{
		data:    a.Buffer(),
		shape:   a.shape.Clone(),
		strides: a.Strides(),
	}
}

// Equal reports whether both arrays have the same shape and values.
func (a *Array) Equal(b *Array) bool {
	if !a.shape.Equal(b.shape) || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// String renders the array as nested brackets, e.g. [[1 2] [3 4]].
func (a *Array) String() string {
	var sb strings.Builder
	if len(a.shape) == 0 {
		fmt.Fprint(&sb, a.data[0])
		return sb.String()
	}
	writeNested(&sb, a.data, a.shape)
	return sb.String()
}

func writeNested(sb *strings.Builder, data []float32, shape Shape) {
	sb.WriteByte('[')
	if len(shape) == 1 {
		for i, v := range data {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(sb, v)
		}
		sb.WriteByte(']')
		return
	}

	inner := shape[1:].NumElements()
	for i := 0; i < shape[0]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeNested(sb, data[i*inner:(i+1)*inner], shape[1:])
	}
	sb.WriteByte(']')
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
