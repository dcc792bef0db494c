package tensor

// Reshape returns the array with a new shape over the same row-major values.
//
// At most one entry may be a placeholder, any value <= 0 (conventionally -1);
// its size is inferred from the buffer length and the other entries.
//
// Example:
//
//	a, _ := tensor.From([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, nil)
//	b, _ := a.Reshape([]int{3, -1}) // Shape: [3, 2], strides [2, 1]
func (a *Array) Reshape(newShape []int) (*Array, error) {
	placeholder := -1
	known := 1
	for i, dim := range newShape {
		if dim > 0 {
			if known > maxInt/dim {
				return nil, ShapeErrorf("reshape %v: size overflows int", newShape)
			}
			known *= dim
			continue
		}
		if placeholder >= 0 {
			return nil, ShapeErrorf("reshape %v: only one dimension can be inferred", newShape)
		}
		placeholder = i
	}

	shape := make(Shape, len(newShape))
	copy(shape, newShape)
	if placeholder >= 0 {
		if known == 0 || len(a.data)%known != 0 {
			return nil, ShapeErrorf("reshape %v: cannot infer dimension for %d elements", newShape, len(a.data))
		}
		shape[placeholder] = len(a.data) / known
	}

	if shape.NumElements() != len(a.data) {
		return nil, ShapeErrorf("reshape: shape %v is not compatible with %d elements", shape, len(a.data))
	}

	return &Array{data: a.Buffer(), shape: shape, strides: shape.Strides()}, nil
}

// Flatten reshapes the array to a single axis.
func (a *Array) Flatten() *Array {
	shape := Shape{len(a.data)}
	return &Array{data: a.Buffer(), shape: shape, strides: shape.Strides()}
}

// Permute reorders the axes: axis i of the result is axis order[i] of a.
// The values are copied into a fresh contiguous buffer.
//
// Example:
//
//	x, _ := tensor.Arange(0, 16, 1)
//	x, _ = x.Reshape([]int{2, 4, 2})
//	y, _ := x.Permute([]int{2, 0, 1}) // Shape: [2, 2, 4]
func (a *Array) Permute(order []int) (*Array, error) {
	if len(order) != len(a.shape) {
		return nil, IndexErrorf("permute: got %d axes for %dD array", len(order), len(a.shape))
	}
	if !isPermutation(order) {
		return nil, IndexErrorf("permute: %v is not a permutation of %d axes", order, len(a.shape))
	}

	outShape, err := Reorder(a.shape, order)
	if err != nil {
		return nil, err
	}
	outStrides := outShape.Strides()
	out := make([]float32, len(a.data))

	outIndex := make([]int, len(order))
	for index := range Indices(a.shape) {
		src, _ := Offset(index, a.strides)
		reorderInto(outIndex, index, order)
		dst, _ := Offset(outIndex, outStrides)
		out[dst] = a.data[src]
	}

	return &Array{data: out, shape: outShape, strides: outStrides}, nil
}

// Transpose reverses the order of the axes.
func (a *Array) Transpose() *Array {
	order := make([]int, len(a.shape))
	for i := range order {
		order[i] = len(order) - 1 - i
	}
	t, err := a.Permute(order)
	if err != nil {
		// Reversed axes are always a valid permutation.
		panic(err)
	}
	return t
}

// runFor validates leading indices and returns the offset and length of the
// contiguous run they address.
func (a *Array) runFor(op string, indices []int) (offset, length int, err error) {
	if len(indices) > len(a.shape) {
		return 0, 0, IndexErrorf("%s: %d indices for %dD array", op, len(indices), len(a.shape))
	}
	for axis, idx := range indices {
		if idx < 0 || idx >= a.shape[axis] {
			return 0, 0, IndexErrorf("%s: index %d out of bounds for dimension %d (size %d)", op, idx, axis, a.shape[axis])
		}
		offset += idx * a.strides[axis]
	}
	return offset, a.shape[len(indices):].NumElements(), nil
}

// Slice fixes the leading len(indices) axes and returns the remaining
// sub-array as a copy.
//
// Example:
//
//	x, _ := tensor.Arange(0, 12, 1)
//	x, _ = x.Reshape([]int{2, 3, 2})
//	y, _ := x.Slice(1) // Shape: [3, 2], values 6..11
func (a *Array) Slice(indices ...int) (*Array, error) {
	offset, length, err := a.runFor("slice", indices)
	if err != nil {
		return nil, err
	}
	data := make([]float32, length)
	copy(data, a.data[offset:offset+length])
	return Wrap(data, a.shape[len(indices):])
}

// Set returns a copy of a whose sub-array addressed by indices is replaced by
// the values of value. The element counts must match; a is left untouched.
func (a *Array) Set(indices []int, value *Array) (*Array, error) {
	offset, length, err := a.runFor("set", indices)
	if err != nil {
		return nil, err
	}
	if value.Len() != length {
		return nil, ShapeErrorf("set: value of shape %v has %d elements, target %v needs %d",
			value.shape, value.Len(), a.shape[len(indices):], length)
	}
	out := a.Clone()
	copy(out.data[offset:offset+length], value.data)
	return out, nil
}

// Concat joins a and b along axis 0. All other axes must match.
//
// Example:
//
//	a, _ := tensor.Ones(tensor.Shape{2, 3})
//	b, _ := tensor.Zeros(tensor.Shape{2, 3})
//	c, _ := tensor.Concat(a, b) // Shape: [4, 3]
func Concat(a, b *Array) (*Array, error) {
	if len(a.shape) == 0 || len(b.shape) == 0 {
		return nil, ShapeErrorf("concat: scalars cannot be concatenated")
	}
	if len(a.shape) != len(b.shape) {
		return nil, ShapeErrorf("concat: %dD and %dD arrays", len(a.shape), len(b.shape))
	}
	if !a.shape[1:].Equal(b.shape[1:]) {
		return nil, ShapeErrorf("concat: trailing shapes differ: %v vs %v", a.shape, b.shape)
	}

	data := make([]float32, 0, len(a.data)+len(b.data))
	data = append(data, a.data...)
	data = append(data, b.data...)

	shape := a.shape.Clone()
	shape[0] += b.shape[0]
	return Wrap(data, shape)
}
