package tensor

// Zeros creates an array filled with zeros.
//
// Example:
//
//	a, err := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	// Data is already zero-initialized by make()
	return Wrap(make([]float32, shape.NumElements()), shape)
}

// Ones creates an array filled with ones.
func Ones(shape Shape) (*Array, error) {
	return Full(shape, 1)
}

// Full creates an array filled with value.
func Full(shape Shape, value float32) (*Array, error) {
	a, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// Arange creates a 1-D array holding the integers start, start+step, ...
// below stop, converted to float32. An empty range yields shape [0].
//
// Example:
//
//	a, _ := tensor.Arange(0, 10, 1) // [0 1 2 ... 9]
func Arange(start, stop, step int) (*Array, error) {
	if step <= 0 {
		return nil, ShapeErrorf("arange: step must be positive, got %d", step)
	}

	var data []float32
	if stop > start {
		data = make([]float32, 0, (stop-start+step-1)/step)
		for v := start; v < stop; v += step {
			data = append(data, float32(v))
		}
	}
	if data == nil {
		data = []float32{}
	}
	return Wrap(data, Shape{len(data)})
}

// Rand creates an array of values uniformly distributed in [0, 1).
func Rand(shape Shape, src Source) (*Array, error) {
	a, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = src.Float32()
	}
	return a, nil
}

// RandBetween creates an array of values uniformly distributed in [lo, hi).
func RandBetween(shape Shape, lo, hi float32, src Source) (*Array, error) {
	if hi < lo {
		return nil, ShapeErrorf("rand between: empty range [%v, %v)", lo, hi)
	}
	a, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = lo + (hi-lo)*src.Float32()
	}
	return a, nil
}

// Normal creates an array of samples from N(mean, std^2), generated with the
// Box-Muller transform.
func Normal(shape Shape, mean, std float32, src Source) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return Wrap(NormalSamples(shape.NumElements(), mean, std, src), shape)
}

// Randn creates an array of standard normal samples.
//
// Example:
//
//	a, _ := tensor.Randn(tensor.Shape{100, 100}, tensor.NewSource(42))
func Randn(shape Shape, src Source) (*Array, error) {
	return Normal(shape, 0, 1, src)
}
