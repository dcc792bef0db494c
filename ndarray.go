// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"sync"
	"sync/atomic"

	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/config"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Shape represents the dimensions of an array, outer to inner.
// Example: Shape{2, 3, 4} is a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Source produces uniform pseudo-random float32 values in [0, 1).
type Source = tensor.Source

// Config is the engine configuration. See LoadConfig.
type Config = config.Config

// Error kinds.
var (
	ErrShape          = tensor.ErrShape
	ErrIndex          = tensor.ErrIndex
	ErrNotImplemented = tensor.ErrNotImplemented
	ErrDecode         = tensor.ErrDecode
)

var (
	backend       atomic.Pointer[cpu.CPUBackend]
	defaultSource = &lockedSource{src: tensor.NewRandomSource()}
)

func init() {
	backend.Store(cpu.New())
}

// lockedSource serializes draws from a shared source.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (s *lockedSource) Float32() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Float32()
}

func (s *lockedSource) reset(src Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src = src
}

// Seed resets the default random source to a deterministic sequence.
func Seed(seed uint64) {
	defaultSource.reset(tensor.NewSource(seed))
}

// NewSource returns a deterministic Source for the ...With constructors.
// It is not safe for concurrent use.
func NewSource(seed uint64) Source {
	return tensor.NewSource(seed)
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig reads a YAML configuration file. An empty path returns the
// defaults. NDARRAY_WORKERS, NDARRAY_BLAS and NDARRAY_SEED override the file.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// Configure applies cfg to the engine: the CPU backend settings and, when
// cfg.Random.Seed is set, the default random source.
func Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	backend.Store(cpu.NewWithConfig(cfg.Backend()))
	if cfg.Random.Seed != nil {
		Seed(*cfg.Random.Seed)
	}
	klog.V(2).InfoS("Configured engine",
		"parallel", cfg.Parallel.Enabled, "workers", cfg.Parallel.NumWorkers, "blas", cfg.MatMul.BLAS)
	return nil
}

func cpuBackend() *cpu.CPUBackend {
	return backend.Load()
}

// NdArray is an immutable n-dimensional float32 array.
type NdArray struct {
	a *tensor.Array
}

func wrap(a *tensor.Array, err error) (*NdArray, error) {
	if err != nil {
		return nil, err
	}
	return &NdArray{a: a}, nil
}

// Must returns a or panics if err is non-nil.
//
//	x := ndarray.Must(ndarray.Zeros(ndarray.Shape{3, 4}))
func Must(a *NdArray, err error) *NdArray {
	if err != nil {
		panic(err)
	}
	return a
}

// Buffer returns a copy of the values in row-major order.
func (x *NdArray) Buffer() []float32 { return x.a.Buffer() }

// Shape returns a copy of the shape.
func (x *NdArray) Shape() Shape { return x.a.Shape() }

// Strides returns a copy of the row-major strides.
func (x *NdArray) Strides() []int { return x.a.Strides() }

// Len returns the number of elements.
func (x *NdArray) Len() int { return x.a.Len() }

// Rank returns the number of axes.
func (x *NdArray) Rank() int { return x.a.Rank() }

// At returns the element at a full multi-index.
func (x *NdArray) At(index ...int) (float32, error) { return x.a.At(index...) }

// Item returns the value of a one-element array.
func (x *NdArray) Item() (float32, error) { return x.a.Item() }

// String renders the array as nested brackets.
func (x *NdArray) String() string { return x.a.String() }

// Equal reports whether both arrays have the same shape and values.
func (x *NdArray) Equal(y *NdArray) bool { return x.a.Equal(y.a) }

// Map applies f to every element.
func (x *NdArray) Map(f func(float32) float32) *NdArray {
	return &NdArray{a: x.a.Map(f)}
}
