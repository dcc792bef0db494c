// Package cpu implements the array operations of the ndarray engine on the CPU.
package cpu

import (
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Config controls how the CPU backend executes kernels.
type Config struct {
	Parallel parallel.Config
	// BLAS routes float32 matrix multiplication through gonum's Gemm instead
	// of the generic k-ordered loop.
	BLAS bool
}

// DefaultConfig returns the default backend configuration.
func DefaultConfig() Config {
	return Config{Parallel: parallel.DefaultConfig()}
}

// CPUBackend implements array operations on CPU.
//
// Every operation reads its inputs and returns a newly allocated result; inputs
// are never modified, so a backend may be shared between goroutines.
type CPUBackend struct {
	cfg Config
}

// New creates a new CPU backend with the default configuration.
func New() *CPUBackend {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit configuration.
func NewWithConfig(cfg Config) *CPUBackend {
	return &CPUBackend{cfg: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Config returns the backend configuration.
func (cpu *CPUBackend) Config() Config {
	return cpu.cfg
}

// result allocates an output array with the shape of x.
func result(x *tensor.Array) []float32 {
	return make([]float32, x.Len())
}

// wrap builds the output array; shape and length are consistent by
// construction in every caller.
func wrap(data []float32, shape tensor.Shape) *tensor.Array {
	out, err := tensor.Wrap(data, shape)
	if err != nil {
		panic(err)
	}
	return out
}
