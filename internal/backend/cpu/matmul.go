package cpu

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/matops"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// MatMul performs matrix multiplication.
//
// Supports:
//   - 2D @ 2D: [M, K] @ [K, N] -> [M, N]
//   - 1D @ 1D: inner product -> [1]
//
// Other rank combinations return ErrNotImplemented; mismatched inner
// dimensions return ErrShape.
func (cpu *CPUBackend) MatMul(a, b *tensor.Array) (*tensor.Array, error) {
	m, k, n, err := matops.Dims(a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}

	outShape := tensor.Shape{m, n}
	if a.Rank() == 1 {
		outShape = tensor.Shape{1}
	}
	out := make([]float32, m*n)
	ad, bd := a.Data(), b.Data()

	if cpu.cfg.BLAS {
		klog.V(4).InfoS("matmul via blas", "m", m, "k", k, "n", n)
		matops.Gemm32(out, ad, bd, m, k, n)
		return wrap(out, outShape), nil
	}

	// Rows are independent; each worker writes its own rows of out.
	// MinChunkSize counts multiply-adds, so convert it to rows.
	cfg := cpu.cfg.Parallel
	if work := k * n; work > 0 {
		cfg.MinChunkSize = max(1, cfg.MinChunkSize/work)
	}
	parallel.For(m, func(i int) {
		matops.Row(out, ad, bd, k, n, i)
	}, cfg)
	return wrap(out, outShape), nil
}
