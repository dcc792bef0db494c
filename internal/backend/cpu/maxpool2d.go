package cpu

import (
	"github.com/chewxy/math32"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// MaxPool2D takes the maximum of every kernel x kernel window of a
// channels-last image, per channel. A non-positive stride defaults to the
// kernel size. Windows that do not fit entirely are dropped.
//
//   - input:  [H, W, C]
//   - output: [Hout, Wout, C], Hout = PoolSize(H, kernel, stride, 0)
//
// Example (2x2 pool, stride 2, one channel):
//
//	Input: [[1,2,3,4],    Output: [[6,8],
//	        [5,6,7,8],             [14,16]]
//	        [9,10,11,12],
//	        [13,14,15,16]]
func (cpu *CPUBackend) MaxPool2D(input *tensor.Array, kernel, stride int) (*tensor.Array, error) {
	if input.Rank() != 3 {
		return nil, tensor.ShapeErrorf("maxpool2d: expected input [H, W, C], got %v", input.Shape())
	}
	if kernel <= 0 {
		return nil, tensor.ShapeErrorf("maxpool2d: invalid kernel size %d", kernel)
	}
	if stride <= 0 {
		stride = kernel
	}

	h, w, c := input.Dim(0), input.Dim(1), input.Dim(2)
	hOut := PoolSize(h, kernel, stride, 0)
	wOut := PoolSize(w, kernel, stride, 0)
	out := make([]float32, hOut*wOut*c)
	data := input.Data()
	rowLen := w * c

	pool := func(start, end int) {
		for oh := start; oh < end; oh++ {
			hStart := oh * stride
			for ow := 0; ow < wOut; ow++ {
				dst := out[(oh*wOut+ow)*c : (oh*wOut+ow+1)*c]
				for ch := range dst {
					dst[ch] = math32.Inf(-1)
				}
				for kh := 0; kh < kernel; kh++ {
					// Pre-slice the window's span of this row.
					row := data[(hStart+kh)*rowLen+ow*stride*c:]
					row = row[:kernel*c]
					for i, v := range row {
						if v > dst[i%c] {
							dst[i%c] = v
						}
					}
				}
			}
		}
	}

	cfg := cpu.cfg.Parallel
	cfg.MinChunkSize = max(1, cfg.MinChunkSize/max(1, wOut*kernel*kernel*c))
	parallel.Range(hOut, pool, cfg)
	return tensor.Wrap(out, tensor.Shape{hOut, wOut, c})
}
