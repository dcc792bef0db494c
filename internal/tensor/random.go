package tensor

import (
	"math"
	"math/rand/v2"

	"github.com/chewxy/math32"
)

const twoPi = float32(2 * math.Pi)

// Source produces uniform pseudo-random float32 values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float32() float32
}

// NewSource returns a deterministic source seeded with seed.
// Note: Uses math/rand (not crypto/rand) - appropriate for statistical fills.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // G404: not security sensitive
}

// NewRandomSource returns a source seeded from the runtime's entropy.
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // G404: not security sensitive
}

// NormalSampler draws normally distributed values with the Box-Muller
// transform, one value per pair of uniform draws.
type NormalSampler struct {
	Mean float32
	Std  float32
	src  Source
}

// NewNormalSampler creates a sampler over src.
func NewNormalSampler(src Source, mean, std float32) *NormalSampler {
	return &NormalSampler{Mean: mean, Std: std, src: src}
}

// Next returns the next sample.
func (n *NormalSampler) Next() float32 {
	u := 1 - n.src.Float32() // (0, 1], keeps the log finite
	v := n.src.Float32()
	z := math32.Sqrt(-2*math32.Log(u)) * math32.Cos(twoPi*v)
	return z*n.Std + n.Mean
}

// NormalSamples returns n samples of N(mean, std^2) as a flat slice.
func NormalSamples(n int, mean, std float32, src Source) []float32 {
	sampler := NewNormalSampler(src, mean, std)
	out := make([]float32, n)
	for i := range out {
		out[i] = sampler.Next()
	}
	return out
}
