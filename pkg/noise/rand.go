package noise

import "math/rand/v2"

// Source is the random stream used for stochastic texture terms.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic PCG-backed source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// Derive returns a new seed for a named sub-stream so that independent
// generators fed from one seed do not share a sequence.
func Derive(seed uint64, stream string) uint64 {
	h := seed ^ 0xCBF29CE484222325
	for i := 0; i < len(stream); i++ {
		h ^= uint64(stream[i])
		h *= 0x100000001B3
	}
	// SplitMix64 finaliser
	h = (h ^ (h >> 30)) * 0xBF58476D1CE4E5B9
	h = (h ^ (h >> 27)) * 0x94D049BB133111EB
	return h ^ (h >> 31)
}

// Jitter returns a uniform value in [-amp, amp).
func Jitter(src Source, amp float64) float64 {
	return (src.Float64()*2 - 1) * amp
}

// Constant is a Source that always returns the same value. Constant(0.5)
// turns every Jitter into zero, which disables noise terms.
type Constant float64

// Float64 implements Source.
func (c Constant) Float64() float64 {
	return float64(c)
}
