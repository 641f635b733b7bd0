// Package randx provides the single seeded random stream threaded through the
// generation pipeline. Every component takes a *Stream explicitly; there is no
// package-level generator, so a run is reproducible from its seed alone.
package randx

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Stream is not safe for concurrent use.
type Stream struct {
	r *rand.Rand
}

func New(seed uint64) *Stream {
	return &Stream{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform draws from [lo, hi).
func (s *Stream) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return distuv.Uniform{Min: lo, Max: hi, Src: s.r}.Rand()
}

// Normal draws from a gaussian with mean mu and standard deviation sd.
func (s *Stream) Normal(mu, sd float64) float64 {
	if sd <= 0 {
		return mu
	}
	return distuv.Normal{Mu: mu, Sigma: sd, Src: s.r}.Rand()
}

// Weighted returns an index drawn proportionally to weights.
// Weights must be non-negative with a positive sum.
func (s *Stream) Weighted(weights []float64) int {
	return int(distuv.NewCategorical(weights, s.r).Rand())
}

func (s *Stream) IntN(n int) int {
	return s.r.IntN(n)
}

func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// Pick returns a uniformly chosen element. It panics on an empty slice.
func Pick[T any](s *Stream, items []T) T {
	return items[s.IntN(len(items))]
}

// Sample returns k distinct elements in random order, or all of them
// shuffled when k >= len(items). The input is not modified.
func Sample[T any](s *Stream, items []T, k int) []T {
	out := make([]T, len(items))
	copy(out, items)
	s.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if k < len(out) {
		out = out[:k]
	}
	return out
}
