/*
 * rng.go, part of gochem.
 */

package mcstep

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source is the single seam through which the rigid-body move and the
// step driver draw randomness. Kernels never call math/rand directly, so
// a caller can swap in a deterministic or otherwise-sourced generator
// without touching move code.
type Source interface {
	// Uniform returns a value drawn uniformly from [lo, hi).
	Uniform(lo, hi float64) float64
}

type distUniformSource struct {
	u distuv.Uniform
}

// mathRandSource adapts *math/rand.Rand to the rand.Source interface
// expected by gonum's distuv package.
type mathRandSource struct {
	rng *rand.Rand
}

func (s mathRandSource) Uint64() uint64   { return s.rng.Uint64() }
func (s mathRandSource) Seed(seed uint64) { s.rng.Seed(int64(seed)) }

// NewSource returns a Source backed by distuv.Uniform over [0,1), rescaled
// per call. A nil rng leaves distuv's Src unset, so draws come from the
// package-level generator of golang.org/x/exp/rand, not from math/rand.
func NewSource(rng *rand.Rand) Source {
	var src distUniformSource
	src.u = distuv.Uniform{Min: 0, Max: 1}
	if rng != nil {
		src.u.Src = mathRandSource{rng: rng}
	}
	return src
}

func (s distUniformSource) Uniform(lo, hi float64) float64 {
	return lo + s.u.Rand()*(hi-lo)
}

// UniformInt returns an integer drawn uniformly from [lo, hi), truncating
// rather than rounding, matching int(randomReal(lo,hi)) in the original.
func UniformInt(s Source, lo, hi int) int {
	return lo + int(s.Uniform(0, float64(hi-lo)))
}
