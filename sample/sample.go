// Package sample draws derived values from an MT19937 generator.
// Conventions follow numpy.random.RandomState where numpy defines them, so
// a generator seeded like a RandomState reproduces its draws.
package sample

import (
	"math"

	"github.com/nozzle/mt19937"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform returns a float64 in [low, high).
// This matches numpy.random.uniform(low, high).
func Uniform(g *mt19937.Generator, low, high float64) float64 {
	return low + (high-low)*g.Float64()
}

// UniformFloat32 returns a float32 in [low, high).
func UniformFloat32(g *mt19937.Generator, low, high float32) float32 {
	return float32(Uniform(g, float64(low), float64(high)))
}

// Float32 returns a float32 in [0, 1).
func Float32(g *mt19937.Generator) float32 {
	return float32(g.Float64())
}

// Int32 returns an int32 over the full int32 range.
// This matches numpy.random.RandomState.randint(INT32_MIN, INT32_MAX+1),
// which shifts a raw word down by 2^31.
func Int32(g *mt19937.Generator) int32 {
	return int32(g.Uint32() - 0x80000000)
}

// Intn returns an int in [0, n). It returns 0 for n <= 1 without drawing.
//
// Draws are masked to the smallest covering power of two and rejected
// until they fall in range, as numpy's legacy bounded integers do, so
// there is no modulo bias.
func Intn(g *mt19937.Generator, n int) int {
	if n <= 1 {
		return 0
	}
	hi := uint64(n - 1)

	mask := hi
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	mask |= mask >> 32

	if hi <= math.MaxUint32 {
		m32 := uint32(mask)
		for {
			if v := g.Uint32() & m32; uint64(v) <= hi {
				return int(v)
			}
		}
	}
	for {
		if v := g.Uint64() & mask; v <= hi {
			return int(v)
		}
	}
}

// Shuffle pseudo-randomly permutes n elements using swap, walking from the
// last element down like numpy's legacy shuffle.
func Shuffle(g *mt19937.Generator, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, Intn(g, i+1))
	}
}

// ShuffleInt32 permutes arr in place.
func ShuffleInt32(g *mt19937.Generator, arr []int32) {
	Shuffle(g, len(arr), func(i, j int) {
		arr[i], arr[j] = arr[j], arr[i]
	})
}

// Normal returns a normally distributed value with mean mu and standard
// deviation sigma, drawn through gonum's distuv with g as the source.
func Normal(g *mt19937.Generator, mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: g}.Rand()
}

// Exponential returns an exponentially distributed value with the given rate.
func Exponential(g *mt19937.Generator, rate float64) float64 {
	return distuv.Exponential{Rate: rate, Src: g}.Rand()
}
