// Package mt19937 implements the MT19937 Mersenne Twister pseudorandom number
// generator of Matsumoto and Nishimura, with the 2002 seeding improvements.
//
// Output is bit-for-bit identical to the reference mt19937ar.c, so sequences
// match CPython's random module and numpy's legacy RandomState for the same
// seed. The generator is not suitable for cryptographic use.
//
// Basic usage:
//
//	g := mt19937.New(5489)
//	x := g.Uint32()
//	f := g.Float64()
package mt19937

import "errors"

const (
	n          = 624
	m          = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	// sliceSeed is the scalar seed SeedSlice starts from.
	sliceSeed = 19650218
)

// ErrEmptyKey is returned when seeding from a zero-length key slice.
var ErrEmptyKey = errors.New("mt19937: empty seed key")

// Generator is an MT19937 generator.
//
// A Generator must not be copied after first use and is not safe for
// concurrent use. Independent generators share no state.
type Generator struct {
	_ noCopy

	mt  [n]uint32
	mti int
}

// New returns a generator seeded with seed.
// This matches init_genrand(seed) and numpy.random.RandomState(seed).
func New(seed uint32) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// NewFromSlice returns a generator seeded from keys.
// This matches init_by_array(keys) and CPython's random.seed for integers.
func NewFromSlice(keys []uint32) (*Generator, error) {
	g := &Generator{}
	if err := g.SeedSlice(keys); err != nil {
		return nil, err
	}
	return g, nil
}

// Seed reinitializes the generator from a single word. Any value,
// including 0, is accepted.
func (g *Generator) Seed(seed uint32) {
	g.mt[0] = seed
	for i := 1; i < n; i++ {
		g.mt[i] = 1812433253*(g.mt[i-1]^(g.mt[i-1]>>30)) + uint32(i)
	}
	g.mti = n
}

// SeedSlice reinitializes the generator from a key slice. Keys longer than
// the state are consumed in full. An empty slice returns ErrEmptyKey and
// leaves the generator unchanged.
func (g *Generator) SeedSlice(keys []uint32) error {
	if len(keys) == 0 {
		return ErrEmptyKey
	}

	g.Seed(sliceSeed)

	i, j := 1, 0
	for k := max(n, len(keys)); k > 0; k-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * 1664525)) + keys[j] + uint32(j)
		i++
		j++
		if i >= n {
			g.mt[0] = g.mt[n-1]
			i = 1
		}
		if j >= len(keys) {
			j = 0
		}
	}
	for k := n - 1; k > 0; k-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			g.mt[0] = g.mt[n-1]
			i = 1
		}
	}

	// MSB set so the state is never all zero.
	g.mt[0] = upperMask
	g.mti = n
	return nil
}

// twist regenerates all n words of the state vector.
func (g *Generator) twist() {
	mag01 := [2]uint32{0, matrixA}

	var y uint32
	kk := 0
	for ; kk < n-m; kk++ {
		y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
		g.mt[kk] = g.mt[kk+m] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < n-1; kk++ {
		y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
		g.mt[kk] = g.mt[kk+(m-n)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (g.mt[n-1] & upperMask) | (g.mt[0] & lowerMask)
	g.mt[n-1] = g.mt[m-1] ^ (y >> 1) ^ mag01[y&1]

	g.mti = 0
}

// Uint32 returns the next 32-bit word of the sequence.
func (g *Generator) Uint32() uint32 {
	if g.mti >= n {
		g.twist()
	}

	y := g.mt[g.mti]
	g.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Float64 returns a float64 in [0, 1) with 53-bit resolution, built from two
// consecutive Uint32 draws. This matches genrand_res53 and numpy's
// random_sample().
func (g *Generator) Float64() float64 {
	a := g.Uint32() >> 5
	b := g.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Uint64 returns two consecutive Uint32 draws, the first in the high half.
// It makes *Generator a math/rand/v2 Source.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.Uint32())
	return hi<<32 | uint64(g.Uint32())
}

// noCopy lets go vet's copylocks check report copies of a Generator.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
