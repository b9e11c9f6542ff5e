// Package random implements a small deterministic linear congruential
// generator and a few seeded selection helpers built on it.
//
// The default generator works over the full 64-bit ring:
//
//	state' = Multiplier*state + Increment (mod 2^64)
//
// Floats are the top 53 bits of the new state divided by 2^53. Bounded
// integers are min + rotl64(state, 32) % (max-min+1), so that the well mixed
// high half of the state drives the low digits of small ranges. A Generator
// is not safe for concurrent use; wrap it in a Locked to share a stream.
package random

import (
	"fmt"
	"math"
	"math/bits"
)

// Knuth MMIX constants. With an odd increment and Multiplier-1 divisible by
// 4 the period is the full 2^64, so the default generator has no fixed point.
const (
	Multiplier uint64 = 6364136223846793005
	Increment  uint64 = 1442695040888963407
)

// Park-Miller "minimal standard" constants.
const (
	MinStdMultiplier int64 = 16807
	MinStdModulus    int64 = 1<<31 - 1
)

type Generator struct {
	state int64
	a     uint64
	c     uint64
	m     uint64 // 0 is the implicit 2^64
	draws uint64
}

// New returns a generator over the 64-bit ring seeded with seed. Every seed,
// including 0 and negative values, is valid.
func New(seed int64) *Generator {
	return &Generator{state: seed, a: Multiplier, c: Increment}
}

// NewMinStd returns a Park-Miller generator (a=16807, c=0, m=2^31-1). Its
// float stream matches the classic float-scaled MinStd generators; integer
// draws use the modulo mapping of NextInt64, not float scaling, so they differ.
// Seeds that are a multiple of the modulus reduce to 0, which is a fixed
// point: every draw after it is 0.
func NewMinStd(seed int64) *Generator {
	g, _ := NewCustom(seed, MinStdMultiplier, 0, MinStdModulus)
	return g
}

// NewCustom returns a generator with an explicit multiplier, increment and
// modulus. The seed is reduced into [0, m) first.
func NewCustom(seed, a, c, m int64) (*Generator, error) {
	if m <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidModulus, m)
	}
	if a < 0 || c < 0 {
		return nil, fmt.Errorf("%w: a=%d c=%d", ErrInvalidParams, a, c)
	}
	g := &Generator{a: uint64(a), c: uint64(c), m: uint64(m)}
	g.state = g.reduce(seed)
	return g, nil
}

func (g *Generator) reduce(seed int64) int64 {
	if g.m == 0 {
		return seed
	}
	r := seed % int64(g.m)
	if r < 0 {
		r += int64(g.m)
	}
	return r
}

// step advances the recurrence once and returns the new raw state.
func (g *Generator) step() int64 {
	g.draws++
	if g.m == 0 {
		g.state = int64(g.a*uint64(g.state) + g.c)
		return g.state
	}
	// a, c < 2^63 and state < m, so the 128-bit sum cannot carry out of hi.
	hi, lo := bits.Mul64(g.a, uint64(g.state))
	lo, carry := bits.Add64(lo, g.c, 0)
	hi += carry
	_, rem := bits.Div64(hi%g.m, lo, g.m)
	g.state = int64(rem)
	return g.state
}

// NextFloat64 advances the generator and returns a value in [0.0, 1.0).
func (g *Generator) NextFloat64() float64 {
	x := uint64(g.step())
	if g.m == 0 {
		return float64(x>>11) / (1 << 53)
	}
	f := float64(x) / float64(g.m)
	if f >= 1 {
		// rounding, only reachable for moduli above 2^53
		f = math.Nextafter(1, 0)
	}
	return f
}

// NextFloat32 is NextFloat64 narrowed to float32, still below 1.0.
func (g *Generator) NextFloat32() float32 {
	f := float32(g.NextFloat64())
	if f >= 1 {
		f = math.Nextafter32(1, 0)
	}
	return f
}

// NextInt64 advances the generator and returns a value in [min, max].
// If min > max it returns ErrInvalidRange and the state is left untouched.
func (g *Generator) NextInt64(min, max int64) (int64, error) {
	if min > max {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	x := uint64(g.step())
	if g.m == 0 {
		x = bits.RotateLeft64(x, 32)
	}
	width := uint64(max) - uint64(min) + 1
	if width == 0 {
		return int64(x), nil
	}
	return int64(uint64(min) + x%width), nil
}

// NextInt32 is NextInt64 for int32 bounds.
func (g *Generator) NextInt32(min, max int32) (int32, error) {
	v, err := g.NextInt64(int64(min), int64(max))
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// Intn returns a value in [0, n). It returns 0 without advancing when n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, _ := g.NextInt64(0, int64(n)-1)
	return int(v)
}

// Uint64 returns the next raw state. For custom moduli it lies in [0, m).
func (g *Generator) Uint64() uint64 {
	return uint64(g.step())
}

// Int63 returns a non-negative 63-bit value, making Generator a rand.Source.
func (g *Generator) Int63() int64 {
	if g.m == 0 {
		return int64(uint64(g.step()) >> 1)
	}
	return g.step()
}

// Seed resets the generator to seed and clears the draw counter.
func (g *Generator) Seed(seed int64) {
	g.state = g.reduce(seed)
	g.draws = 0
}

// Draws reports how many times the generator has advanced since it was
// created or last seeded.
func (g *Generator) Draws() uint64 {
	return g.draws
}
