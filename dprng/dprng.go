// Package dprng implements a deterministic pseudo-random number generator.
//
// The seed is expanded with the splitmix64 finalizer and the state is advanced
// with xorshift64* (shifts 12/25/27, multiplier 0x2545F4914F6CDD1D). Both steps
// are fixed: the same seed produces the same sequence on every platform.
//
// A Generator is not safe for concurrent use. Give each goroutine its own
// instance or wrap a shared one in Locked.
package dprng

import (
	"encoding/binary"
	"github.com/fernandosanchezjr/godprng/utils"
	"math"
	"math/bits"
)

const (
	GoldenGamma = 0x9E3779B97F4A7C15
	Multiplier  = 0x2545F4914F6CDD1D

	// ZeroStateSubstitute replaces a seed whose expansion is zero.
	ZeroStateSubstitute = GoldenGamma
)

type Generator struct {
	state uint64
}

func New(seed uint64) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// NewRandom seeds from the current time and process id.
func NewRandom() *Generator {
	return New(utils.EntropySeed())
}

func expand(seed uint64) uint64 {
	z := seed + GoldenGamma
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (g *Generator) Seed(seed uint64) {
	g.state = expand(seed)
	if g.state == 0 {
		g.state = ZeroStateSubstitute
	}
}

func (g *Generator) State() uint64 {
	return g.state
}

// Next advances the state and returns the raw 64-bit output.
func (g *Generator) Next() uint64 {
	x := g.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	g.state = x
	return x * Multiplier
}

// uint64n returns a uniform value in [0, n) for n > 0.
// https://arxiv.org/abs/1805.10941
func (g *Generator) uint64n(n uint64) uint64 {
	hi, lo := bits.Mul64(g.Next(), n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul64(g.Next(), n)
		}
	}
	return hi
}

// NextInt returns a uniform integer in [min, max].
func (g *Generator) NextInt(min, max int64) (int64, error) {
	if min > max {
		return 0, intRangeError(min, max)
	}
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int64(g.Next()), nil
	}
	return int64(uint64(min) + g.uint64n(span+1)), nil
}

func (g *Generator) Intn(n int) int {
	if n <= 0 {
		panic("dprng: invalid argument to Intn")
	}
	return int(g.uint64n(uint64(n)))
}

// Float64 returns a value in [0, 1) built from the top 53 bits of a raw draw.
func (g *Generator) Float64() float64 {
	return float64(g.Next()>>11) * (1.0 / (1 << 53))
}

// NextDouble returns a value in [min, max), or min when both bounds are equal.
func (g *Generator) NextDouble(min, max float64) (float64, error) {
	if !(min <= max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return 0, doubleRangeError(min, max)
	}
	if min == max {
		return min, nil
	}
	f := g.Float64()
	var result float64
	if width := max - min; !math.IsInf(width, 0) {
		result = min + f*width
	} else {
		result = min*(1-f) + max*f
	}
	if result >= max {
		result = math.Nextafter(max, min)
	}
	if result < min {
		result = min
	}
	return result, nil
}

// NextBytes draws ceil(count/8) raw outputs and returns their little-endian
// bytes, dropping the unused tail of the last draw.
func (g *Generator) NextBytes(count int) []byte {
	if count <= 0 {
		return []byte{}
	}
	buf := make([]byte, count)
	g.fill(buf)
	return buf
}

func (g *Generator) fill(buf []byte) {
	var word [8]byte
	for len(buf) >= 8 {
		binary.LittleEndian.PutUint64(buf, g.Next())
		buf = buf[8:]
	}
	if len(buf) > 0 {
		binary.LittleEndian.PutUint64(word[:], g.Next())
		copy(buf, word[:])
	}
}
