package bloom

import (
	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

// Hasher maps a key to an unsigned integer. Implementations must be
// deterministic; the filter reduces the result modulo m.
type Hasher interface {
	Sum64(data []byte) uint64
}

// HashFunc adapts an ordinary function to the Hasher interface.
type HashFunc func(data []byte) uint64

func (f HashFunc) Sum64(data []byte) uint64 {
	return f(data)
}

// Family builds k hashers that are meant to be used together in one filter.
type Family func(k uint) []Hasher

type murmur3Hasher struct {
	seed uint64
}

func (h murmur3Hasher) Sum64(data []byte) uint64 {
	return murmur3.SeedSum64(h.seed, data)
}

// Murmur3 returns a seeded 64-bit murmur3 hasher.
func Murmur3(seed uint64) Hasher {
	return murmur3Hasher{seed: seed}
}

type xxHasher struct {
	seed uint64
}

func (h xxHasher) Sum64(data []byte) uint64 {
	if h.seed == 0 {
		return xxhash.Sum64(data)
	}
	d := xxhash.NewWithSeed(h.seed)
	_, _ = d.Write(data)
	return d.Sum64()
}

// XXHash returns a seeded xxh64 hasher.
func XXHash(seed uint64) Hasher {
	return xxHasher{seed: seed}
}

// Murmur3Family returns k murmur3 hashers seeded 0..k-1.
func Murmur3Family(k uint) []Hasher {
	hs := make([]Hasher, k)
	for i := range hs {
		hs[i] = Murmur3(uint64(i))
	}
	return hs
}

// XXHashFamily returns k xxh64 hashers seeded 0..k-1.
func XXHashFamily(k uint) []Hasher {
	hs := make([]Hasher, k)
	for i := range hs {
		hs[i] = XXHash(uint64(i))
	}
	return hs
}

// doubleHasher is the i-th member of a Kirsch-Mitzenmacher family:
// h1 + i*h2 over the two halves of one 128-bit murmur3 sum.
type doubleHasher struct {
	i uint64
}

func (h doubleHasher) Sum64(data []byte) uint64 {
	h1, h2 := murmur3.Sum128(data)
	return h1 + h.i*h2
}

// DoubleHashFamily returns k hashers derived from a single 128-bit murmur3
// sum. The members are not independent functions, but the false positive
// rate stays close to that of k independent hashes.
func DoubleHashFamily(k uint) []Hasher {
	hs := make([]Hasher, k)
	for i := range hs {
		hs[i] = doubleHasher{i: uint64(i)}
	}
	return hs
}
