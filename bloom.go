package bloom

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// A Filter is a representation of a set of _n_ items, where the main
// requirement is to make membership queries; _i.e._, whether an item is a
// member of a set.
type Filter struct {
	m       uint
	hashers []Hasher
	b       BitSet
	log     *zap.Logger
}

// New creates a Bloom filter with m bits and one hashing function per
// element of hashers. The hashers are applied in the given order on every
// operation. m must be positive and hashers must be non-empty.
func New(m uint, hashers []Hasher, opts ...Option) (*Filter, error) {
	if m == 0 {
		return nil, fmt.Errorf("%w: bit array size must be positive", ErrInvalidConfiguration)
	}
	if len(hashers) == 0 {
		return nil, fmt.Errorf("%w: at least one hash function is required", ErrInvalidConfiguration)
	}
	for i, h := range hashers {
		if h == nil {
			return nil, fmt.Errorf("%w: hash function %d is nil", ErrInvalidConfiguration, i)
		}
	}
	o := newOptions(opts...)
	f := &Filter{
		m:       m,
		hashers: append([]Hasher(nil), hashers...),
		b:       o.bitSet.Init(m),
		log:     o.log,
	}
	return f, nil
}

// location returns the bit position of key under the ith hasher.
func (f *Filter) location(key []byte, i int) uint {
	return uint(f.hashers[i].Sum64(key) % uint64(f.m))
}

// Cap returns the capacity, _m_, of a Bloom filter
func (f *Filter) Cap() uint {
	return f.m
}

// K returns the number of hash functions used in the Filter
func (f *Filter) K() uint {
	return uint(len(f.hashers))
}

// BitSet returns the underlying bitset for this filter.
func (f *Filter) BitSet() BitSet {
	return f.b
}

// Insert adds key to the filter. Any key is valid, including an empty one.
func (f *Filter) Insert(key []byte) {
	var locs []uint
	ce := f.log.Check(zapcore.DebugLevel, "bloom insert")
	if ce != nil {
		locs = make([]uint, 0, len(f.hashers))
	}
	for i := range f.hashers {
		l := f.location(key, i)
		f.b.Set(l)
		if ce != nil {
			locs = append(locs, l)
		}
	}
	if ce != nil {
		ce.Write(zap.Int("keyLen", len(key)), zap.Uints("locations", locs), zap.Uint("setBits", f.b.Count()))
	}
}

// InsertString adds a string key to the filter.
func (f *Filter) InsertString(key string) {
	f.Insert([]byte(key))
}

// ContainsKey returns true if key may be in the filter, false if it is
// definitely not. A true result may be a false positive; a key that was
// inserted always reports true.
func (f *Filter) ContainsKey(key []byte) bool {
	for i := range f.hashers {
		if !f.b.Test(f.location(key, i)) {
			return false
		}
	}
	return true
}

// ContainsString is ContainsKey for a string key.
func (f *Filter) ContainsString(key string) bool {
	return f.ContainsKey([]byte(key))
}

// Locations returns the k bit positions for key, in hasher order.
func (f *Filter) Locations(key []byte) []uint64 {
	locs := make([]uint64, len(f.hashers))
	for i := range f.hashers {
		locs[i] = uint64(f.location(key, i))
	}
	return locs
}

// ContainsLocations returns true if all locations are set in the Filter, false
// otherwise. Each location is reduced modulo m first.
func (f *Filter) ContainsLocations(locs []uint64) bool {
	for i := 0; i < len(locs); i++ {
		if !f.b.Test(uint(locs[i] % uint64(f.m))) {
			return false
		}
	}
	return true
}

// TestAndInsert is the equivalent to calling ContainsKey(key) then Insert(key).
// Returns the result of the test.
func (f *Filter) TestAndInsert(key []byte) bool {
	present := true
	for i := range f.hashers {
		l := f.location(key, i)
		if !f.b.Test(l) {
			present = false
		}
		f.b.Set(l)
	}
	return present
}

// TestOrInsert is the equivalent to calling ContainsKey(key) then, if not
// present, Insert(key). Only the missing bits are written.
// Returns the result of the test.
func (f *Filter) TestOrInsert(key []byte) bool {
	present := true
	for i := range f.hashers {
		l := f.location(key, i)
		if !f.b.Test(l) {
			present = false
			f.b.Set(l)
		}
	}
	return present
}

// ApproximatedSize approximates the number of items
// https://en.wikipedia.org/wiki/Bloom_filter#Approximating_the_number_of_items_in_a_Bloom_filter
func (f *Filter) ApproximatedSize() uint32 {
	x := float64(f.b.Count())
	m := float64(f.Cap())
	k := float64(f.K())
	if x >= m {
		return math.MaxUint32
	}
	size := -1 * m / k * math.Log(1-x/m)
	return uint32(math.Floor(size + 0.5)) // round
}

// FalsePositiveRate is the modelled false positive probability of this
// filter once n distinct keys have been inserted.
func (f *Filter) FalsePositiveRate(n uint) float64 {
	return FalsePositiveProbability(f.m, f.K(), n)
}

// Merge sets in f every bit set in g. Both filters must have the same m and
// k; it is the caller's job to make sure they also use the same hashers.
func (f *Filter) Merge(g *Filter) error {
	if f.m != g.m || f.K() != g.K() {
		return fmt.Errorf("%w: m=%d k=%d vs m=%d k=%d", ErrIncompatibleFilters, f.m, f.K(), g.m, g.K())
	}
	f.b.InPlaceUnion(g.b)
	return nil
}

// Equal tests for the equality of two Bloom filters
func (f *Filter) Equal(g *Filter) bool {
	return f.m == g.m && f.K() == g.K() && f.b.Equal(g.b)
}
