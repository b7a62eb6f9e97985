package bloom

import (
	"github.com/bits-and-blooms/bitset"
)

// MemoryBitSet is a packed in-process BitSet. It is the default storage of a
// Filter and is not safe for concurrent writers.
type MemoryBitSet struct {
	b *bitset.BitSet
	n uint
}

// NewMemoryBitSet returns an uninitialized MemoryBitSet; the Filter sizes it.
func NewMemoryBitSet() *MemoryBitSet {
	return &MemoryBitSet{}
}

func (s *MemoryBitSet) Init(length uint) BitSet {
	s.b = bitset.New(length)
	s.n = length
	return s
}

func (s *MemoryBitSet) Set(i uint) BitSet {
	s.b.Set(i)
	return s
}

func (s *MemoryBitSet) Test(i uint) bool {
	return s.b.Test(i)
}

func (s *MemoryBitSet) Count() uint {
	return s.b.Count()
}

func (s *MemoryBitSet) Len() uint {
	return s.n
}

func (s *MemoryBitSet) InPlaceUnion(compare BitSet) {
	if c, ok := compare.(*MemoryBitSet); ok {
		s.b.InPlaceUnion(c.b)
		return
	}
	unionBits(s, compare)
}

func (s *MemoryBitSet) Equal(c BitSet) bool {
	if o, ok := c.(*MemoryBitSet); ok {
		return s.n == o.n && s.b.Equal(o.b)
	}
	return equalBits(s, c)
}

// unionBits sets in dst every bit set in src, for bit sets of mixed kinds.
func unionBits(dst, src BitSet) {
	n := min(dst.Len(), src.Len())
	for i := uint(0); i < n; i++ {
		if src.Test(i) {
			dst.Set(i)
		}
	}
}

func equalBits(a, b BitSet) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := uint(0); i < a.Len(); i++ {
		if a.Test(i) != b.Test(i) {
			return false
		}
	}
	return true
}
