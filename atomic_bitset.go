package bloom

import (
	"math/bits"
	"sync/atomic"
)

// AtomicBitSet is a packed BitSet whose Set and Test are safe to call from
// many goroutines at once. Setting the same bit twice is idempotent, so
// concurrent inserts never lose a bit.
type AtomicBitSet struct {
	words []atomic.Uint64
	n     uint
}

func NewAtomicBitSet() *AtomicBitSet {
	return &AtomicBitSet{}
}

func (s *AtomicBitSet) Init(length uint) BitSet {
	s.words = make([]atomic.Uint64, (length+63)/64)
	s.n = length
	return s
}

func (s *AtomicBitSet) Set(i uint) BitSet {
	w := &s.words[i/64]
	mask := uint64(1) << (i % 64)
	for {
		old := w.Load()
		if old&mask != 0 || w.CompareAndSwap(old, old|mask) {
			return s
		}
	}
}

func (s *AtomicBitSet) Test(i uint) bool {
	return s.words[i/64].Load()&(uint64(1)<<(i%64)) != 0
}

func (s *AtomicBitSet) Count() uint {
	var c int
	for i := range s.words {
		c += bits.OnesCount64(s.words[i].Load())
	}
	return uint(c)
}

func (s *AtomicBitSet) Len() uint {
	return s.n
}

func (s *AtomicBitSet) InPlaceUnion(compare BitSet) {
	c, ok := compare.(*AtomicBitSet)
	if !ok {
		unionBits(s, compare)
		return
	}
	for i := 0; i < len(s.words) && i < len(c.words); i++ {
		v := c.words[i].Load()
		if i == len(s.words)-1 {
			v &= lastWordMask(s.n)
		}
		for {
			old := s.words[i].Load()
			if old|v == old || s.words[i].CompareAndSwap(old, old|v) {
				break
			}
		}
	}
}

func (s *AtomicBitSet) Equal(c BitSet) bool {
	o, ok := c.(*AtomicBitSet)
	if !ok {
		return equalBits(s, c)
	}
	if s.n != o.n {
		return false
	}
	for i := range s.words {
		if s.words[i].Load() != o.words[i].Load() {
			return false
		}
	}
	return true
}

// lastWordMask keeps only the bits below n in the final word.
func lastWordMask(n uint) uint64 {
	if n%64 == 0 {
		return ^uint64(0)
	}
	return uint64(1)<<(n%64) - 1
}
