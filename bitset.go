package bloom

// BitSet is the bit storage behind a Filter. Bits only ever go from 0 to 1;
// there is no way to clear a bit once it is set.
type BitSet interface {
	// Init allocates the bit set for length bits, all unset.
	Init(length uint) BitSet
	// Set bit i to 1.
	// If i >= Len(), the behaviour is implementation defined; a Filter
	// never asks for such a bit.
	Set(i uint) BitSet
	// Test whether bit i is set.
	Test(i uint) bool
	// Count (number of set bits).
	// Also known as "popcount" or "population count".
	Count() uint
	// Len returns the number of bits the set was initialized with.
	Len() uint
	// InPlaceUnion creates the destructive union of base set and compare set.
	// This is the BitSet equivalent of | (or).
	InPlaceUnion(compare BitSet)
	// Equal tests the equivalence of two BitSets.
	// False if they are of different sizes, otherwise true
	// only if all the same bits are set
	Equal(c BitSet) bool
}
