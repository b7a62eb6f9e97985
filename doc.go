/*
Package bloom provides a Bloom filter over caller supplied hash functions.

A Bloom filter is a representation of a set of _n_ items, where the main
requirement is to make membership queries; _i.e._, whether an item is a
member of a set.

A Bloom filter has two parameters: _m_, the number of bits, and _k_, the number
of hashing functions. Here the hashing functions are given explicitly, as an
ordered list of Hasher values, so k is simply their count. A key is
represented in the filter by setting the bits at each value of the hashing
functions (modulo _m_). Set membership is done by _testing_ whether the bits at
each value of the hashing functions (again, modulo _m_) are set. If so, the
item may be in the set. If the item is actually in the set, a Bloom filter will
never fail (the true positive rate is 1.0); but it is susceptible to false
positives. The art is to choose _k_ and _m_ correctly.

Keys are []byte. To add a string item, "Love":

	n := uint(1000)
	filter, err := bloom.New(20*n, bloom.Murmur3Family(5))
	if err != nil {
		return err
	}
	filter.Insert([]byte("Love"))

Similarly, to test if "Love" is in bloom:

	if filter.ContainsKey([]byte("Love"))

For numeric data, use the encoding/binary package. For example, to add an
uint32 to the filter:

	i := uint32(100)
	n1 := make([]byte, 4)
	binary.BigEndian.PutUint32(n1, i)
	filter.Insert(n1)

Sizing is done before construction. For n elements and a target false
positive rate p:

	m, err := bloom.CalculateBitArraySize(float64(n), p)
	k, err := bloom.CalculateHashFunctionCount(math.Ceil(m), float64(n))

or in one step:

	f, err := bloom.NewWithEstimates(n, p, bloom.DoubleHashFamily)

FalsePositiveProbability evaluates the analytic model (1 - e^(-kn/m))^k.
EstimateFalsePositiveRate measures the rate of a real filter; it is
relatively expensive and only meant for validation.

A Filter is not safe for concurrent use. Back it with an AtomicBitSet to allow
concurrent inserts and queries, or wrap it in a SyncFilter when readers must
never observe a partially inserted key.
*/
package bloom
