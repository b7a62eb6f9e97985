package bloom

import (
	"encoding/binary"
	"fmt"
	"math"
)

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// CalculateBitArraySize returns the optimal number of bits for numElements
// keys at the given false positive rate:
//
//	m = -(n * ln p) / (ln 2)^2
//
// The result is not rounded.
func CalculateBitArraySize(numElements, falsePositiveRate float64) (float64, error) {
	if !finite(numElements) || numElements <= 0 {
		return 0, fmt.Errorf("%w: number of elements must be positive, got %v", ErrInvalidConfiguration, numElements)
	}
	if !(falsePositiveRate > 0 && falsePositiveRate < 1) {
		return 0, fmt.Errorf("%w: false positive rate must be in (0, 1), got %v", ErrInvalidConfiguration, falsePositiveRate)
	}
	return -(numElements * math.Log(falsePositiveRate)) / (math.Ln2 * math.Ln2), nil
}

// CalculateHashFunctionCount returns the optimal number of hash functions,
// (m/n) * ln 2, rounded to the nearest integer and never less than one.
func CalculateHashFunctionCount(m, n float64) (uint, error) {
	if !finite(m) || m <= 0 {
		return 0, fmt.Errorf("%w: bit array size must be positive, got %v", ErrInvalidConfiguration, m)
	}
	if !finite(n) || n <= 0 {
		return 0, fmt.Errorf("%w: number of elements must be positive, got %v", ErrInvalidConfiguration, n)
	}
	return uint(math.Max(1, math.Round(m/n*math.Ln2))), nil
}

// EstimateParameters estimates requirements for m and k.
func EstimateParameters(n uint, p float64) (m uint, k uint, err error) {
	mf, err := CalculateBitArraySize(float64(n), p)
	if err != nil {
		return 0, 0, err
	}
	m = uint(math.Ceil(mf))
	k, err = CalculateHashFunctionCount(float64(m), float64(n))
	if err != nil {
		return 0, 0, err
	}
	return m, k, nil
}

// NewWithEstimates creates a new Bloom filter for about n items with fp
// false positive rate, taking its k hashers from family.
func NewWithEstimates(n uint, fp float64, family Family, opts ...Option) (*Filter, error) {
	m, k, err := EstimateParameters(n, fp)
	if err != nil {
		return nil, err
	}
	return New(m, family(k), opts...)
}

// FalsePositiveProbability is the standard approximation of the false
// positive rate for m bits, k hash functions and n inserted keys:
//
//	p = (1 - e^(-kn/m))^k
func FalsePositiveProbability(m, k, n uint) float64 {
	if m == 0 {
		return 1
	}
	return math.Pow(1-math.Exp(-float64(k)*float64(n)/float64(m)), float64(k))
}

// EstimateFalsePositiveRate inserts n integer keys into f and returns the
// fraction of 100000 other integer keys it wrongly reports as present.
// This is an empirical, relatively slow test, useful to validate a choice
// of m and hashers. f should be freshly constructed.
func EstimateFalsePositiveRate(f *Filter, n uint) (fpRate float64) {
	rounds := uint32(100000)
	n1 := make([]byte, 4)
	// We populate the filter with n values.
	for i := uint32(0); i < uint32(n); i++ {
		binary.BigEndian.PutUint32(n1, i)
		f.Insert(n1)
	}
	fp := 0
	// test for number of rounds
	for i := uint32(0); i < rounds; i++ {
		binary.BigEndian.PutUint32(n1, i+uint32(n)+1)
		if f.ContainsKey(n1) {
			fp++
		}
	}
	fpRate = float64(fp) / (float64(rounds))
	return
}
