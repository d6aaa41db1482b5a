package field

import (
	"fmt"
	"math/big"
)

// Strengths lists the entropy sizes (in bits) accepted by BIP39.
// 128 bits = 12 words, 160 = 15, 192 = 18, 224 = 21, 256 = 24.
var Strengths = []int{128, 160, 192, 224, 256}

// The biggest primes under the powers of two matching the BIP39 strengths.
// We want a known prime as close as possible to the entropy of the seed so
// the field does not weaken the security level.
//
// Source for the primes: https://primes.utm.edu/lists/2small/
var primes = map[int]*big.Int{
	128: largestPrime(128, 159),
	160: largestPrime(160, 47),
	192: largestPrime(192, 237),
	224: largestPrime(224, 63),
	256: largestPrime(256, 189),
}

// Short string forms to avoid printing huge numbers proned to
// copy/paste mistakes.
var primeStrings = map[int]string{
	128: "2^128 - 159",
	160: "2^160 - 47",
	192: "2^192 - 237",
	224: "2^224 - 63",
	256: "2^256 - 189",
}

func largestPrime(bits uint, offset int64) *big.Int {
	p := new(big.Int).Lsh(one, bits)
	return p.Sub(p, big.NewInt(offset))
}

// ValidStrength reports whether s is one of the accepted strengths.
func ValidStrength(s int) bool {
	_, ok := primes[s]
	return ok
}

// Prime returns the field modulus for the given strength in bits. The
// returned value is a copy; the table itself is never mutated.
func Prime(strength int) (*big.Int, error) {
	p, ok := primes[strength]
	if !ok {
		return nil, fmt.Errorf("no prime for strength %d, must be one of 128, 160, 192, 224 or 256", strength)
	}
	return new(big.Int).Set(p), nil
}

// PrimeString returns the short display form of the modulus for the given
// strength ("2^256 - 189"), or the empty string if the strength is unknown.
func PrimeString(strength int) string {
	return primeStrings[strength]
}

// PrimeDisplay returns the short form of p if it is one of the table
// primes, and its decimal representation otherwise.
func PrimeDisplay(p *big.Int) string {
	for s, known := range primes {
		if known.Cmp(p) == 0 {
			return primeStrings[s]
		}
	}
	return p.String()
}
