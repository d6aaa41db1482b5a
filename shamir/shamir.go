package shamir

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/izouxv/goSeedSplit/field"
)

// Share represents one point of a split secret.
type Share struct {
	X *big.Int
	Y *big.Int
}

// Split takes a secret and splits it into n shares, with a threshold of t.
// The arithmetic is performed modulo the given prime.
//
// A random polynomial of degree t-1 is built with the secret as its
// constant term:
//
//	f(x) = secret + a_1*x + ... + a_{t-1}*x^{t-1}
//
// and evaluated at x = 1, 2, ..., n. x = 0 is reserved for the secret
// itself and is never distributed. The higher coefficients are as
// sensitive as the secret and are drawn from crypto/rand, never a seeded
// generator.
func Split(secret *big.Int, n, t int, prime *big.Int) ([]*Share, error) {
	if t <= 1 || n < t {
		return nil, fmt.Errorf("invalid parameters: n must be >= t and t must be > 1")
	}

	coeffMax := new(big.Int).Sub(prime, big.NewInt(1))
	coeffs := make([]*big.Int, t)
	coeffs[0] = secret
	for i := 1; i < t; i++ {
		c, err := rand.Int(rand.Reader, coeffMax)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	shares := make([]*Share, n)
	for i := 1; i <= n; i++ {
		x := big.NewInt(int64(i))
		shares[i-1] = &Share{X: x, Y: evalAt(coeffs, x, prime)}
	}

	return shares, nil
}

// evalAt evaluates the polynomial at x with Horner's rule, reducing modulo
// the prime at every step so intermediate values never outgrow the field.
func evalAt(coeffs []*big.Int, x, prime *big.Int) *big.Int {
	accum := new(big.Int)
	for i := len(coeffs) - 1; i >= 0; i-- {
		accum.Mul(accum, x)
		accum.Add(accum, coeffs[i])
		accum.Mod(accum, prime)
	}
	return accum
}

// Combine takes a list of shares and reconstructs the secret, which is the
// polynomial's value at x = 0. At least t distinct shares are needed to
// get the original secret back; with fewer the interpolation still yields
// a value, just not the right one.
func Combine(shares []*Share, prime *big.Int) (*big.Int, error) {
	points := make([]field.Point, len(shares))
	for i, s := range shares {
		points[i] = field.Point{X: s.X, Y: s.Y}
	}
	return field.InterpolateAtZero(points, prime)
}
