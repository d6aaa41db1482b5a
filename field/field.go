package field

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNotInvertible is returned when an element has no modular inverse.
	ErrNotInvertible = errors.New("element is not invertible")
)

var one = big.NewInt(1)

// ModInverse returns b such that a*b ≡ 1 (mod p), computed with the
// extended Euclidean algorithm. a is reduced into [0, p) first, so negative
// inputs are accepted; the result is always in [0, p).
func ModInverse(a, p *big.Int) (*big.Int, error) {
	r := new(big.Int).Mod(a, p)
	if r.Sign() == 0 {
		return nil, fmt.Errorf("%w: zero has no inverse mod %s", ErrNotInvertible, p)
	}

	b := new(big.Int).Set(p)
	x := big.NewInt(0)
	lastX := big.NewInt(1)

	for b.Sign() != 0 {
		quot := new(big.Int).Div(r, b)
		r, b = b, new(big.Int).Mod(r, b)
		x, lastX = new(big.Int).Sub(lastX, new(big.Int).Mul(quot, x)), x
	}

	// r now holds gcd(a, p); anything but 1 means a shares a factor with p.
	// Unreachable when p is prime and a is a nonzero field element.
	if r.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNotInvertible, a, p, r)
	}

	return lastX.Mod(lastX, p), nil
}

// ModDiv computes num / den modulo p, i.e. the value q such that
// den * q ≡ num (mod p). The result is normalized into [0, p).
func ModDiv(num, den, p *big.Int) (*big.Int, error) {
	inv, err := ModInverse(den, p)
	if err != nil {
		return nil, err
	}
	q := new(big.Int).Mul(num, inv)
	return q.Mod(q, p), nil
}
