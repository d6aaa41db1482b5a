package field

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInsufficientPoints is returned when fewer than two points are given.
	ErrInsufficientPoints = errors.New("need at least two points to interpolate")
	// ErrDuplicatePoint is returned when two points share the same x value.
	ErrDuplicatePoint = errors.New("interpolation points must be distinct")
)

// Point is an (x, y) evaluation of a polynomial over the field.
type Point struct {
	X *big.Int
	Y *big.Int
}

// InterpolateAtZero reconstructs f(0) from k points of a polynomial f of
// degree up to k-1 over the prime field p, using Lagrange interpolation.
//
// Per-term numerators and denominators are combined over one shared
// denominator so that every division happens in the field rather than as
// an inexact integer division. The result is normalized into [0, p).
func InterpolateAtZero(points []Point, p *big.Int) (*big.Int, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrInsufficientPoints, len(points))
	}
	seen := make(map[string]struct{}, len(points))
	for _, pt := range points {
		key := pt.X.String()
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: x = %s appears twice", ErrDuplicatePoint, pt.X)
		}
		seen[key] = struct{}{}
	}

	k := len(points)
	nums := make([]*big.Int, k)
	dens := make([]*big.Int, k)
	for i := range points {
		num := big.NewInt(1)
		den := big.NewInt(1)
		for j := range points {
			if j == i {
				continue
			}
			// numerator term: (0 - x_j), denominator term: (x_i - x_j)
			num.Mul(num, new(big.Int).Neg(points[j].X))
			den.Mul(den, new(big.Int).Sub(points[i].X, points[j].X))
		}
		nums[i] = num
		dens[i] = den
	}

	den := big.NewInt(1)
	for _, d := range dens {
		den.Mul(den, d)
	}

	sum := new(big.Int)
	for i := range points {
		term := new(big.Int).Mul(nums[i], den)
		term.Mul(term, points[i].Y)
		term.Mod(term, p)
		q, err := ModDiv(term, dens[i], p)
		if err != nil {
			return nil, err
		}
		sum.Add(sum, q)
	}

	return ModDiv(sum, den, p)
}
