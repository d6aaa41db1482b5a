package main

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Matches expressions like "2^256 - 189", "2^160+1" or "2^128" with the
// spaces already stripped.
var powerExpr = regexp.MustCompile(`^2\^([0-9]+)(?:([+-])([0-9]+))?$`)

// parsePrimeExpr turns a user-supplied modulus into a big integer. Both
// plain decimal numbers and the "2^N - K" short forms printed by the split
// command are accepted; anything else is rejected rather than evaluated.
func parsePrimeExpr(expr string) (*big.Int, error) {
	s := strings.ReplaceAll(expr, " ", "")
	if s == "" {
		return nil, fmt.Errorf("empty prime expression")
	}

	if p, ok := new(big.Int).SetString(s, 10); ok {
		if p.Sign() <= 0 {
			return nil, fmt.Errorf("prime expression %q is not positive", expr)
		}
		return p, nil
	}

	m := powerExpr.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("invalid prime expression %q, use a decimal number or \"2^N - K\"", expr)
	}

	bits, err := strconv.Atoi(m[1])
	if err != nil || bits < 1 || bits > 1024 {
		return nil, fmt.Errorf("invalid exponent in prime expression %q", expr)
	}

	p := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	if m[2] != "" {
		offset, ok := new(big.Int).SetString(m[3], 10)
		if !ok {
			return nil, fmt.Errorf("invalid offset in prime expression %q", expr)
		}
		if m[2] == "-" {
			p.Sub(p, offset)
		} else {
			p.Add(p, offset)
		}
	}
	if p.Sign() <= 0 {
		return nil, fmt.Errorf("prime expression %q is not positive", expr)
	}
	return p, nil
}
