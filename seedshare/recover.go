package seedshare

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/izouxv/goSeedSplit/field"
	"github.com/izouxv/goSeedSplit/mnemonic"
)

var (
	// ErrInsufficientShares is returned when fewer than two shares are supplied.
	ErrInsufficientShares = errors.New("need at least two shares")
	// ErrInconsistentShareLength is returned when the supplied share
	// phrases do not all have the same number of words.
	ErrInconsistentShareLength = errors.New("shares have different lengths")
)

// RecoverSeed reconstructs the original seed phrase from the supplied
// shares. seedStrength 0 means the seed was as strong as the shares; a nil
// prime selects the table modulus for the shares' strength.
//
// The share phrases are decoded at the seed's strength, mirroring how the
// generator encoded the secret; changing this coupling changes which share
// sets are recoverable.
//
// Supplying fewer than the generation minimum (or shares from different
// sets) is not reliably detected: the interpolation still yields a field
// element, and the only signal is mnemonic.ErrOverflow when that element
// happens not to fit the seed width. A numerically valid but wrong phrase
// is possible.
func RecoverSeed(shares []Share, seedStrength int, prime *big.Int) (string, error) {
	if len(shares) < 2 {
		return "", fmt.Errorf("%w, got %d", ErrInsufficientShares, len(shares))
	}

	words := mnemonic.WordCount(shares[0].Phrase)
	for _, s := range shares[1:] {
		if n := mnemonic.WordCount(s.Phrase); n != words {
			return "", fmt.Errorf("%w: share %d has %d words, share %d has %d words",
				ErrInconsistentShareLength, shares[0].Index, words, s.Index, n)
		}
	}

	shareStrength, err := mnemonic.StrengthForWords(words)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if seedStrength == 0 {
		// if not told otherwise, assume the seed's strength is the same
		// as the shares'
		seedStrength = shareStrength
	} else if !mnemonic.ValidStrength(seedStrength) {
		return "", fmt.Errorf("%w: seed strength %d, must be one of 128, 160, 192, 224 or 256", ErrConfiguration, seedStrength)
	}
	if prime == nil {
		prime, err = field.Prime(shareStrength)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
	}

	points := make([]field.Point, len(shares))
	for i, s := range shares {
		y, err := mnemonic.ToInt(s.Phrase, seedStrength)
		if err != nil {
			return "", err
		}
		points[i] = field.Point{X: big.NewInt(int64(s.Index)), Y: y}
	}

	value, err := field.InterpolateAtZero(points, prime)
	if err != nil {
		return "", err
	}

	phrase, err := mnemonic.FromInt(value, seedStrength)
	if err != nil {
		if errors.Is(err, mnemonic.ErrOverflow) {
			return "", fmt.Errorf("failed to recover the seed phrase, check that you have at least the minimum number of shares: %w", err)
		}
		return "", err
	}
	return phrase, nil
}
