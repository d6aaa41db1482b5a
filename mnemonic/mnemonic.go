// Package mnemonic bridges field elements and BIP39 seed phrases. The
// wordlist and checksum handling are delegated to an existing audited
// implementation; this package only converts between integers and the
// fixed-width entropy the codec expects.
package mnemonic

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

var (
	// ErrStrength is returned for an entropy size BIP39 does not accept.
	ErrStrength = errors.New("strength must be one of 128, 160, 192, 224 or 256 bits")
	// ErrWordCount is returned for a phrase length BIP39 does not accept.
	ErrWordCount = errors.New("phrase must have 12, 15, 18, 21 or 24 words")
	// ErrChecksum is returned when a phrase fails checksum or wordlist validation.
	ErrChecksum = errors.New("invalid seed phrase")
	// ErrOverflow is returned when a value does not fit the target entropy width.
	ErrOverflow = errors.New("value does not fit the target strength")
)

// strengthByWords maps phrase word counts to entropy bits (words / 3 * 32).
var strengthByWords = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// ValidStrength reports whether s is an entropy size accepted by BIP39.
func ValidStrength(s int) bool {
	switch s {
	case 128, 160, 192, 224, 256:
		return true
	}
	return false
}

// WordCount returns the number of words in a phrase.
func WordCount(phrase string) int {
	return len(strings.Fields(phrase))
}

// StrengthForWords returns the entropy size in bits encoded by a phrase of
// n words.
func StrengthForWords(n int) (int, error) {
	s, ok := strengthByWords[n]
	if !ok {
		return 0, fmt.Errorf("%w, got %d", ErrWordCount, n)
	}
	return s, nil
}

// PhraseStrength returns the entropy size in bits encoded by the phrase.
func PhraseStrength(phrase string) (int, error) {
	return StrengthForWords(WordCount(phrase))
}

// FromInt encodes a non-negative integer as a seed phrase at the given
// strength. The integer is written big-endian into strength/8 bytes of
// entropy; values of strength bits or more do not fit and fail with
// ErrOverflow.
func FromInt(value *big.Int, strength int) (string, error) {
	if !ValidStrength(strength) {
		return "", fmt.Errorf("%w, got %d", ErrStrength, strength)
	}
	if value.Sign() < 0 || value.BitLen() > strength {
		return "", fmt.Errorf("%w: %d bits into %d", ErrOverflow, value.BitLen(), strength)
	}
	entropy := value.FillBytes(make([]byte, strength/8))
	return bip39.NewMnemonic(entropy)
}

// ToInt decodes a seed phrase into the big-endian integer of its entropy,
// validating the embedded checksum. The strength names the width the caller
// intends to work at and is validated, but the entropy itself is read at
// the phrase's own length.
func ToInt(phrase string, strength int) (*big.Int, error) {
	if !ValidStrength(strength) {
		return nil, fmt.Errorf("%w, got %d", ErrStrength, strength)
	}
	entropy, err := bip39.EntropyFromMnemonic(phrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChecksum, err)
	}
	return new(big.Int).SetBytes(entropy), nil
}

// Generate returns a fresh random phrase at the given strength, drawn from
// the OS entropy source.
func Generate(strength int) (string, error) {
	if !ValidStrength(strength) {
		return "", fmt.Errorf("%w, got %d", ErrStrength, strength)
	}
	entropy, err := bip39.NewEntropy(strength)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// Valid reports whether the phrase is a well-formed BIP39 mnemonic with a
// correct checksum.
func Valid(phrase string) bool {
	return bip39.IsMnemonicValid(phrase)
}
