// Package seedshare splits a BIP39 seed phrase into mnemonic-encoded
// Shamir shares and recovers the phrase from any threshold-sized subset of
// them. All state is function-call scoped: the secret integer and the
// polynomial only exist transiently, the shares are the durable output.
package seedshare

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/izouxv/goSeedSplit/field"
	"github.com/izouxv/goSeedSplit/mnemonic"
	"github.com/izouxv/goSeedSplit/shamir"
	"github.com/izouxv/goSeedSplit/utils"
)

var (
	// ErrConfiguration is returned for an invalid minimum/shares/strength combination.
	ErrConfiguration = errors.New("invalid sharing configuration")
)

// Share is one mnemonic-encoded point of a split seed phrase. Index is the
// x coordinate the polynomial was evaluated at and is always >= 1.
type Share struct {
	Index  int
	Phrase string
}

// ShareSet is the output of one sharing session: the shares plus the
// parameters a holder needs to recombine them. The fingerprint is a SHA3
// hash over all share phrases, so any holder of the full set can check
// that the shares belong together.
type ShareSet struct {
	ID            string
	Fingerprint   string
	Minimum       int
	ShareStrength int
	Shares        []Share
}

// GenerateShares splits the seed phrase into nShares mnemonic shares such
// that any `minimum` of them recover it. All shares of one session use the
// same field modulus, chosen by shareStrength; shareStrength 0 means "same
// as the seed phrase". The full set is self-verified before it is
// returned: every emitted set has been reconstructed back to the original
// phrase across sampled minimum-sized subsets.
func GenerateShares(seedPhrase string, minimum, nShares, shareStrength int) ([]Share, error) {
	seedStrength, err := mnemonic.PhraseStrength(seedPhrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if shareStrength == 0 {
		shareStrength = seedStrength
	}
	if !mnemonic.ValidStrength(shareStrength) {
		return nil, fmt.Errorf("%w: share strength %d, must be one of 128, 160, 192, 224 or 256", ErrConfiguration, shareStrength)
	}
	if shareStrength < seedStrength {
		return nil, fmt.Errorf("%w: share strength (%d) is lower than seed strength (%d), seed phrase would be irrecoverable",
			ErrConfiguration, shareStrength, seedStrength)
	}
	if minimum < 2 {
		return nil, fmt.Errorf("%w: minimum must be at least 2, got %d", ErrConfiguration, minimum)
	}
	if minimum > nShares {
		return nil, fmt.Errorf("%w: more shares needed to recover the seed phrase (%d) than created (%d), seed phrase would be irrecoverable",
			ErrConfiguration, minimum, nShares)
	}

	prime, err := field.Prime(shareStrength)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	secret, err := mnemonic.ToInt(seedPhrase, seedStrength)
	if err != nil {
		return nil, err
	}

	points, err := shamir.Split(secret, nShares, minimum, prime)
	if err != nil {
		return nil, err
	}

	shares := make([]Share, len(points))
	for i, pt := range points {
		phrase, err := mnemonic.FromInt(pt.Y, shareStrength)
		if err != nil {
			return nil, err
		}
		shares[i] = Share{Index: int(pt.X.Int64()), Phrase: phrase}
	}

	if err := verifyShares(seedPhrase, shares, minimum, seedStrength, prime); err != nil {
		return nil, err
	}

	return shares, nil
}

// NewShareSet generates shares and wraps them with a session ID and a
// fingerprint over the share phrases.
func NewShareSet(seedPhrase string, minimum, nShares, shareStrength int) (*ShareSet, error) {
	shares, err := GenerateShares(seedPhrase, minimum, nShares, shareStrength)
	if err != nil {
		return nil, err
	}

	strength, err := mnemonic.PhraseStrength(shares[0].Phrase)
	if err != nil {
		return nil, err
	}

	fingerprint, err := fingerprintShares(shares)
	if err != nil {
		return nil, err
	}

	return &ShareSet{
		ID:            uuid.NewString(),
		Fingerprint:   fingerprint,
		Minimum:       minimum,
		ShareStrength: strength,
		Shares:        shares,
	}, nil
}

func fingerprintShares(shares []Share) (string, error) {
	var material []byte
	for _, s := range shares {
		material = utils.ConcatBytes(material, fmt.Appendf(nil, "%d:%s\n", s.Index, s.Phrase))
	}
	sum, err := utils.Sha3Hash(material)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}
