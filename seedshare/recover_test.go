package seedshare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izouxv/goSeedSplit/field"
	"github.com/izouxv/goSeedSplit/mnemonic"
)

func TestRecoverSeedValidation(t *testing.T) {
	shares, err := GenerateShares(seed12, 2, 3, 0)
	require.NoError(t, err)

	t.Run("too few shares", func(t *testing.T) {
		_, err := RecoverSeed(shares[:1], 0, nil)
		assert.ErrorIs(t, err, ErrInsufficientShares)

		_, err = RecoverSeed(nil, 0, nil)
		assert.ErrorIs(t, err, ErrInsufficientShares)
	})

	t.Run("mixed word counts", func(t *testing.T) {
		long, err := GenerateShares(seed24, 2, 3, 0)
		require.NoError(t, err)

		_, err = RecoverSeed([]Share{shares[0], long[1]}, 0, nil)
		assert.ErrorIs(t, err, ErrInconsistentShareLength)
	})

	t.Run("duplicate index", func(t *testing.T) {
		_, err := RecoverSeed([]Share{shares[0], shares[0]}, 0, nil)
		assert.ErrorIs(t, err, field.ErrDuplicatePoint)
	})

	t.Run("unknown seed strength", func(t *testing.T) {
		_, err := RecoverSeed(shares[:2], 100, nil)
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("corrupted share phrase", func(t *testing.T) {
		corrupted := []Share{shares[0], {Index: shares[1].Index, Phrase: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"}}
		_, err := RecoverSeed(corrupted, 0, nil)
		assert.ErrorIs(t, err, mnemonic.ErrChecksum)
	})
}

func TestRecoverSeedExplicitPrime(t *testing.T) {
	shares, err := GenerateShares(seed12, 2, 3, 0)
	require.NoError(t, err)

	prime, err := field.Prime(128)
	require.NoError(t, err)

	recovered, err := RecoverSeed(shares[1:], 128, prime)
	require.NoError(t, err)
	assert.Equal(t, seed12, recovered)
}

func TestRecoverSeedWrongSetMayOverflow(t *testing.T) {
	// Shares from two unrelated sessions interpolate to an arbitrary
	// field element. That is only ever reported when the element fails to
	// fit the seed width; a silently wrong phrase is the documented
	// alternative.
	a, err := GenerateShares(seed12, 2, 3, 0)
	require.NoError(t, err)

	mixed := []Share{a[0], {Index: 2, Phrase: seed12}}
	recovered, err := RecoverSeed(mixed, 0, nil)
	if err == nil {
		assert.NotEqual(t, seed12, recovered)
	} else {
		assert.ErrorIs(t, err, mnemonic.ErrOverflow)
	}
}
