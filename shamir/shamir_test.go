package shamir

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izouxv/goSeedSplit/field"
)

func TestSplitAndCombine(t *testing.T) {
	prime, err := field.Prime(256)
	require.NoError(t, err)

	secret, err := rand.Int(rand.Reader, prime)
	require.NoError(t, err)

	t.Run("2-of-3 scheme", func(t *testing.T) {
		n, threshold := 3, 2
		shares, err := Split(secret, n, threshold, prime)
		require.NoError(t, err)
		require.Len(t, shares, n)

		for i, share := range shares {
			assert.Equal(t, int64(i+1), share.X.Int64(), "indices must run 1..n")
		}

		// Combine with exactly `threshold` shares
		combined, err := Combine([]*Share{shares[0], shares[2]}, prime)
		require.NoError(t, err)
		assert.Equal(t, 0, secret.Cmp(combined), "combined secret should match original")

		// Combine with more than `threshold` shares (all 3)
		combinedAll, err := Combine(shares, prime)
		require.NoError(t, err)
		assert.Equal(t, 0, secret.Cmp(combinedAll), "combined secret with all shares should match original")
	})

	t.Run("3-of-5 scheme", func(t *testing.T) {
		shares, err := Split(secret, 5, 3, prime)
		require.NoError(t, err)

		combined, err := Combine([]*Share{shares[4], shares[1], shares[3]}, prime)
		require.NoError(t, err)
		assert.Equal(t, 0, secret.Cmp(combined))

		// Combine with fewer than `threshold` shares: interpolation
		// succeeds but the result is a different field element.
		wrong, err := Combine([]*Share{shares[0], shares[1]}, prime)
		require.NoError(t, err)
		assert.NotEqual(t, 0, secret.Cmp(wrong), "under-threshold combination should not match original")
	})
}

func TestSplitInvalidParameters(t *testing.T) {
	prime, err := field.Prime(128)
	require.NoError(t, err)
	secret := big.NewInt(12345)

	// t <= 1
	_, err = Split(secret, 3, 1, prime)
	assert.Error(t, err)

	// n < t
	_, err = Split(secret, 2, 3, prime)
	assert.Error(t, err)
}

func TestCombinePreconditions(t *testing.T) {
	prime, err := field.Prime(128)
	require.NoError(t, err)

	_, err = Combine([]*Share{}, prime)
	assert.ErrorIs(t, err, field.ErrInsufficientPoints)

	dup := &Share{X: big.NewInt(1), Y: big.NewInt(2)}
	_, err = Combine([]*Share{dup, dup}, prime)
	assert.ErrorIs(t, err, field.ErrDuplicatePoint)
}

func TestEvalAt(t *testing.T) {
	// f(x) = 42 + 7x + 11x^2 over GF(2089)
	prime := big.NewInt(2089)
	coeffs := []*big.Int{big.NewInt(42), big.NewInt(7), big.NewInt(11)}

	assert.Equal(t, int64(42), evalAt(coeffs, big.NewInt(0), prime).Int64())
	assert.Equal(t, int64(60), evalAt(coeffs, big.NewInt(1), prime).Int64())
	assert.Equal(t, int64(100), evalAt(coeffs, big.NewInt(2), prime).Int64())
	assert.Equal(t, int64(162), evalAt(coeffs, big.NewInt(3), prime).Int64())
}
