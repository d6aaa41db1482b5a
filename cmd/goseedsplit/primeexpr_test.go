package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izouxv/goSeedSplit/field"
)

func TestParsePrimeExpr(t *testing.T) {
	t.Run("table short forms", func(t *testing.T) {
		for _, strength := range field.Strengths {
			want, err := field.Prime(strength)
			require.NoError(t, err)

			got, err := parsePrimeExpr(field.PrimeString(strength))
			require.NoError(t, err)
			assert.Equal(t, 0, want.Cmp(got), "expression %q", field.PrimeString(strength))
		}
	})

	t.Run("decimal", func(t *testing.T) {
		got, err := parsePrimeExpr("2089")
		require.NoError(t, err)
		assert.Equal(t, int64(2089), got.Int64())
	})

	t.Run("power forms", func(t *testing.T) {
		got, err := parsePrimeExpr("2^16")
		require.NoError(t, err)
		assert.Equal(t, int64(65536), got.Int64())

		got, err = parsePrimeExpr("2^10 + 3")
		require.NoError(t, err)
		assert.Equal(t, int64(1027), got.Int64())
	})

	t.Run("rejected", func(t *testing.T) {
		for _, expr := range []string{"", "2**128", "2^128 - 159 - 1", "os.exit()", "2^-5", "-42"} {
			_, err := parsePrimeExpr(expr)
			assert.Error(t, err, "expression %q", expr)
		}
	})
}

func TestParseShareArg(t *testing.T) {
	share, err := parseShareArg("3: legal winner thank year wave sausage worth useful legal winner thank yellow")
	require.NoError(t, err)
	assert.Equal(t, 3, share.Index)
	assert.Equal(t, "legal winner thank year wave sausage worth useful legal winner thank yellow", share.Phrase)

	_, err = parseShareArg("no separator here")
	assert.Error(t, err)

	_, err = parseShareArg("0:some phrase")
	assert.Error(t, err, "index 0 is reserved for the secret")

	_, err = parseShareArg("x:some phrase")
	assert.Error(t, err)
}
