package seedshare

import (
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand"
	"slices"
)

// ErrVerification means a freshly generated share set failed to
// reconstruct the original seed phrase. It signals a broken internal
// invariant: shares that trip it are never released.
var ErrVerification = errors.New("share set failed self-verification")

// maxVerifySubsets bounds how many minimum-sized subsets are reconstructed
// during self-verification. Below the bound every subset is tested;
// above it, random distinct subsets are sampled instead of enumerating a
// combination space that can be astronomically large.
const maxVerifySubsets = 100

func verifyShares(seed string, shares []Share, minimum, seedStrength int, prime *big.Int) error {
	total := new(big.Int).Binomial(int64(len(shares)), int64(minimum))

	var subsets [][]int
	if total.Cmp(big.NewInt(maxVerifySubsets)) <= 0 {
		subsets = allCombinations(len(shares), minimum)
	} else {
		subsets = randomCombinations(len(shares), minimum, maxVerifySubsets)
	}

	subset := make([]Share, minimum)
	for _, idxs := range subsets {
		for i, idx := range idxs {
			subset[i] = shares[idx]
		}
		recovered, err := RecoverSeed(subset, seedStrength, prime)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrVerification, err)
		}
		if recovered != seed {
			return fmt.Errorf("%w: a %d-share subset reconstructed a different phrase", ErrVerification, minimum)
		}
	}
	return nil
}

// allCombinations enumerates every k-subset of {0..n-1} in lexicographic
// order.
func allCombinations(n, k int) [][]int {
	idxs := make([]int, k)
	for i := range idxs {
		idxs[i] = i
	}

	var out [][]int
	for {
		out = append(out, slices.Clone(idxs))

		// advance to the next combination
		i := k - 1
		for i >= 0 && idxs[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idxs[i]++
		for j := i + 1; j < k; j++ {
			idxs[j] = idxs[j-1] + 1
		}
	}
}

// randomCombinations draws `count` distinct k-subsets of {0..n-1}. The
// subsets are not secret, so the shared pseudo-random source is fine here;
// only polynomial coefficients need crypto/rand.
func randomCombinations(n, k, count int) [][]int {
	seen := make(map[string]struct{}, count)
	out := make([][]int, 0, count)
	for len(out) < count {
		idxs := mrand.Perm(n)[:k]
		slices.Sort(idxs)
		key := fmt.Sprint(idxs)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, idxs)
	}
	return out
}
